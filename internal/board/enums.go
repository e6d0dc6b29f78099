package board

// ObjectType identifies one of the seven board object variants.
type ObjectType string

const (
	TypeSticky    ObjectType = "sticky"
	TypeRect      ObjectType = "rect"
	TypeCircle    ObjectType = "circle"
	TypeLine      ObjectType = "line"
	TypeText      ObjectType = "text"
	TypeFrame     ObjectType = "frame"
	TypeConnector ObjectType = "connector"
)

// ValidObjectTypes is the canonical closed set of accepted type strings.
var ValidObjectTypes = map[ObjectType]bool{
	TypeSticky: true, TypeRect: true, TypeCircle: true, TypeLine: true,
	TypeText: true, TypeFrame: true, TypeConnector: true,
}

// ConnectorStyle controls the overall look of a connector.
type ConnectorStyle string

const (
	StyleArrow ConnectorStyle = "arrow"
	StyleLine  ConnectorStyle = "line"
)

// StrokeStyle is the dash pattern of a connector or shape outline.
type StrokeStyle string

const (
	StrokeSolid  StrokeStyle = "solid"
	StrokeDashed StrokeStyle = "dashed"
	StrokeDotted StrokeStyle = "dotted"
)

// ConnectorType selects the path routing mode for a connector.
type ConnectorType string

const (
	ConnectorStraight ConnectorType = "straight"
	ConnectorBent     ConnectorType = "bent"
	ConnectorCurved   ConnectorType = "curved"
)

// ArrowStyle is the end-cap decoration on a connector endpoint.
type ArrowStyle string

const (
	ArrowNone  ArrowStyle = "none"
	ArrowSolid ArrowStyle = "solid"
	ArrowOpen  ArrowStyle = "open"
)

var validConnectorStyles = map[ConnectorStyle]bool{StyleArrow: true, StyleLine: true}

var validStrokeStyles = map[StrokeStyle]bool{StrokeSolid: true, StrokeDashed: true, StrokeDotted: true}

var validConnectorTypes = map[ConnectorType]bool{ConnectorStraight: true, ConnectorBent: true, ConnectorCurved: true}

var validArrowStyles = map[ArrowStyle]bool{ArrowNone: true, ArrowSolid: true, ArrowOpen: true}
