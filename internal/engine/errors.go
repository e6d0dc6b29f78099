package engine

import "errors"

var (
	// ErrUnsupportedTool indicates a preview named a tool outside the
	// closed tool contract. Compilation fails fast on it.
	ErrUnsupportedTool = errors.New("unsupported tool")

	// ErrMissingField indicates a preview omitted a required input field.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidField indicates a required input field was present but
	// carried an unusable value.
	ErrInvalidField = errors.New("invalid field value")

	// ErrDuplicateID indicates a create action targeting an id already
	// present in the document.
	ErrDuplicateID = errors.New("object already exists")

	// ErrNotFound indicates an update or delete targeting an id absent
	// from the document.
	ErrNotFound = errors.New("object not found")

	// ErrInvalidPatch indicates an update touching a field illegal for
	// the target object's variant.
	ErrInvalidPatch = errors.New("invalid patch for object type")
)
