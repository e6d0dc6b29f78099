package mcpserver

import (
	"context"
	"fmt"

	"github.com/evanharte/pinboard/internal/engine"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerBoardTools() {
	s.mcp.AddTool(mcp.NewTool(engine.ToolCreateStickyNote,
		mcp.WithDescription("Create a sticky note on the board"),
		mcp.WithString("boardId", mcp.Description("Board ID (optional, defaults to the configured board)")),
		mcp.WithString("id", mcp.Description("Object ID (optional, assigned when omitted)")),
		mcp.WithNumber("x", mcp.Description("X position"), mcp.Required()),
		mcp.WithNumber("y", mcp.Description("Y position"), mcp.Required()),
		mcp.WithString("text", mcp.Description("Note text")),
		mcp.WithString("color", mcp.Description("Fill color hex, e.g. #FDE68A")),
		mcp.WithNumber("width", mcp.Description("Width")),
		mcp.WithNumber("height", mcp.Description("Height")),
	), s.mutatingHandler(engine.ToolCreateStickyNote))

	s.mcp.AddTool(mcp.NewTool(engine.ToolCreateShape,
		mcp.WithDescription("Create a rect, circle, or line shape"),
		mcp.WithString("boardId", mcp.Description("Board ID (optional)")),
		mcp.WithString("id", mcp.Description("Object ID (optional)")),
		mcp.WithString("type", mcp.Description("Shape type: rect, circle, or line"), mcp.Required()),
		mcp.WithNumber("x", mcp.Description("X position"), mcp.Required()),
		mcp.WithNumber("y", mcp.Description("Y position"), mcp.Required()),
		mcp.WithNumber("width", mcp.Description("Width")),
		mcp.WithNumber("height", mcp.Description("Height")),
		mcp.WithNumber("x2", mcp.Description("Line end X (lines only)")),
		mcp.WithNumber("y2", mcp.Description("Line end Y (lines only)")),
		mcp.WithString("color", mcp.Description("Fill color hex")),
		mcp.WithString("stroke", mcp.Description("Stroke color hex")),
	), s.mutatingHandler(engine.ToolCreateShape))

	s.mcp.AddTool(mcp.NewTool(engine.ToolCreateFrame,
		mcp.WithDescription("Create a frame container"),
		mcp.WithString("boardId", mcp.Description("Board ID (optional)")),
		mcp.WithString("id", mcp.Description("Object ID (optional)")),
		mcp.WithNumber("x", mcp.Description("X position"), mcp.Required()),
		mcp.WithNumber("y", mcp.Description("Y position"), mcp.Required()),
		mcp.WithString("title", mcp.Description("Frame title")),
		mcp.WithString("color", mcp.Description("Border color hex")),
		mcp.WithNumber("width", mcp.Description("Width")),
		mcp.WithNumber("height", mcp.Description("Height")),
	), s.mutatingHandler(engine.ToolCreateFrame))

	s.mcp.AddTool(mcp.NewTool(engine.ToolCreateConnector,
		mcp.WithDescription("Connect two objects with an arrow or line"),
		mcp.WithString("boardId", mcp.Description("Board ID (optional)")),
		mcp.WithString("id", mcp.Description("Object ID (optional)")),
		mcp.WithString("fromId", mcp.Description("Source object ID"), mcp.Required()),
		mcp.WithString("toId", mcp.Description("Target object ID"), mcp.Required()),
		mcp.WithString("style", mcp.Description("arrow or line (default arrow)")),
		mcp.WithString("connectorType", mcp.Description("straight, bent, or curved")),
		mcp.WithString("strokeStyle", mcp.Description("solid, dashed, or dotted")),
		mcp.WithString("color", mcp.Description("Stroke color hex")),
	), s.mutatingHandler(engine.ToolCreateConnector))

	s.mcp.AddTool(mcp.NewTool(engine.ToolMoveObject,
		mcp.WithDescription("Move an object to new coordinates"),
		mcp.WithString("boardId", mcp.Description("Board ID (optional)")),
		mcp.WithString("objectId", mcp.Description("Object ID"), mcp.Required()),
		mcp.WithNumber("x", mcp.Description("New X position"), mcp.Required()),
		mcp.WithNumber("y", mcp.Description("New Y position"), mcp.Required()),
	), s.mutatingHandler(engine.ToolMoveObject))

	s.mcp.AddTool(mcp.NewTool(engine.ToolResizeObject,
		mcp.WithDescription("Resize an object"),
		mcp.WithString("boardId", mcp.Description("Board ID (optional)")),
		mcp.WithString("objectId", mcp.Description("Object ID"), mcp.Required()),
		mcp.WithNumber("width", mcp.Description("New width"), mcp.Required()),
		mcp.WithNumber("height", mcp.Description("New height"), mcp.Required()),
	), s.mutatingHandler(engine.ToolResizeObject))

	s.mcp.AddTool(mcp.NewTool(engine.ToolUpdateText,
		mcp.WithDescription("Replace the text of a sticky note, text object, or frame title"),
		mcp.WithString("boardId", mcp.Description("Board ID (optional)")),
		mcp.WithString("objectId", mcp.Description("Object ID"), mcp.Required()),
		mcp.WithString("newText", mcp.Description("New text (empty string clears)"), mcp.Required()),
	), s.mutatingHandler(engine.ToolUpdateText))

	s.mcp.AddTool(mcp.NewTool(engine.ToolChangeColor,
		mcp.WithDescription("Change an object's color"),
		mcp.WithString("boardId", mcp.Description("Board ID (optional)")),
		mcp.WithString("objectId", mcp.Description("Object ID"), mcp.Required()),
		mcp.WithString("color", mcp.Description("New color hex, e.g. #10B981"), mcp.Required()),
	), s.mutatingHandler(engine.ToolChangeColor))

	s.mcp.AddTool(mcp.NewTool(engine.ToolDeleteObject,
		mcp.WithDescription("Delete an object from the board"),
		mcp.WithString("boardId", mcp.Description("Board ID (optional)")),
		mcp.WithString("objectId", mcp.Description("Object ID to delete"), mcp.Required()),
		mcp.WithToolAnnotation(mcp.ToolAnnotation{DestructiveHint: boolPtr(true)}),
	), s.mutatingHandler(engine.ToolDeleteObject))

	s.mcp.AddTool(mcp.NewTool(engine.ToolGetBoardState,
		mcp.WithDescription("Read the full current board state"),
		mcp.WithString("boardId", mcp.Description("Board ID (optional)")),
	), s.handleGetBoardState)
}

// mutatingHandler wraps one tool name into a handler that compiles,
// executes, and persists a single-call plan.
func (s *Server) mutatingHandler(tool string) func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.GetArguments()
		boardID := s.resolveBoardID(args)

		preview := engine.Preview{Name: tool, Input: args}
		res, err := s.boards.CompileAndApply(ctx, boardID, s.actorID, "", []engine.Preview{preview})
		if err != nil {
			return nil, err
		}
		if !res.OK {
			return nil, fmt.Errorf("applying %s: %w", tool, res.Err)
		}

		s.log.Info().
			Str("tool", tool).
			Str("board_id", boardID).
			Str("tx_id", res.Transaction.TxID).
			Msg("tool call applied")

		return jsonResult(applySummary{
			TxID:    res.Transaction.TxID,
			Created: res.Diff.CreatedIDs,
			Updated: res.Diff.UpdatedIDs,
			Deleted: res.Diff.DeletedIDs,
		})
	}
}

func (s *Server) handleGetBoardState(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	boardID := s.resolveBoardID(req.GetArguments())
	snapshot, err := s.boards.Snapshot(ctx, boardID)
	if err != nil {
		return nil, err
	}
	return jsonResult(snapshot)
}

// applySummary is what mutating tools report back to the agent.
type applySummary struct {
	TxID    string   `json:"txId"`
	Created []string `json:"createdIds"`
	Updated []string `json:"updatedIds"`
	Deleted []string `json:"deletedIds"`
}

func boolPtr(v bool) *bool { return &v }
