// Package mcpserver exposes the board tool contract over the Model Context
// Protocol so AI agents can edit boards through stdio.
package mcpserver

import (
	"encoding/json"
	"fmt"

	"github.com/evanharte/pinboard/internal/store"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

// Server is the MCP server for pinboard. Every mutating tool call compiles
// to a one-action plan, executes it, and persists the result before the
// call returns, so agents always observe their own writes.
type Server struct {
	mcp     *server.MCPServer
	boards  *store.BoardService
	log     zerolog.Logger
	boardID string
	actorID string
}

// Deps holds the dependencies wired in by the CLI layer.
type Deps struct {
	Boards *store.BoardService
	Log    zerolog.Logger

	// DefaultBoardID is used when a tool call carries no boardId argument.
	DefaultBoardID string
	// ActorUserID is stamped as creator on objects made through this server.
	ActorUserID string
}

// New creates and configures an MCP server with the full board tool set.
func New(deps Deps) *Server {
	s := &Server{
		boards:  deps.Boards,
		log:     deps.Log,
		boardID: deps.DefaultBoardID,
		actorID: deps.ActorUserID,
	}

	s.mcp = server.NewMCPServer(
		"pinboard-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.registerBoardTools()

	return s
}

// ServeStdio starts the MCP server on stdin/stdout and blocks.
func (s *Server) ServeStdio() error {
	s.log.Info().Str("board_id", s.boardID).Msg("starting MCP stdio server")
	return server.ServeStdio(s.mcp)
}

// resolveBoardID returns the boardId from tool args or the configured
// default board.
func (s *Server) resolveBoardID(args map[string]any) string {
	if id, ok := args["boardId"].(string); ok && id != "" {
		return id
	}
	return s.boardID
}

// textResult creates a simple text tool result.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

// jsonResult serializes v to JSON and wraps it in a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	return textResult(string(data)), nil
}
