// ABOUTME: MCP server setup for the crag climbing coach.
// ABOUTME: Wraps MCP server with storage Repository connection and calculator defaults.
package mcp

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/harperreed/crag/internal/storage"
	"github.com/harperreed/crag/internal/training"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is reported to MCP clients.
const Version = "1.0.0"

// Options carries defaults for tools that take an optional target or window.
type Options struct {
	TargetGrade string
	LoadWeeks   int
	Logger      *log.Logger
}

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	opts      Options
	logger    *log.Logger
}

// NewServer creates a new MCP server with the given storage.
func NewServer(repo storage.Repository, opts Options) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "crag",
			Version: Version,
		},
		nil,
	)

	if opts.LoadWeeks <= 0 {
		opts.LoadWeeks = training.DefaultWeeks
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		opts:      opts,
		logger:    logger.WithPrefix("mcp"),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Debug("serving over stdio", "version", Version)
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
