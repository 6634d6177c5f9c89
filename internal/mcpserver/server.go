// Copyright (c) 2024 Neomantra Corp

// Package mcpserver exposes the core logical-inductor library as three
// read-only Model Context Protocol tools: a thin MCP server sitting
// directly on top of an internal library, with no API key, no billing,
// and no cache to manage.
package mcpserver

import "log/slog"

// Server holds shared state for the MCP tool handlers.
type Server struct {
	Logger *slog.Logger
}

// NewServer builds a Server. If logger is nil, slog.Default() is used.
func NewServer(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{Logger: logger}
}
