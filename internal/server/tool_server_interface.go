// Package server provides the MCP server implementation for the TextOps service.
package server

// TextToolServer defines the interface for the MCP server that handles
// text-analysis tool calls from MCP clients.
type TextToolServer interface {
	// Initialize initializes the server with dependencies and configurations.
	Initialize() error

	// Start starts the MCP server on the specified transport.
	Start() error

	// Stop gracefully shuts down the MCP server.
	Stop() error
}
