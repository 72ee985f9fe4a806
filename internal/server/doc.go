// Package server implements the MCP (Model Context Protocol) server for meme generation.
//
// This package provides a JSON-RPC 2.0 server that exposes the logo-to-meme
// pipeline through the MCP protocol, so MCP-compatible clients can turn a brand
// logo into captioned images.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Logs go to stderr so they never corrupt the protocol stream.
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - meme_generate: Render 1-6 captioned variations of a logo
//   - meme_extract_palette: Report the colors a run would use
//   - meme_captions: Draw caption templates from the catalog
//   - meme_load: Validate a logo file and get its metadata
//
// # Runs
//
// All meme_generate calls share one meme.Session. A call that is overtaken by
// a newer one fails with a "superseded" error instead of returning stale
// images.
//
// # Image Caching
//
// The server maintains an in-memory cache of loaded logos. Logos are cached
// by path and reused across tool calls, avoiding redundant disk I/O.
// The cache persists for the lifetime of the server process.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client through `memefy serve`:
//
//	srv := server.New(gen, logger, version)
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
