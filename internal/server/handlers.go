package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ironsheep/memefy-mcp/internal/captions"
	"github.com/ironsheep/memefy-mcp/internal/imaging"
	"github.com/ironsheep/memefy-mcp/internal/meme"
	"github.com/ironsheep/memefy-mcp/internal/palette"
	"github.com/ironsheep/memefy-mcp/internal/render"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "meme_generate", "meme_load").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		s.logger.Warn("tool failed", "tool", params.Name, "error", err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Resolves the logo source (cached path or inline base64)
//  4. Calls into the meme pipeline
//  5. Returns the result or error
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "meme_generate":
		return s.handleMemeGenerate(ctx, args)
	case "meme_extract_palette":
		return s.handleMemeExtractPalette(ctx, args)
	case "meme_captions":
		return s.handleMemeCaptions()
	case "meme_load":
		return s.handleMemeLoad(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	mcpErr := &MCPError{
		Code:    code,
		Message: message,
	}
	if data != "" {
		mcpErr.Data = data
	}
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   mcpErr,
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// sourceArgs names a logo either by path or as inline base64 data.
type sourceArgs struct {
	Path        string `json:"path"`
	ImageBase64 string `json:"image_base64"`
}

// source resolves the logo. Paths are validated and go through the cache;
// inline data may be raw base64 or a data URI.
func (a sourceArgs) source(cache *imaging.ImageCache) (imaging.Source, error) {
	switch {
	case a.Path != "":
		if _, err := imaging.ValidateUpload(a.Path); err != nil {
			return nil, err
		}
		return imaging.FileSource(cache, a.Path), nil
	case a.ImageBase64 != "":
		payload := a.ImageBase64
		if i := strings.Index(payload, ";base64,"); i >= 0 && strings.HasPrefix(payload, "data:") {
			payload = payload[i+len(";base64,"):]
		}
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("invalid image_base64: %w", err)
		}
		return imaging.BytesSource(data), nil
	}
	return nil, errors.New("either path or image_base64 is required")
}

// === Meme Generation Handlers ===

type memeGenerateArgs struct {
	sourceArgs
	Count           *int   `json:"count"`
	TopText         string `json:"top_text"`
	BottomText      string `json:"bottom_text"`
	BackgroundStyle string `json:"background_style"`
	OutputDir       string `json:"output_dir"`
	DataURI         bool   `json:"data_uri"`
}

// memeOutput is one variation as returned to the client. Exactly one of
// ImageBase64, DataURI and Path is set.
type memeOutput struct {
	ID          string       `json:"id"`
	FileName    string       `json:"file_name"`
	Style       render.Style `json:"style"`
	TopText     string       `json:"top_text"`
	BottomText  string       `json:"bottom_text"`
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	MimeType    string       `json:"mime_type"`
	ImageBase64 string       `json:"image_base64,omitempty"`
	DataURI     string       `json:"data_uri,omitempty"`
	Path        string       `json:"path,omitempty"`
}

type memeGenerateResult struct {
	Palette  palette.Extracted     `json:"palette"`
	Text     palette.TextColorPair `json:"text"`
	Fallback bool                  `json:"fallback"`
	Memes    []memeOutput          `json:"memes"`
}

func (s *Server) handleMemeGenerate(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a memeGenerateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}

	src, err := a.source(s.cache)
	if err != nil {
		return nil, err
	}
	background, err := render.ParseBackgroundStyle(a.BackgroundStyle)
	if err != nil {
		return nil, err
	}

	req := meme.Request{
		Source:     src,
		Count:      meme.DefaultCount,
		Background: background,
	}
	if a.Count != nil {
		if *a.Count < meme.MinCount || *a.Count > meme.MaxCount {
			return nil, fmt.Errorf("count must be between %d and %d, got %d", meme.MinCount, meme.MaxCount, *a.Count)
		}
		req.Count = *a.Count
	}
	// Whitespace-only captions fall back to the catalog.
	if custom := captions.NewCustom(captions.Clamp(a.TopText), captions.Clamp(a.BottomText)); !custom.IsBlank() {
		req.Custom = &custom
	}

	var run *meme.Run
	if err := s.session.Generate(ctx, req, func(r *meme.Run) { run = r }); err != nil {
		return nil, err
	}

	var paths []string
	if a.OutputDir != "" {
		if paths, err = meme.WriteResults(a.OutputDir, run.Results); err != nil {
			return nil, err
		}
	}

	result := &memeGenerateResult{
		Palette:  run.Palette,
		Text:     run.Text,
		Fallback: run.Fallback,
		Memes:    make([]memeOutput, len(run.Results)),
	}
	for i, r := range run.Results {
		out := memeOutput{
			ID:         r.ID,
			FileName:   r.FileName,
			Style:      r.Style,
			TopText:    r.TopText,
			BottomText: r.BottomText,
			Width:      r.Image.Width,
			Height:     r.Image.Height,
			MimeType:   r.Image.MimeType,
		}
		switch {
		case paths != nil:
			out.Path = paths[i]
		case a.DataURI:
			out.DataURI = r.Image.DataURI()
		default:
			out.ImageBase64 = r.Image.Base64()
		}
		result.Memes[i] = out
	}
	return result, nil
}

func (s *Server) handleMemeExtractPalette(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a sourceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	src, err := a.source(s.cache)
	if err != nil {
		return nil, err
	}
	return s.session.Generator().AnalyzePalette(ctx, src)
}

type memeCaptionsResult struct {
	Captions []captions.Template `json:"captions"`
}

func (s *Server) handleMemeCaptions() (interface{}, error) {
	return &memeCaptionsResult{Captions: s.session.Generator().Captions()}, nil
}

type memeLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleMemeLoad(args json.RawMessage) (interface{}, error) {
	var a memeLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}
	// An explicit load always re-reads the file, so a logo edited on disk
	// replaces the cached copy used by later runs.
	s.cache.Evict(a.Path)
	return imaging.LoadImageInfo(s.cache, a.Path)
}
