package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// sourceProperties are the two ways to hand a logo to a tool.
func sourceProperties() map[string]interface{} {
	return map[string]interface{}{
		"path": map[string]interface{}{
			"type":        "string",
			"description": "Absolute path to the logo file (PNG, JPG, SVG; also GIF, WebP, BMP, TIFF). Max 10MB.",
		},
		"image_base64": map[string]interface{}{
			"type":        "string",
			"description": "Logo bytes as base64 or a data URI, used when path is not given",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	generateProps := sourceProperties()
	generateProps["count"] = map[string]interface{}{
		"type":        "integer",
		"description": "Number of meme variations (1-6). Styles cycle classic, modern, bold. Default 3",
		"minimum":     1,
		"maximum":     6,
		"default":     3,
	}
	generateProps["top_text"] = map[string]interface{}{
		"type":        "string",
		"description": "Custom top caption (max 100 characters). Setting either caption yields exactly one meme",
		"maxLength":   100,
	}
	generateProps["bottom_text"] = map[string]interface{}{
		"type":        "string",
		"description": "Custom bottom caption (max 100 characters)",
		"maxLength":   100,
	}
	generateProps["background_style"] = map[string]interface{}{
		"type":        "string",
		"enum":        []string{"gradient", "pattern", "solid"},
		"description": "How the canvas behind the logo is painted. Default gradient",
	}
	generateProps["output_dir"] = map[string]interface{}{
		"type":        "string",
		"description": "Optional directory to write meme-<n>.png files into instead of returning base64",
	}
	generateProps["data_uri"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Return inline images as data:image/png;base64 URIs instead of bare base64",
		"default":     false,
	}

	return []Tool{
		{
			Name:        "meme_generate",
			Description: "Turn a logo into captioned 800x600 meme images. Extracts the brand color, paints a matching background, places the logo and draws the captions. Returns base64 PNGs or written file paths.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": generateProps,
			},
		},
		{
			Name:        "meme_extract_palette",
			Description: "Report the colors a meme run would use for a logo: primary, background, secondary and accent colors, the five-stop gradient palette, caption colors and their contrast ratio.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": sourceProperties(),
			},
		},
		{
			Name:        "meme_captions",
			Description: "Draw a varied list of caption templates from the built-in catalog (corporate, startup, tech and generic jokes).",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "meme_load",
			Description: "Validate a logo file (type and 10MB limit), re-read it into the cache and return its dimensions and format.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the logo file",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
