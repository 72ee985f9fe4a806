// Package render paints memes onto a fixed 800x600 canvas.
//
// # Pipeline
//
// A Frame is rendered in a fixed order: background, aspect-fitted logo,
// captions, style overlay. Backgrounds come from the five-stop palette of the
// primary color; captions are drawn in a bold display face (Go Bold unless a
// font file is configured) with an outline, a blurred drop shadow and a fill.
//
// # Coordinates
//
// The canvas origin is the top-left corner. Caption anchors are the vertical
// centre of each wrapped block; each line uses a middle baseline.
//
// # Errors
//
// Only surface acquisition can fail, reported as *SurfaceError. Everything
// else is clamped rather than rejected.
package render
