// Package palette infers brand colors from a logo and derives the colors used
// to paint a meme around it.
//
// # Analysis
//
// Extract turns a decoded logo into an Extracted palette. The rich analyzer
// (the default) buckets sampled pixels, skips near-black and near-white
// candidates and derives secondary and accent colors; the simple analyzer
// counts exact colors and is kept as a fast path.
//
// # Synthesis
//
// Background, Palette and Lighten derive light fills and gradient stops from a
// single seed color. TextColors picks white-on-black or black-on-white caption
// colors by luma; ContrastRatio reports the WCAG ratio of the chosen pair.
//
// All arithmetic works on 8-bit channels, floors fractional results and clamps
// to [0,255]. Nothing here is random.
package palette
