// Package meme runs the logo-to-meme pipeline.
//
// A Session owns the latest run token for one caller. Each call to Generate
// decodes the logo, extracts its palette once and renders every requested
// variation against that palette. Results reach the caller's Sink only if no
// newer run began in the meantime; otherwise the run ends with ErrSuperseded.
//
// # Error Handling
//
//   - *DecodeError: the logo could not be decoded; no results
//   - *ExtractionError: logged only; the run continues with FallbackPalette
//   - *SurfaceError: a font face or canvas could not be created; fatal
package meme
