// Package imaging loads uploaded logos and prepares them for color analysis.
//
// This package covers the input side of meme generation: decoding uploads
// (raster formats through image.Decode, SVG through oksvg), caching decoded
// logos by path, reducing a logo to a bounded stream of opaque pixels, and
// encoding finished canvases as PNG.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner. The
// PixelStream visits pixels of the downscaled analysis copy in raster order:
// left to right, then top to bottom.
//
// # Sources
//
// The meme pipeline never decodes directly. It asks a Source for an image,
// which is the one place the pipeline may block. FileSource, BytesSource and
// StaticSource cover paths, in-memory uploads and already-decoded images.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. Sample returns a stream owned by
// the caller; a PixelStream must not be shared between goroutines.
//
// # Error Handling
//
// Functions return errors for:
//   - Unsupported upload types or files above MaxUploadBytes
//   - Content that cannot be decoded
//   - Images with zero dimensions (ErrNotLoaded)
//   - Encoding failures
package imaging
