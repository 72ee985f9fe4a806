package imaging

import (
	"context"
	"image"
)

// Source yields a decoded logo. Decode is the pipeline's suspend point: it may
// block on disk reads or decoding and must honour ctx cancellation.
type Source interface {
	Decode(ctx context.Context) (image.Image, error)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context) (image.Image, error)

// Decode calls f(ctx).
func (f SourceFunc) Decode(ctx context.Context) (image.Image, error) {
	return f(ctx)
}

// FileSource decodes the logo at path through cache.
func FileSource(cache *ImageCache, path string) Source {
	return SourceFunc(func(ctx context.Context) (image.Image, error) {
		return decodeAsync(ctx, func() (image.Image, error) {
			return cache.Load(path)
		})
	})
}

// BytesSource decodes an in-memory upload.
func BytesSource(data []byte) Source {
	return SourceFunc(func(ctx context.Context) (image.Image, error) {
		return decodeAsync(ctx, func() (image.Image, error) {
			return Decode(data)
		})
	})
}

// StaticSource wraps an image that is already decoded.
func StaticSource(img image.Image) Source {
	return SourceFunc(func(ctx context.Context) (image.Image, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return img, nil
	})
}

type decodeResult struct {
	img image.Image
	err error
}

// decodeAsync runs fn on its own goroutine so a cancelled context releases the
// caller immediately; the decode itself finishes in the background.
func decodeAsync(ctx context.Context, fn func() (image.Image, error)) (image.Image, error) {
	done := make(chan decodeResult, 1)
	go func() {
		img, err := fn()
		done <- decodeResult{img: img, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.img, r.err
	}
}
