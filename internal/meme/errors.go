package meme

import (
	"errors"
	"fmt"

	"github.com/ironsheep/memefy-mcp/internal/render"
)

// ErrSuperseded is returned by a run that was overtaken by a newer run on the
// same Session. Its results are discarded.
var ErrSuperseded = errors.New("run superseded by a newer request")

// DecodeError means the logo could not be decoded or has no pixels. The run
// is aborted with no results.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode logo: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ExtractionError wraps a failure inside sampling or color analysis. It is
// never returned from a run; the fallback palette is used instead and the
// error is logged.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("palette extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// SurfaceError is fatal to a run. See render.SurfaceError.
type SurfaceError = render.SurfaceError
