package meme

import (
	"context"
	"errors"
	"sync"
)

// Sink receives the results of a run that was still current when it finished.
type Sink func(*Run)

// Session serializes delivery for one caller. Every Generate begins a new run
// and makes all earlier runs stale; a stale run never reaches its Sink.
type Session struct {
	gen *Generator

	mu     sync.Mutex
	latest uint64
}

// NewSession returns a Session rendering with gen.
func NewSession(gen *Generator) *Session {
	return &Session{gen: gen}
}

// Generator returns the session's generator.
func (s *Session) Generator() *Generator {
	return s.gen
}

func (s *Session) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest++
	return s.latest
}

// current returns ErrSuperseded once a newer run has begun.
func (s *Session) current(token uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.latest {
		return ErrSuperseded
	}
	return nil
}

// deliver hands run to sink only if it is still the latest run. The lock is
// held across the call so no newer run can begin in between.
func (s *Session) deliver(run *Run, sink Sink) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if run.Token != s.latest {
		return ErrSuperseded
	}
	if sink != nil {
		sink(run)
	}
	return nil
}

// Generate runs the whole pipeline for req:
//  1. decode the logo (the only step that waits; ctx aborts it)
//  2. extract the palette once
//  3. render each variation with styles cycling classic, modern, bold
//  4. deliver to sink if no newer run has begun
//
// Parameters:
//   - ctx: Cancels the decode and stops rendering between variations.
//   - req: The logo source, variation count, background style and optional
//     custom caption. A custom caption renders exactly one variation.
//   - sink: Called at most once, with the finished run, while no newer run
//     can begin. May be nil.
//
// Returns nil once sink has been called.
//
// # Errors
//
//   - ErrSuperseded if another Generate began on this Session at any point
//     before delivery; sink is not called
//   - *DecodeError if the logo cannot be read or has no pixels
//   - *SurfaceError if a canvas, face or PNG encoding fails
//   - ctx.Err() if ctx is cancelled while rendering
//
// Extraction failures are not returned. The run continues with the fallback
// palette and Run.Fallback is set.
func (s *Session) Generate(ctx context.Context, req Request, sink Sink) error {
	token := s.begin()
	log := s.gen.logger.With("run", token)
	log.Debug("run started", "count", req.Count, "custom", req.Custom != nil)

	img, err := decode(ctx, req.Source)
	if staleErr := s.current(token); staleErr != nil {
		log.Info("discarding superseded run", "stage", "decode")
		return staleErr
	}
	if err != nil {
		log.Error("logo decode failed", "error", err)
		return err
	}

	run := &Run{Token: token}
	run.Palette, run.Text, run.Fallback = s.gen.extractPalette(img)

	abort := func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return s.current(token)
	}
	if err := s.gen.renderAll(img, req, run, abort); err != nil {
		if errors.Is(err, ErrSuperseded) {
			log.Info("discarding superseded run", "stage", "render")
		} else {
			log.Error("render failed", "error", err)
		}
		return err
	}

	if err := s.deliver(run, sink); err != nil {
		log.Info("discarding superseded run", "stage", "delivery")
		return err
	}
	log.Debug("run delivered", "results", len(run.Results), "fallback", run.Fallback)
	return nil
}
