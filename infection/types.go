// SPDX-License-Identifier: MIT
package infection

import (
	"context"
	"errors"
	"io"
	"log/slog"
)

// Sentinel errors for infection runs.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("infection: graph is nil")

	// ErrEmptyGraph is returned by Limited on a graph with no users.
	ErrEmptyGraph = errors.New("infection: graph has no users")

	// ErrInvalidCount is returned by Limited for a count below one.
	ErrInvalidCount = errors.New("infection: count must be at least 1")
)

// Mode names the propagation strategy of a run.
type Mode string

const (
	// ModeTotal infects a whole weakly connected component.
	ModeTotal Mode = "total"

	// ModeLimited infects one spanning subtree of approximately the requested size.
	ModeLimited Mode = "limited"
)

// Result reports what a run changed.
type Result struct {
	Mode    Mode
	Version string

	// Infected lists the users whose version was set, in visit order.
	Infected []string

	// Requested is the count asked for (Limited only).
	Requested int

	// Selected is the start user (Total) or the chosen subtree root (Limited).
	// For Limited it may be the virtual root, spanning.RootID.
	Selected string
}

// Recorder observes completed runs. metrics.Collector implements it.
type Recorder interface {
	Observe(r *Result)
}

// Option configures a run via functional arguments.
type Option func(*Options)

// Options holds the parameters of a run.
type Options struct {
	// Ctx allows cancellation; checked once per dequeued user.
	// A cancelled run writes no versions.
	Ctx context.Context

	// Logger receives one debug record per phase and one info record per run.
	Logger *slog.Logger

	// Recorder, if non-nil, observes every successful run.
	Recorder Recorder
}

// DefaultOptions returns a background context, a discarding logger and no recorder.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a custom context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes run logs to l. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder registers r to observe successful runs.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		o.Recorder = r
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// done reports a cancellation error without blocking.
func (o *Options) done() error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
		return nil
	}
}
