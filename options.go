package mirror

import "time"

// PipelineOption configures a Pipeline during creation.
//
// Example:
//
//	// Mirrored preview with the landmark overlay
//	p := mirror.NewPipeline(mirror.Dense468, 1280, 720,
//		mirror.WithMirror(true), mirror.WithDebug(true))
type PipelineOption func(*pipelineOptions)

// pipelineOptions holds optional configuration for Pipeline creation.
type pipelineOptions struct {
	mirror    bool
	debug     bool
	smoothing float64 // < 0 means the scheme default
	maxGap    int
	workers   int // 0 means GOMAXPROCS
}

// defaultPipelineOptions returns the default pipeline options.
func defaultPipelineOptions() pipelineOptions {
	return pipelineOptions{
		mirror:    true,
		smoothing: -1,
		maxGap:    1,
	}
}

// WithMirror sets whether frames and landmarks are flipped horizontally
// before drawing. The default is true, the usual selfie view.
func WithMirror(on bool) PipelineOption {
	return func(o *pipelineOptions) {
		o.mirror = on
	}
}

// WithDebug enables the landmark overlay drawn after all makeup layers.
func WithDebug(on bool) PipelineOption {
	return func(o *pipelineOptions) {
		o.debug = on
	}
}

// WithSmoothingFactor overrides the scheme's temporal smoothing factor.
// See NewSmoother for the accepted range.
func WithSmoothingFactor(alpha float64) PipelineOption {
	return func(o *pipelineOptions) {
		o.smoothing = alpha
	}
}

// WithMaxGap sets how many consecutive frames without a face the
// pipeline bridges before it resets the smoother. Negative values are
// treated as 0.
func WithMaxGap(frames int) PipelineOption {
	return func(o *pipelineOptions) {
		o.maxGap = max(frames, 0)
	}
}

// WithWorkers sets how many goroutines composite a layer onto the
// surface. 0, the default, uses GOMAXPROCS; 1 composites on the calling
// goroutine.
func WithWorkers(n int) PipelineOption {
	return func(o *pipelineOptions) {
		o.workers = max(n, 0)
	}
}

// SessionOption configures a Session during creation.
type SessionOption func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	interval time.Duration
}

// defaultSessionOptions returns the default session options: one frame
// per display refresh at 60 Hz.
func defaultSessionOptions() sessionOptions {
	return sessionOptions{
		interval: time.Second / 60,
	}
}

// WithFrameInterval sets the render loop period. Non-positive values keep
// the default.
func WithFrameInterval(d time.Duration) SessionOption {
	return func(o *sessionOptions) {
		if d > 0 {
			o.interval = d
		}
	}
}
