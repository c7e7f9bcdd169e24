package mirror

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// FrameSource delivers video frames, typically from a camera.
type FrameSource interface {
	// Open acquires the device.
	Open(ctx context.Context) error
	// Frame returns the newest frame and its sequence number. Frame is nil
	// until the first frame arrives. It must not block.
	Frame() (image.Image, uint64)
	// Close releases the device.
	Close() error
}

// Provider detects face landmarks, typically with an ML model.
type Provider interface {
	// Load prepares the model.
	Load(ctx context.Context) error
	// Detect returns the landmarks of the face in frame, or nil when there
	// is none. Detection timeouts are the provider's concern.
	Detect(ctx context.Context, frame image.Image) (*LandmarkSet, error)
}

// Sink receives each finished frame. The surface is only valid until
// Present returns.
type Sink interface {
	Present(s *Surface, st FrameStats)
}

// StateSource supplies the makeup state for the next frame.
type StateSource interface {
	State() MakeupState
}

// StateFunc adapts a function to StateSource.
type StateFunc func() MakeupState

// State calls f.
func (f StateFunc) State() MakeupState { return f() }

// StaticState returns a StateSource that always reports m.
func StaticState(m MakeupState) StateSource {
	return StateFunc(func() MakeupState { return m })
}

// SessionStats holds session counters.
type SessionStats struct {
	Frames         uint64 // frames presented
	Detections     uint64 // provider results published
	Dropped        uint64 // render ticks skipped because rendering ran late
	Rejected       uint64 // landmark sets that did not match the scheme
	ProviderErrors uint64
}

// detection is one published provider result. lm is nil when no face was
// found.
type detection struct {
	seq uint64
	lm  *LandmarkSet
}

const (
	sessionIdle int32 = iota
	sessionRunning
	sessionStopped
)

// Session runs a live mirror: a detector loop feeding the newest landmarks
// into a single slot, and a render loop drawing one frame per tick from
// the newest video frame and the newest landmarks.
type Session struct {
	id     string
	p      *Pipeline
	src    FrameSource
	prov   Provider
	sink   Sink
	looks  StateSource
	opts   sessionOptions
	state  atomic.Int32
	latest atomic.Pointer[detection]

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	opened    atomic.Bool
	closeOnce sync.Once
	closeErr  error

	skinReq  atomic.Bool
	analysis chan SkinAnalysis

	frames, detections, dropped, rejected, providerErrs atomic.Uint64
}

// NewSession creates a session. Nothing is opened until Run.
func NewSession(p *Pipeline, src FrameSource, prov Provider, sink Sink, looks StateSource, opts ...SessionOption) *Session {
	o := defaultSessionOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Session{
		id:       uuid.NewString(),
		p:        p,
		src:      src,
		prov:     prov,
		sink:     sink,
		looks:    looks,
		opts:     o,
		done:     make(chan struct{}),
		analysis: make(chan SkinAnalysis, 1),
	}
}

// ID returns the session identifier used in log records.
func (s *Session) ID() string { return s.id }

// Run opens the source and provider and runs both loops until ctx is
// cancelled, Stop is called or a loop fails. It returns nil on a clean
// stop. Open failures are wrapped in ErrSourceUnavailable or
// ErrProviderUnavailable. Run may be called once.
func (s *Session) Run(ctx context.Context) error {
	if !s.state.CompareAndSwap(sessionIdle, sessionRunning) {
		return ErrSessionClosed
	}
	defer close(s.done)
	log := Logger().With("session", s.id)

	if err := s.src.Open(ctx); err != nil {
		s.state.Store(sessionStopped)
		return fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	s.opened.Store(true)
	defer s.closeSource()
	if err := s.prov.Load(ctx); err != nil {
		s.state.Store(sessionStopped)
		return fmt.Errorf("%w: %w", ErrProviderUnavailable, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.mu.Lock()
	s.cancel = cancel
	stopped := s.state.Load() == sessionStopped
	s.mu.Unlock()
	if stopped {
		return nil
	}

	log.Info("mirror: session started", "scheme", s.p.Scheme().Name(), "interval", s.opts.interval)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.detectLoop(gctx) })
	g.Go(func() error { return s.renderLoop(gctx) })
	err := g.Wait()
	s.state.Store(sessionStopped)
	log.Info("mirror: session stopped", "frames", s.frames.Load(), "dropped", s.dropped.Load())

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Stop halts both loops, waits for them to exit and closes the frame
// source if Run opened it. No frame is presented after Stop returns. Stop
// is idempotent and returns the source's Close error, if any.
func (s *Session) Stop() error {
	s.mu.Lock()
	prev := s.state.Swap(sessionStopped)
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if prev == sessionRunning {
		<-s.done
	}
	s.closeSource()
	return s.closeErr
}

func (s *Session) closeSource() {
	if !s.opened.Load() {
		return
	}
	s.closeOnce.Do(func() {
		s.closeErr = s.src.Close()
	})
}

// Stats returns a snapshot of the session counters.
func (s *Session) Stats() SessionStats {
	return SessionStats{
		Frames:         s.frames.Load(),
		Detections:     s.detections.Load(),
		Dropped:        s.dropped.Load(),
		Rejected:       s.rejected.Load(),
		ProviderErrors: s.providerErrs.Load(),
	}
}

// RequestSkinAnalysis asks for a skin-tone analysis of the next frame with
// a face. The result is delivered on the returned channel, which holds at
// most one pending result.
func (s *Session) RequestSkinAnalysis() <-chan SkinAnalysis {
	s.skinReq.Store(true)
	return s.analysis
}

func (s *Session) detectLoop(ctx context.Context) error {
	idle := time.NewTicker(s.opts.interval)
	defer idle.Stop()

	var lastFrame, seq uint64
	for {
		// Providers may ignore ctx, so check it between detections too.
		if err := ctx.Err(); err != nil {
			return err
		}
		frame, fseq := s.src.Frame()
		if frame == nil || fseq == lastFrame {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-idle.C:
				continue
			}
		}
		lastFrame = fseq

		lm, err := s.prov.Detect(ctx, frame)
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if err != nil {
			s.providerErrs.Add(1)
			Logger().Warn("mirror: detection failed", "session", s.id, "err", err)
			lm = nil
		}
		seq++
		s.latest.Store(&detection{seq: seq, lm: lm})
		s.detections.Add(1)
	}
}

func (s *Session) renderLoop(ctx context.Context) error {
	ticker := time.NewTicker(s.opts.interval)
	defer ticker.Stop()

	var rendered uint64
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if late := now.Sub(last) / s.opts.interval; late > 1 {
				s.dropped.Add(uint64(late - 1))
				Logger().Debug("mirror: frames dropped", "session", s.id, "n", late-1)
			}
			last = now
		}

		frame, _ := s.src.Frame()
		if frame == nil {
			continue
		}
		if s.skinReq.Swap(false) {
			s.p.RequestSkinTone()
		}
		state := s.looks.State()

		var st FrameStats
		if d := s.latest.Load(); d != nil && d.seq != rendered {
			rendered = d.seq
			st = s.p.Render(frame, d.lm, state)
		} else {
			st = s.p.Redraw(frame, state)
		}
		if st.Rejected {
			s.rejected.Add(1)
		}
		if st.SkinTone != nil {
			s.deliver(*st.SkinTone)
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
		s.sink.Present(s.p.Surface(), st)
		s.frames.Add(1)
	}
}

// deliver replaces any unread analysis with a.
func (s *Session) deliver(a SkinAnalysis) {
	for {
		select {
		case s.analysis <- a:
			return
		default:
		}
		select {
		case <-s.analysis:
		default:
		}
	}
}
