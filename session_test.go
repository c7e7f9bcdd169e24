package mirror_test

import (
	"context"
	"errors"
	"image"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gogpu/mirror"
	"github.com/gogpu/mirror/internal/facegen"
)

const sessW, sessH = 64, 64

type fakeSource struct {
	frame   image.Image
	openErr error
	seq     atomic.Uint64
	opened  atomic.Int32
	closed  atomic.Int32
}

func (s *fakeSource) Open(context.Context) error {
	s.opened.Add(1)
	return s.openErr
}

func (s *fakeSource) Frame() (image.Image, uint64) { return s.frame, s.seq.Add(1) }

func (s *fakeSource) Close() error {
	s.closed.Add(1)
	return nil
}

type fakeProvider struct {
	lm      *mirror.LandmarkSet
	loadErr error
	err     error
}

func (p *fakeProvider) Load(context.Context) error { return p.loadErr }

func (p *fakeProvider) Detect(ctx context.Context, _ image.Image) (*mirror.LandmarkSet, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(time.Millisecond):
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.lm, nil
}

type fakeSink struct {
	mu     sync.Mutex
	frames int
	faces  int
	ch     chan struct{}
}

func newFakeSink() *fakeSink { return &fakeSink{ch: make(chan struct{}, 1024)} }

func (s *fakeSink) Present(_ *mirror.Surface, st mirror.FrameStats) {
	s.mu.Lock()
	s.frames++
	if st.Face {
		s.faces++
	}
	s.mu.Unlock()
	select {
	case s.ch <- struct{}{}:
	default:
	}
}

func (s *fakeSink) wait(t *testing.T, n int) {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for range n {
		select {
		case <-s.ch:
		case <-timeout:
			t.Fatalf("timed out waiting for %d frames", n)
		}
	}
}

func newTestSession(src *fakeSource, prov *fakeProvider, sink *fakeSink) *mirror.Session {
	p := mirror.NewPipeline(mirror.Sparse68, sessW, sessH)
	return mirror.NewSession(p, src, prov, sink, mirror.StaticState(mirror.Looks[0].State),
		mirror.WithFrameInterval(2*time.Millisecond))
}

func sessionFace() *mirror.LandmarkSet {
	return face(mirror.Sparse68, sessW, sessH)
}

func TestSessionRunStop(t *testing.T) {
	src := &fakeSource{frame: facegen.Solid(sessW, sessH, skin)}
	sink := newFakeSink()
	sess := newTestSession(src, &fakeProvider{lm: sessionFace()}, sink)

	errc := make(chan error, 1)
	go func() { errc <- sess.Run(context.Background()) }()

	sink.wait(t, 10)
	if err := sess.Stop(); err != nil {
		t.Fatalf("Stop() = %v", err)
	}
	if err := <-errc; err != nil {
		t.Errorf("Run() = %v, want nil after Stop", err)
	}

	sink.mu.Lock()
	frames, faces := sink.frames, sink.faces
	sink.mu.Unlock()
	if faces == 0 {
		t.Error("no frame carried makeup")
	}
	st := sess.Stats()
	if st.Frames != uint64(frames) {
		t.Errorf("Stats().Frames = %d, sink saw %d", st.Frames, frames)
	}
	if st.Detections == 0 {
		t.Error("Stats().Detections = 0")
	}

	// No frame is presented after Stop returns.
	time.Sleep(20 * time.Millisecond)
	sink.mu.Lock()
	after := sink.frames
	sink.mu.Unlock()
	if after != frames {
		t.Errorf("%d frames presented after Stop", after-frames)
	}

	if err := sess.Stop(); err != nil {
		t.Errorf("second Stop() = %v", err)
	}
	if got := src.closed.Load(); got != 1 {
		t.Errorf("source closed %d times, want 1", got)
	}
	if err := sess.Run(context.Background()); !errors.Is(err, mirror.ErrSessionClosed) {
		t.Errorf("Run() after Stop = %v, want ErrSessionClosed", err)
	}
}

func TestSessionContextCancel(t *testing.T) {
	src := &fakeSource{frame: facegen.Solid(sessW, sessH, skin)}
	sink := newFakeSink()
	sess := newTestSession(src, &fakeProvider{}, sink)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- sess.Run(ctx) }()

	sink.wait(t, 3)
	cancel()
	select {
	case err := <-errc:
		if err != nil {
			t.Errorf("Run() = %v, want nil on cancel", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after cancel")
	}
	if got := src.closed.Load(); got != 1 {
		t.Errorf("source closed %d times, want 1", got)
	}
}

func TestSessionOpenErrors(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name   string
		src    *fakeSource
		prov   *fakeProvider
		want   error
		closes int32
	}{
		{"source", &fakeSource{openErr: boom}, &fakeProvider{}, mirror.ErrSourceUnavailable, 0},
		{"provider", &fakeSource{}, &fakeProvider{loadErr: boom}, mirror.ErrProviderUnavailable, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := newTestSession(tt.src, tt.prov, newFakeSink())
			err := sess.Run(context.Background())
			if !errors.Is(err, tt.want) || !errors.Is(err, boom) {
				t.Errorf("Run() = %v, want %v wrapping boom", err, tt.want)
			}
			if err := sess.Run(context.Background()); !errors.Is(err, mirror.ErrSessionClosed) {
				t.Errorf("second Run() = %v, want ErrSessionClosed", err)
			}
			if err := sess.Stop(); err != nil {
				t.Errorf("Stop() = %v", err)
			}
			if got := tt.src.closed.Load(); got != tt.closes {
				t.Errorf("source closed %d times, want %d", got, tt.closes)
			}
		})
	}
}

// stubbornProvider ignores ctx, like a model call that cannot be
// interrupted.
type stubbornProvider struct {
	lm *mirror.LandmarkSet
}

func (p *stubbornProvider) Load(context.Context) error { return nil }

func (p *stubbornProvider) Detect(context.Context, image.Image) (*mirror.LandmarkSet, error) {
	time.Sleep(time.Millisecond)
	return p.lm, nil
}

func TestSessionStopWithProviderIgnoringContext(t *testing.T) {
	src := &fakeSource{frame: facegen.Solid(sessW, sessH, skin)}
	sink := newFakeSink()
	p := mirror.NewPipeline(mirror.Sparse68, sessW, sessH)
	sess := mirror.NewSession(p, src, &stubbornProvider{lm: sessionFace()}, sink,
		mirror.StaticState(mirror.NoMakeup), mirror.WithFrameInterval(2*time.Millisecond))

	errc := make(chan error, 1)
	go func() { errc <- sess.Run(context.Background()) }()
	sink.wait(t, 3)

	stopped := make(chan error, 1)
	go func() { stopped <- sess.Stop() }()
	select {
	case err := <-stopped:
		if err != nil {
			t.Errorf("Stop() = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Stop() did not return while the provider ignores ctx")
	}
	if err := <-errc; err != nil {
		t.Errorf("Run() = %v, want nil", err)
	}
}

func TestSessionProviderErrors(t *testing.T) {
	src := &fakeSource{frame: facegen.Solid(sessW, sessH, skin)}
	sink := newFakeSink()
	sess := newTestSession(src, &fakeProvider{err: errors.New("model crashed")}, sink)

	go sess.Run(context.Background())
	sink.wait(t, 5)
	if err := sess.Stop(); err != nil {
		t.Fatalf("Stop() = %v", err)
	}
	if sess.Stats().ProviderErrors == 0 {
		t.Error("Stats().ProviderErrors = 0")
	}
	sink.mu.Lock()
	defer sink.mu.Unlock()
	if sink.faces != 0 {
		t.Errorf("%d frames with makeup while the provider failed", sink.faces)
	}
}

func TestSessionRejectedLandmarks(t *testing.T) {
	src := &fakeSource{frame: facegen.Solid(sessW, sessH, skin)}
	sink := newFakeSink()
	bad := mirror.LandmarkSet{Points: make([]mirror.Point, 5)}
	sess := newTestSession(src, &fakeProvider{lm: &bad}, sink)

	go sess.Run(context.Background())
	deadline := time.Now().Add(5 * time.Second)
	for sess.Stats().Rejected == 0 && time.Now().Before(deadline) {
		sink.wait(t, 1)
	}
	if err := sess.Stop(); err != nil {
		t.Fatalf("Stop() = %v", err)
	}
	if sess.Stats().Rejected == 0 {
		t.Error("Stats().Rejected = 0")
	}
}

func TestSessionSkinAnalysis(t *testing.T) {
	src := &fakeSource{frame: facegen.Frame(sessW, sessH, facegen.Centered(sessW, sessH), skin, bg)}
	sink := newFakeSink()
	sess := newTestSession(src, &fakeProvider{lm: sessionFace()}, sink)

	ch := sess.RequestSkinAnalysis()
	go sess.Run(context.Background())
	defer sess.Stop()

	select {
	case a := <-ch:
		if a.Tone != mirror.ToneFair || a.Undertone != mirror.UndertoneNeutral {
			t.Errorf("analysis = %s/%s, want fair/neutral", a.Tone, a.Undertone)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no skin analysis delivered")
	}
}

func TestSessionStopBeforeRun(t *testing.T) {
	src := &fakeSource{}
	sess := newTestSession(src, &fakeProvider{}, newFakeSink())
	if err := sess.Stop(); err != nil {
		t.Fatalf("Stop() = %v", err)
	}
	if err := sess.Run(context.Background()); !errors.Is(err, mirror.ErrSessionClosed) {
		t.Errorf("Run() = %v, want ErrSessionClosed", err)
	}
	if src.opened.Load() != 0 {
		t.Error("source opened after Stop")
	}
	if got := src.closed.Load(); got != 0 {
		t.Errorf("unopened source closed %d times, want 0", got)
	}
	if sess.ID() == "" {
		t.Error("ID() is empty")
	}
}
