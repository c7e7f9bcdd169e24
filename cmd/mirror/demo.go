package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/mirror"
	"github.com/gogpu/mirror/internal/facegen"
)

var (
	demoSkin       = color.NRGBA{R: 220, G: 180, B: 160, A: 255}
	demoBackground = color.NRGBA{R: 40, G: 44, B: 52, A: 255}
)

func newDemoCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a live session on a synthetic face and save the last frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.Context(), v, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.String("scheme", "dense468", "landmark scheme: dense468 or sparse68")
	f.Int("width", 640, "frame width")
	f.Int("height", 480, "frame height")
	f.Int("frames", 30, "frames to render before stopping")
	f.Duration("interval", time.Second/30, "render loop period")
	f.String("preset", "", "built-in look name (see 'mirror looks')")
	f.Bool("mirror", true, "flip frames horizontally")
	f.Bool("debug", false, "draw the landmark overlay")
	f.Float64("jitter", 1.5, "landmark noise in pixels")
	f.Bool("analyze", false, "report the skin tone of the first frame")
	f.StringP("output", "o", "mirror.png", "output image")
	return cmd
}

func runDemo(ctx context.Context, v *viper.Viper, out io.Writer) error {
	scheme, err := mirror.SchemeByName(v.GetString("scheme"))
	if err != nil {
		return err
	}
	w, h := v.GetInt("width"), v.GetInt("height")
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: frame size %dx%d", mirror.ErrInvalidConfig, w, h)
	}
	look, err := resolveLook(v)
	if err != nil {
		return err
	}

	box := facegen.Centered(w, h)
	p := mirror.NewPipeline(scheme, w, h,
		mirror.WithMirror(v.GetBool("mirror")),
		mirror.WithDebug(v.GetBool("debug")))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sink := &captureSink{limit: uint64(max(v.GetInt("frames"), 1)), done: cancel}
	sess := mirror.NewSession(p,
		&syntheticSource{frame: facegen.Frame(w, h, box, demoSkin, demoBackground)},
		newSyntheticProvider(scheme, box, w, h, v.GetFloat64("jitter")),
		sink,
		mirror.StaticState(look),
		mirror.WithFrameInterval(v.GetDuration("interval")))

	var analysis <-chan mirror.SkinAnalysis
	if v.GetBool("analyze") {
		analysis = sess.RequestSkinAnalysis()
	}

	if err := sess.Run(ctx); err != nil {
		return err
	}
	if err := sess.Stop(); err != nil {
		return err
	}

	img := sink.last()
	if img == nil {
		return fmt.Errorf("no frame rendered")
	}
	path := v.GetString("output")
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	st := sess.Stats()
	fmt.Fprintf(out, "session %s: %d frames, %d detections, %d dropped -> %s\n",
		sess.ID(), st.Frames, st.Detections, st.Dropped, path)

	select {
	case a := <-analysis:
		printAnalysis(out, a)
	default:
	}
	return nil
}

// syntheticSource serves one still frame as a live feed.
type syntheticSource struct {
	frame image.Image
	seq   atomic.Uint64
	open  atomic.Bool
}

func (s *syntheticSource) Open(context.Context) error {
	s.open.Store(true)
	return nil
}

func (s *syntheticSource) Frame() (image.Image, uint64) {
	if !s.open.Load() {
		return nil, 0
	}
	return s.frame, s.seq.Add(1)
}

func (s *syntheticSource) Close() error {
	s.open.Store(false)
	return nil
}

// syntheticProvider reports a fixed face with detector-like jitter. Dense
// results are normalized, sparse results are in pixels, as real providers
// of each scheme report them.
type syntheticProvider struct {
	base   mirror.LandmarkSet
	jitter float64
	w, h   int

	mu  sync.Mutex
	rng *rand.Rand
}

func newSyntheticProvider(s *mirror.Scheme, box facegen.Box, w, h int, jitter float64) *syntheticProvider {
	return &syntheticProvider{
		base:   facegen.Face(s, box),
		jitter: jitter,
		w:      w,
		h:      h,
		rng:    rand.New(rand.NewPCG(1, 2)),
	}
}

func (p *syntheticProvider) Load(context.Context) error { return nil }

func (p *syntheticProvider) Detect(ctx context.Context, _ image.Image) (*mirror.LandmarkSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.mu.Lock()
	ls := facegen.Jitter(p.base, p.jitter, p.rng)
	p.mu.Unlock()
	if ls.Len() == mirror.Dense468.Size() {
		ls = facegen.Normalize(ls, p.w, p.h)
	}
	// Pace detection like a model running at ~15 fps.
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(time.Second / 15):
	}
	return &ls, nil
}

// captureSink keeps a copy of the latest frame and stops the session after
// limit frames.
type captureSink struct {
	limit uint64
	done  func()

	n   atomic.Uint64
	mu  sync.Mutex
	img *image.NRGBA
}

func (s *captureSink) Present(surf *mirror.Surface, _ mirror.FrameStats) {
	img := imaging.Clone(surf.Image())
	s.mu.Lock()
	s.img = img
	s.mu.Unlock()
	if s.n.Add(1) >= s.limit {
		s.done()
	}
}

func (s *captureSink) last() *image.NRGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.img
}
