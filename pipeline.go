package mirror

import (
	"image"
	"time"

	"github.com/gogpu/mirror/internal/parallel"
)

// FrameStats describes one rendered frame.
type FrameStats struct {
	// Face reports whether makeup was drawn.
	Face bool
	// Rejected reports landmarks that did not match the scheme; the frame
	// was drawn as if no face had been detected.
	Rejected bool
	// Layers counts the composite operations issued by makeup layers.
	Layers int
	// Duration is the wall time spent in Render or Redraw.
	Duration time.Duration
	// SkinTone is set on the frame that served a RequestSkinTone call.
	SkinTone *SkinAnalysis
}

// Pipeline composites makeup onto video frames in a fixed layer order:
// skin impression, blush, highlighter, eyeshadow, eyeliner, lipstick and
// finally the optional debug overlay.
//
// A Pipeline owns its surface, scratch canvas and smoother. It is not safe
// for concurrent use; drive it from a single render loop.
type Pipeline struct {
	scheme   *Scheme
	opts     pipelineOptions
	surface  *Surface
	canvas   *canvas
	smoother *Smoother

	frame  image.Point  // size of the last video frame, zero when none
	missed int          // consecutive frames without a usable face
	drawn  *LandmarkSet // smoothed landmarks of the last frame with makeup
	sample bool         // skin tone requested
}

// NewPipeline creates a pipeline for the given scheme and output size.
func NewPipeline(scheme *Scheme, width, height int, opts ...PipelineOption) *Pipeline {
	o := defaultPipelineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	alpha := scheme.Smoothing()
	if o.smoothing >= 0 {
		alpha = o.smoothing
	}
	surface := NewSurface(width, height)
	surface.bands = parallel.NewBands(o.workers)
	return &Pipeline{
		scheme:   scheme,
		opts:     o,
		surface:  surface,
		canvas:   newCanvas(width, height),
		smoother: NewSmoother(alpha),
	}
}

// Scheme returns the landmark scheme the pipeline was created for.
func (p *Pipeline) Scheme() *Scheme { return p.scheme }

// Surface returns the output surface. Its contents are replaced by every
// Render and Redraw call.
func (p *Pipeline) Surface() *Surface { return p.surface }

// Reset drops the smoother state and the record of the last drawn face.
func (p *Pipeline) Reset() {
	p.smoother.Reset()
	p.missed = 0
	p.drawn = nil
}

// Render draws frame and, when lm holds a face matching the scheme, the
// makeup described by state. A nil lm means no face was detected.
//
// Landmarks are smoothed before use. After more than the configured gap of
// consecutive frames without a face the smoother starts over.
func (p *Pipeline) Render(frame image.Image, lm *LandmarkSet, state MakeupState) FrameStats {
	start := time.Now()
	p.drawFrame(frame)

	var st FrameStats
	if lm != nil {
		if err := p.scheme.Validate(*lm); err != nil {
			Logger().Warn("mirror: landmarks rejected", "err", err)
			st.Rejected = true
			lm = nil
		}
	}
	if lm == nil {
		p.noFace()
		st.Duration = time.Since(start)
		return st
	}

	p.missed = 0
	smoothed := p.smoother.Smooth(*lm)
	p.drawn = &smoothed
	st.Face = true
	st.SkinTone = p.sampleSkin(smoothed)
	st.Layers = p.drawMakeup(smoothed, state)
	st.Duration = time.Since(start)
	return st
}

// Redraw draws frame with the most recent smoothed landmarks, for ticks
// where the provider has no new output. Without a previous face it draws
// the plain frame. The smoother is not advanced.
func (p *Pipeline) Redraw(frame image.Image, state MakeupState) FrameStats {
	start := time.Now()
	p.drawFrame(frame)

	var st FrameStats
	if p.drawn != nil {
		st.Face = true
		st.SkinTone = p.sampleSkin(*p.drawn)
		st.Layers = p.drawMakeup(*p.drawn, state)
	}
	st.Duration = time.Since(start)
	return st
}

func (p *Pipeline) drawFrame(frame image.Image) {
	p.frame = image.Point{}
	if frame != nil {
		p.frame = frame.Bounds().Size()
	}
	p.surface.DrawFrame(frame, p.opts.mirror)
}

func (p *Pipeline) noFace() {
	p.missed++
	p.drawn = nil
	if p.missed > p.opts.maxGap {
		if _, ok := p.smoother.Last(); ok {
			Logger().Debug("mirror: face lost, smoother reset", "missed", p.missed)
			p.smoother.Reset()
		}
	}
}

func (p *Pipeline) resolver(lm LandmarkSet) *Resolver {
	return NewResolver(p.scheme, lm, p.surface.Width(), p.surface.Height(), p.opts.mirror).
		ScaleFrom(p.frame.X, p.frame.Y)
}

func (p *Pipeline) drawMakeup(lm LandmarkSet, state MakeupState) int {
	r := p.resolver(lm)
	e := &layerEnv{s: p.surface, c: p.canvas, r: r, u: r.Unit()}

	n := renderSkin(e, state.Skin)
	n += renderBlush(e, state.Face.BlushColor, state.Face.BlushOpacity)
	n += renderHighlighter(e, state.Face.HighlighterColor, state.Face.HighlighterOpacity)
	n += renderEyeshadow(e, state.Eyes.ShadowColor, state.Eyes.ShadowOpacity)
	n += renderEyeliner(e, state.Eyes.LinerColor, state.Eyes.LinerOpacity, state.Eyes.LinerStyle)
	n += renderLipstick(e, state.Lips.Color, state.Lips.Opacity, state.Lips.Finish)

	if p.opts.debug {
		renderDebug(p.surface, r)
	}
	return n
}

// RequestSkinTone asks for a skin-tone analysis. The next frame drawn
// with a face samples the bare video before any makeup and reports the
// result in FrameStats.SkinTone.
func (p *Pipeline) RequestSkinTone() {
	p.sample = true
}

func (p *Pipeline) sampleSkin(lm LandmarkSet) *SkinAnalysis {
	if !p.sample {
		return nil
	}
	p.sample = false
	a := SampleSkinTone(p.surface, p.resolver(lm))
	return &a
}
