// Package mirror composites virtual makeup onto live video.
//
// # Overview
//
// A landmark provider reports one face per frame as a fixed-length list of
// points in a known index scheme (Dense468 or Sparse68). The Pipeline
// smooths those points over time, resolves them into facial regions and
// draws a fixed stack of cosmetic layers over the mirrored frame:
//
//	skin impression → blush → highlighter → eyeshadow → eyeliner → lipstick → debug
//
// Each layer is rasterised with gg into a scratch canvas, softened with a
// Gaussian blur and blended onto the Surface with its own blend mode
// (multiply, screen, overlay, soft-light or source-over).
//
// # Quick Start
//
//	p := mirror.NewPipeline(mirror.Dense468, 1280, 720)
//	state := mirror.Looks[0].State
//	st := p.Render(frame, landmarks, state)
//	img := p.Surface().Image()
//
// # Live sessions
//
// Session connects a FrameSource, a Provider and a Sink. Detection runs in
// its own goroutine and publishes only the newest result; the render loop
// ticks at a fixed interval and never waits for the detector.
//
// # Logging
//
// mirror is silent by default. Use SetLogger to route diagnostics to any
// slog handler.
package mirror
