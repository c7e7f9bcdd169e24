package mirror

import "math"

// Smoother suppresses landmark jitter with an exponential moving average.
// It owns exactly one state slot: the previous smoothed LandmarkSet.
// Use one Smoother per tracked face. A Smoother is not safe for
// concurrent use.
type Smoother struct {
	alpha float64
	prev  []Point
	space CoordinateSpace
	valid bool
}

// NewSmoother creates a smoother with factor alpha in [0,1).
// Higher alpha means more lag and less jitter. Values outside the range
// are clamped; alpha 0 passes landmarks through unchanged.
func NewSmoother(alpha float64) *Smoother {
	switch {
	case math.IsNaN(alpha) || alpha < 0:
		alpha = 0
	case alpha >= 1:
		alpha = 0.99
	}
	return &Smoother{alpha: alpha}
}

// Alpha returns the smoothing factor.
func (s *Smoother) Alpha() float64 { return s.alpha }

// Smooth blends raw with the previous output and stores the result:
//
//	out[i] = prev[i]*alpha + raw[i]*(1-alpha)
//
// The first call, the first call after Reset, and any call whose length
// or coordinate space differs from the stored state return a copy of raw
// unchanged. The returned set never aliases raw or internal state.
func (s *Smoother) Smooth(raw LandmarkSet) LandmarkSet {
	if !s.valid || len(s.prev) != len(raw.Points) || s.space != raw.Space {
		if s.valid {
			Logger().Debug("mirror: smoother reset on shape change",
				"prev", len(s.prev), "raw", len(raw.Points))
		}
		s.store(raw.Points, raw.Space)
		return raw.Clone()
	}

	a := s.alpha
	b := 1 - a
	for i, p := range raw.Points {
		q := s.prev[i]
		s.prev[i] = Point{
			X: q.X*a + p.X*b,
			Y: q.Y*a + p.Y*b,
			Z: q.Z*a + p.Z*b,
		}
	}
	return s.snapshot()
}

// Last returns the most recent smoothed output, if any.
func (s *Smoother) Last() (LandmarkSet, bool) {
	if !s.valid {
		return LandmarkSet{}, false
	}
	return s.snapshot(), true
}

// Reset drops the stored state; the next Smooth call is treated as first.
func (s *Smoother) Reset() {
	s.valid = false
	s.prev = s.prev[:0]
}

func (s *Smoother) store(pts []Point, space CoordinateSpace) {
	if cap(s.prev) >= len(pts) {
		s.prev = s.prev[:len(pts)]
	} else {
		s.prev = make([]Point, len(pts))
	}
	copy(s.prev, pts)
	s.space = space
	s.valid = true
}

func (s *Smoother) snapshot() LandmarkSet {
	out := make([]Point, len(s.prev))
	copy(out, s.prev)
	return LandmarkSet{Points: out, Space: s.space}
}
