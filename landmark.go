package mirror

import "math"

// Point is a single landmark position. Z is optional depth and is carried
// through smoothing but never used for drawing.
type Point struct {
	X, Y, Z float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y, Z: p.Z + q.Z}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y, Z: p.Z - q.Z}
}

// Scale returns p * s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s, Z: p.Z * s}
}

// Len returns the 2D length of p treated as a vector.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// CoordinateSpace tells how landmark coordinates relate to the frame.
type CoordinateSpace int

const (
	// SpacePixel coordinates are frame pixels.
	SpacePixel CoordinateSpace = iota
	// SpaceNormalized coordinates are in [0,1] relative to frame size.
	SpaceNormalized
)

// String returns the name of the coordinate space.
func (s CoordinateSpace) String() string {
	switch s {
	case SpacePixel:
		return "pixel"
	case SpaceNormalized:
		return "normalized"
	default:
		return "unknown"
	}
}

// LandmarkSet is one frame of landmark provider output: an ordered,
// fixed-length sequence of points in a fixed index scheme.
type LandmarkSet struct {
	Points []Point
	Space  CoordinateSpace
}

// Len returns the number of points.
func (ls LandmarkSet) Len() int {
	return len(ls.Points)
}

// Clone returns a deep copy of ls.
func (ls LandmarkSet) Clone() LandmarkSet {
	pts := make([]Point, len(ls.Points))
	copy(pts, ls.Points)
	return LandmarkSet{Points: pts, Space: ls.Space}
}
