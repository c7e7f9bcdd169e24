package mirror

import "fmt"

// Feature names a logical facial region. Each Scheme maps a Feature to an
// ordered list of landmark indices; the order defines path winding.
type Feature string

// Features resolved by every scheme.
const (
	FeatureFaceOval       Feature = "faceOval"       // closed face outline
	FeatureLipsOuter      Feature = "lipsOuter"      // closed outer lip loop
	FeatureLipsInner      Feature = "lipsInner"      // closed inner lip (mouth opening) loop
	FeatureLowerLipCenter Feature = "lowerLipCenter" // gloss highlight anchor
	FeatureRightEye       Feature = "rightEye"       // closed eye loop
	FeatureLeftEye        Feature = "leftEye"        // closed eye loop
	FeatureRightUpperLid  Feature = "rightUpperLid"  // lash line, inner to outer corner
	FeatureLeftUpperLid   Feature = "leftUpperLid"   // lash line, inner to outer corner
	FeatureRightBrow      Feature = "rightBrow"      // lower brow edge, outer to inner
	FeatureLeftBrow       Feature = "leftBrow"       // lower brow edge, outer to inner
	FeatureRightBrowTail  Feature = "rightBrowTail"  // outer end of the brow
	FeatureLeftBrowTail   Feature = "leftBrowTail"   // outer end of the brow
	FeatureRightEyeOuter  Feature = "rightEyeOuter"  // outer eye corner
	FeatureLeftEyeOuter   Feature = "leftEyeOuter"   // outer eye corner
	FeatureRightLidReturn Feature = "rightLidReturn" // lash point the eyeliner wing returns to
	FeatureLeftLidReturn  Feature = "leftLidReturn"  // lash point the eyeliner wing returns to
	FeatureRightCheek     Feature = "rightCheek"     // blush centroid set
	FeatureLeftCheek      Feature = "leftCheek"      // blush centroid set
	FeatureRightCheekbone Feature = "rightCheekbone" // highlighter glow centroid set
	FeatureLeftCheekbone  Feature = "leftCheekbone"  // highlighter glow centroid set
	FeatureNoseBridge     Feature = "noseBridge"     // top to bottom
	FeatureCupidsBow      Feature = "cupidsBow"
	FeatureRightBrowBone  Feature = "rightBrowBone"
	FeatureLeftBrowBone   Feature = "leftBrowBone"
	FeatureFaceWidth      Feature = "faceWidth" // two points spanning the face horizontally
	FeatureCheekSample    Feature = "cheekSample"
)

// Features lists every Feature in a stable order.
var Features = []Feature{
	FeatureFaceOval, FeatureLipsOuter, FeatureLipsInner, FeatureLowerLipCenter,
	FeatureRightEye, FeatureLeftEye, FeatureRightUpperLid, FeatureLeftUpperLid,
	FeatureRightBrow, FeatureLeftBrow, FeatureRightBrowTail, FeatureLeftBrowTail,
	FeatureRightEyeOuter, FeatureLeftEyeOuter, FeatureRightLidReturn, FeatureLeftLidReturn,
	FeatureRightCheek, FeatureLeftCheek, FeatureRightCheekbone, FeatureLeftCheekbone,
	FeatureNoseBridge, FeatureCupidsBow, FeatureRightBrowBone, FeatureLeftBrowBone,
	FeatureFaceWidth, FeatureCheekSample,
}

// Scheme describes one landmark model: its fixed point count, the static
// feature-to-index table and the smoothing factor tuned to its detector
// noise. Schemes are immutable; select one per session.
type Scheme struct {
	name      string
	size      int
	smoothing float64
	regions   map[Feature][]int
}

// Name returns the scheme name ("dense468" or "sparse68").
func (s *Scheme) Name() string { return s.name }

// Size returns the number of landmarks the scheme expects.
func (s *Scheme) Size() int { return s.size }

// Smoothing returns the default temporal smoothing factor for the scheme.
func (s *Scheme) Smoothing() float64 { return s.smoothing }

// Indices returns the ordered landmark indices of f.
// The returned slice is a copy; nil means the scheme lacks f.
func (s *Scheme) Indices(f Feature) []int {
	idx, ok := s.regions[f]
	if !ok {
		return nil
	}
	out := make([]int, len(idx))
	copy(out, idx)
	return out
}

// indices returns the table slice without copying. Callers must not modify it.
func (s *Scheme) indices(f Feature) []int {
	return s.regions[f]
}

// Validate reports whether ls can be rendered with this scheme.
func (s *Scheme) Validate(ls LandmarkSet) error {
	if ls.Len() != s.size {
		return fmt.Errorf("%w: %s expects %d points, got %d", ErrInvalidLandmarks, s.name, s.size, ls.Len())
	}
	return nil
}

func (s *Scheme) String() string { return s.name }

// newScheme builds a scheme and checks its table once at init.
func newScheme(name string, size int, smoothing float64, regions map[Feature][]int) *Scheme {
	for _, f := range Features {
		idx, ok := regions[f]
		if !ok || len(idx) == 0 {
			panic(fmt.Sprintf("mirror: scheme %s: missing feature %s", name, f))
		}
		for _, i := range idx {
			if i < 0 || i >= size {
				panic(fmt.Sprintf("mirror: scheme %s: feature %s index %d out of range", name, f, i))
			}
		}
	}
	return &Scheme{name: name, size: size, smoothing: smoothing, regions: regions}
}

// SchemeByName returns the built-in scheme with the given name.
func SchemeByName(name string) (*Scheme, error) {
	switch name {
	case Dense468.name, "dense", "468":
		return Dense468, nil
	case Sparse68.name, "sparse", "68":
		return Sparse68, nil
	default:
		return nil, fmt.Errorf("%w: unknown scheme %q", ErrInvalidConfig, name)
	}
}
