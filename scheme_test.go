package mirror

import (
	"errors"
	"testing"
)

func TestSchemesCoverEveryFeature(t *testing.T) {
	for _, s := range []*Scheme{Dense468, Sparse68} {
		t.Run(s.Name(), func(t *testing.T) {
			for _, f := range Features {
				idx := s.Indices(f)
				if len(idx) == 0 {
					t.Errorf("Indices(%s) is empty", f)
				}
				for _, i := range idx {
					if i < 0 || i >= s.Size() {
						t.Errorf("Indices(%s) contains %d, out of [0,%d)", f, i, s.Size())
					}
				}
			}
			if got := len(s.Indices(FeatureFaceWidth)); got != 2 {
				t.Errorf("faceWidth has %d points, want 2", got)
			}
		})
	}
}

func TestSchemeIndicesCopy(t *testing.T) {
	idx := Sparse68.Indices(FeatureLipsOuter)
	idx[0] = -1
	if Sparse68.Indices(FeatureLipsOuter)[0] == -1 {
		t.Error("Indices() returned the internal table")
	}
}

func TestSchemeValidate(t *testing.T) {
	tests := []struct {
		scheme *Scheme
		n      int
		ok     bool
	}{
		{Dense468, 468, true},
		{Dense468, 478, false},
		{Sparse68, 68, true},
		{Sparse68, 0, false},
	}
	for _, tt := range tests {
		err := tt.scheme.Validate(LandmarkSet{Points: make([]Point, tt.n)})
		if (err == nil) != tt.ok {
			t.Errorf("%s.Validate(%d points) = %v, want ok=%v", tt.scheme, tt.n, err, tt.ok)
		}
		if err != nil && !errors.Is(err, ErrInvalidLandmarks) {
			t.Errorf("%s.Validate(%d points) = %v, want ErrInvalidLandmarks", tt.scheme, tt.n, err)
		}
	}
}

func TestSchemeByName(t *testing.T) {
	tests := []struct {
		name string
		want *Scheme
	}{
		{"dense468", Dense468},
		{"468", Dense468},
		{"sparse68", Sparse68},
		{"sparse", Sparse68},
	}
	for _, tt := range tests {
		got, err := SchemeByName(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("SchemeByName(%q) = %v, %v, want %v", tt.name, got, err, tt.want)
		}
	}
	if _, err := SchemeByName("blendshape52"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("SchemeByName(unknown) = %v, want ErrInvalidConfig", err)
	}
}

func TestSchemeSmoothingDefaults(t *testing.T) {
	if got := Dense468.Smoothing(); got != 0.2 {
		t.Errorf("Dense468.Smoothing() = %v, want 0.2", got)
	}
	if got := Sparse68.Smoothing(); got != 0.3 {
		t.Errorf("Sparse68.Smoothing() = %v, want 0.3", got)
	}
}
