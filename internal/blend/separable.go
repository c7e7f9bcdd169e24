package blend

import "math"

// channelFunc returns B(Cb, Cs) for a separable mode, or nil.
func channelFunc(mode Mode) func(cb, cs float64) float64 {
	switch mode {
	case ModeMultiply:
		return Multiply
	case ModeScreen:
		return Screen
	case ModeOverlay:
		return Overlay
	case ModeSoftLight:
		return SoftLight
	default:
		return nil
	}
}

// Multiply returns Cb * Cs.
func Multiply(cb, cs float64) float64 {
	return cb * cs
}

// Screen returns Cb + Cs - Cb*Cs.
func Screen(cb, cs float64) float64 {
	return cb + cs - cb*cs
}

// HardLight multiplies or screens depending on the source.
//
//	if Cs <= 0.5: Multiply(Cb, 2*Cs)
//	else:         Screen(Cb, 2*Cs - 1)
func HardLight(cb, cs float64) float64 {
	if cs <= 0.5 {
		return Multiply(cb, 2*cs)
	}
	return Screen(cb, 2*cs-1)
}

// Overlay is HardLight with swapped parameters.
func Overlay(cb, cs float64) float64 {
	return HardLight(cs, cb)
}

// SoftLight darkens or lightens depending on the source.
//
//	if Cs <= 0.5: Cb - (1 - 2*Cs) * Cb * (1 - Cb)
//	else:         Cb + (2*Cs - 1) * (D(Cb) - Cb)
//
// where D(x) = ((16*x - 12)*x + 4)*x for x <= 0.25, else sqrt(x).
func SoftLight(cb, cs float64) float64 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	var d float64
	if cb <= 0.25 {
		d = ((16*cb-12)*cb + 4) * cb
	} else {
		d = math.Sqrt(cb)
	}
	return cb + (2*cs-1)*(d-cb)
}
