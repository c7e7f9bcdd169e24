// Package filter provides the blur filters used by makeup layers.
//
// Two filters are available:
//   - Gaussian blur for soft layer edges (imaging, sigma in pixels)
//   - Stack blur for skin smoothing of the whole face region
//
// Both operate on *image.NRGBA crops and return a new image of the same
// bounds; callers size crops with Margin so the blur tail is not clipped.
package filter
