package mirror

import "errors"

var (
	// ErrSourceUnavailable is returned when the frame source (camera)
	// cannot be opened. The compositor never opens it itself.
	ErrSourceUnavailable = errors.New("mirror: frame source unavailable")

	// ErrProviderUnavailable is returned when the landmark provider
	// (detector model) fails to initialize.
	ErrProviderUnavailable = errors.New("mirror: landmark provider unavailable")

	// ErrInvalidLandmarks reports a landmark set that does not match the
	// active scheme.
	ErrInvalidLandmarks = errors.New("mirror: invalid landmarks")

	// ErrSessionClosed is returned by operations on a stopped Session.
	ErrSessionClosed = errors.New("mirror: session closed")

	// ErrInvalidConfig reports an invalid option value.
	ErrInvalidConfig = errors.New("mirror: invalid configuration")
)
