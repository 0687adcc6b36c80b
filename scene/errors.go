package scene

import "errors"

var (
	ErrInvalidFrameDims = errors.New("scene: frame width and height must be positive")
	ErrInvalidFOV       = errors.New("scene: vertical field of view must be in (0, pi)")
	ErrUnknownScene     = errors.New("scene: unknown scene kind")
	ErrInvalidAmbient   = errors.New("scene: ambient floor must be in [0, 1]")
)
