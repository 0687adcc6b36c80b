package cpu

import "errors"

var (
	ErrNoSceneData   = errors.New("cpu tracer: no scene data attached")
	ErrNoFramebuffer = errors.New("cpu tracer: no framebuffer attached")
	ErrFrameMismatch = errors.New("cpu tracer: framebuffer dims do not match the camera")
	ErrBlockBounds   = errors.New("cpu tracer: block exceeds frame bounds")
)
