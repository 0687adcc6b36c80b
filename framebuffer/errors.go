package framebuffer

import "errors"

var (
	ErrUnsupportedFormat = errors.New("framebuffer: unsupported image format")
	ErrEmptyFrame        = errors.New("framebuffer: frame has no pixels")
)
