package mesh

import "errors"

var (
	ErrInvalidBounds = errors.New("mesh: bounds must have positive extent on every axis")
	ErrInvalidCells  = errors.New("mesh: cell count must be positive")
	ErrEmptyMesh     = errors.New("mesh: surface does not intersect the bounds")
)
