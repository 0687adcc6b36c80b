package types

// A ray with a unit length direction.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}
