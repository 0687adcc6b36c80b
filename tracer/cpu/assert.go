//go:build !debug

package cpu

import "github.com/achilleasa/raymarch/types"

func assertUnit(types.Vec3)                {}
func assertFinite(float64, types.Vec3)     {}
func assertNonZero(types.Vec3, types.Vec3) {}
