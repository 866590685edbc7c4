package Algebra

import (
	"golang.org/x/exp/constraints"
	"math"
	"unsafe"
)

// Number is any built-in integer or floating point type, or a type defined on one.
type Number interface {
	constraints.Integer | constraints.Float
}

// isFloat reports whether T is a float type: only there does 1/2 not truncate to 0.
func isFloat[T Number]() bool {
	var h T = 1
	return h/2 != 0
}

// MaxOf the type T. +Inf for floating point types.
func MaxOf[T Number]() T {
	var z T
	if isFloat[T]() {
		return T(math.Inf(1))
	}
	w := 8 * unsafe.Sizeof(z)
	if z-1 < 0 { //signed
		return T(uint64(1)<<(w-1) - 1)
	}
	return T(^uint64(0) >> (64 - w))
}

// MinOf the type T. -Inf for floating point types.
func MinOf[T Number]() T {
	var z T
	if isFloat[T]() {
		return T(math.Inf(-1))
	}
	if z-1 < 0 {
		return -MaxOf[T]() - 1
	}
	return z
}
