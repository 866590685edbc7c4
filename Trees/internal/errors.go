package internal

import (
	"errors"
	"fmt"
)

var (
	ErrOutOfRange = errors.New("index out of range")
	ErrPredicate  = errors.New("predicate is false on the identity")
)

// RangeError describes an index or half open range that falls outside a tree of length N.
// For point accesses L==R and Point is set.
type RangeError struct {
	Op    string
	L, R  int
	N     int
	Point bool
}

func (e *RangeError) Error() string {
	if e.Point {
		return fmt.Sprintf("%s: index %d out of range [0,%d)", e.Op, e.L, e.N)
	}
	return fmt.Sprintf("%s: range [%d,%d) out of range [0,%d]", e.Op, e.L, e.R, e.N)
}

func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// CheckIndex i in [0, n).
func CheckIndex(op string, i, n int) error {
	if i < 0 || i >= n {
		return &RangeError{Op: op, L: i, R: i, N: n, Point: true}
	}
	return nil
}

// CheckRange 0 <= l <= r <= n.
func CheckRange(op string, l, r, n int) error {
	if l < 0 || r < l || r > n {
		return &RangeError{Op: op, L: l, R: r, N: n}
	}
	return nil
}

// CheckBound b in [0, n], the boundaries accepted by the bisection searches.
func CheckBound(op string, b, n int) error {
	if b < 0 || b > n {
		return &RangeError{Op: op, L: b, R: b, N: n}
	}
	return nil
}

// CheckPredicate calls f on the identity, which must hold for a bisection to be meaningful.
func CheckPredicate[T any](op string, f func(T) bool, id T) error {
	if !f(id) {
		return fmt.Errorf("%s: %w", op, ErrPredicate)
	}
	return nil
}
