package Algebra

import "golang.org/x/exp/constraints"

// Sum under +, identity 0.
type Sum[T Number] struct{}

func (Sum[T]) Op(x, y T) T { return x + y }
func (Sum[T]) Id() T       { return 0 }

// Product under *, identity 1.
type Product[T Number] struct{}

func (Product[T]) Op(x, y T) T { return x * y }
func (Product[T]) Id() T       { return 1 }

// Min with identity MaxOf[T]().
type Min[T Number] struct{}

func (Min[T]) Op(x, y T) T { return min(x, y) }
func (Min[T]) Id() T       { return MaxOf[T]() }

// Max with identity MinOf[T]().
type Max[T Number] struct{}

func (Max[T]) Op(x, y T) T { return max(x, y) }
func (Max[T]) Id() T       { return MinOf[T]() }

// Xor of integers, identity 0.
type Xor[T constraints.Integer] struct{}

func (Xor[T]) Op(x, y T) T { return x ^ y }
func (Xor[T]) Id() T       { return 0 }

// Sized is a value that remembers how many elements were folded into it.
// Leaves should carry N=1, padding carries the identity with N=0.
type Sized[T Number] struct {
	V, N T
}

// SizedSum adds both V and N.
type SizedSum[T Number] struct{}

func (SizedSum[T]) Op(x, y Sized[T]) Sized[T] { return Sized[T]{x.V + y.V, x.N + y.N} }
func (SizedSum[T]) Id() Sized[T]               { return Sized[T]{} }

// SizedMin is the minimum of V over N elements. The identity {MaxOf[T](), 0} is told
// apart from an element holding MaxOf[T]() by its count.
type SizedMin[T Number] struct{}

func (SizedMin[T]) Op(x, y Sized[T]) Sized[T] { return Sized[T]{min(x.V, y.V), x.N + y.N} }
func (SizedMin[T]) Id() Sized[T]               { return Sized[T]{MaxOf[T](), 0} }

// SizedMax is the maximum of V over N elements, identity {MinOf[T](), 0}.
type SizedMax[T Number] struct{}

func (SizedMax[T]) Op(x, y Sized[T]) Sized[T] { return Sized[T]{max(x.V, y.V), x.N + y.N} }
func (SizedMax[T]) Id() Sized[T]               { return Sized[T]{MinOf[T](), 0} }

// Leaves wraps vs into Sized values with N=1.
func Leaves[T Number](vs []T) []Sized[T] {
	r := make([]Sized[T], len(vs))
	for i, v := range vs {
		r[i] = Sized[T]{v, 1}
	}
	return r
}
