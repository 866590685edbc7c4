package Algebra

// Affine operator x -> A*x + B on every element. Acting on a Sized fold it adds B once per element.
type Affine[T Number] struct {
	A, B T
}

// AffineAction acts with Affine on SizedSum values.
type AffineAction[T Number] struct{}

func (AffineAction[T]) Compose(f, g Affine[T]) Affine[T] {
	return Affine[T]{g.A * f.A, g.B*f.A + f.B}
}
func (AffineAction[T]) Id() Affine[T] { return Affine[T]{1, 0} }
func (AffineAction[T]) Act(f Affine[T], x Sized[T]) Sized[T] {
	return Sized[T]{x.V*f.A + x.N*f.B, x.N}
}

// Assign replaces every element with V when Ok, and is the no-op otherwise. The no-op
// has the single form Assign[T]{}; Compose never returns another one.
type Assign[T any] struct {
	Ok bool
	V  T
}

// AssignAction assigns over a Min or Max fold; both are idempotent so the fold of
// any number of copies of V is V.
type AssignAction[T Number] struct{}

func (AssignAction[T]) Compose(f, g Assign[T]) Assign[T] {
	if f.Ok {
		return f
	}
	if g.Ok {
		return g
	}
	return Assign[T]{}
}
func (AssignAction[T]) Id() Assign[T] { return Assign[T]{} }
func (AssignAction[T]) Act(f Assign[T], x T) T {
	if f.Ok {
		return f.V
	}
	return x
}

// AddToMin adds a constant to every element of a SizedMin fold. Values with N=0 are
// the identity and are left alone, so every V, MaxOf[T]() included, is a real element.
type AddToMin[T Number] struct{}

func (AddToMin[T]) Compose(f, g T) T { return f + g }
func (AddToMin[T]) Id() T            { return 0 }
func (AddToMin[T]) Act(f T, x Sized[T]) Sized[T] {
	if x.N == 0 {
		return x
	}
	return Sized[T]{x.V + f, x.N}
}

// AddToMax adds a constant to every element of a SizedMax fold. Values with N=0 are left alone.
type AddToMax[T Number] struct{}

func (AddToMax[T]) Compose(f, g T) T { return f + g }
func (AddToMax[T]) Id() T            { return 0 }
func (AddToMax[T]) Act(f T, x Sized[T]) Sized[T] {
	if x.N == 0 {
		return x
	}
	return Sized[T]{x.V + f, x.N}
}
