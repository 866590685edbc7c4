package Algebra

// Monoid is a closed associative binary operation with a two-sided identity.
// Op(Op(x, y), z) == Op(x, Op(y, z)) and Op(Id(), x) == Op(x, Id()) == x must hold
// for every x, y, z; nothing checks this at runtime. Implementations are expected
// to be small value types, the trees copy them freely.
type Monoid[T any] interface {
	Op(x, y T) T
	Id() T
}

// Action is a monoid of operators F acting on values T.
//
// Compose(f, g) is the operator that applies g first and then f, so
// Act(Compose(f, g), x) == Act(f, Act(g, x)). Act(Id(), x) == x. The lazy tree
// stores pending work as Compose(newer, older).
//
// For the lazy tree to be correct the action must also distribute over the value
// monoid: Act(f, Op(x, y)) == Op(Act(f, x), Act(f, y)).
type Action[T, F any] interface {
	Compose(f, g F) F
	Id() F
	Act(f F, x T) T
}

// Func adapts a pair of closures to Monoid, in the style of the ac-library ports.
// The zero value is not usable.
type Func[T any] struct {
	op func(T, T) T
	id func() T
}

func NewFunc[T any](op func(T, T) T, id func() T) Func[T] {
	return Func[T]{op, id}
}

func (u Func[T]) Op(x, y T) T {
	return u.op(x, y)
}

func (u Func[T]) Id() T {
	return u.id()
}
