package LazyTree

import (
	"sync"

	"github.com/g-m-twostay/fold-utils/Algebra"
)

// Shared guards a Tree for concurrent use. Reads push pending operators down, so
// every call takes the same exclusive lock.
type Shared[T, F any, M Algebra.Monoid[T], A Algebra.Action[T, F]] struct {
	mu sync.Mutex
	t  *Tree[T, F, M, A]
}

// NewShared takes ownership of t; t must not be used directly afterwards.
func NewShared[T, F any, M Algebra.Monoid[T], A Algebra.Action[T, F]](t *Tree[T, F, M, A]) *Shared[T, F, M, A] {
	return &Shared[T, F, M, A]{t: t}
}

func (u *Shared[T, F, M, A]) Len() int {
	return u.t.Len()
}

func (u *Shared[T, F, M, A]) Set(i int, v T) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Set(i, v)
}

func (u *Shared[T, F, M, A]) Get(i int) (T, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Get(i)
}

func (u *Shared[T, F, M, A]) Prod(l, r int) (T, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Prod(l, r)
}

func (u *Shared[T, F, M, A]) All() T {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.All()
}

func (u *Shared[T, F, M, A]) Apply(i int, f F) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Apply(i, f)
}

func (u *Shared[T, F, M, A]) ApplyRange(l, r int, f F) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.ApplyRange(l, r, f)
}

// MaxRight calls f while holding the lock, f must not call back into u.
func (u *Shared[T, F, M, A]) MaxRight(l int, f func(T) bool) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.MaxRight(l, f)
}

// MinLeft calls f while holding the lock, f must not call back into u.
func (u *Shared[T, F, M, A]) MinLeft(r int, f func(T) bool) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.MinLeft(r, f)
}

func (u *Shared[T, F, M, A]) Values() []T {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Values()
}
