package SegTree

import (
	"github.com/g-m-twostay/fold-utils/Algebra"
	"github.com/puzpuzpuz/xsync/v3"
)

// Shared guards a Tree for concurrent use. Reads of a plain Tree never write to it,
// so Get, Fold, All and the bisections share a reader-biased lock and only Set and
// Update are exclusive.
type Shared[T any, M Algebra.Monoid[T]] struct {
	mu *xsync.RBMutex
	t  *Tree[T, M]
}

// NewShared takes ownership of t; t must not be used directly afterwards.
func NewShared[T any, M Algebra.Monoid[T]](t *Tree[T, M]) *Shared[T, M] {
	return &Shared[T, M]{xsync.NewRBMutex(), t}
}

func (u *Shared[T, M]) Len() int {
	return u.t.Len()
}

func (u *Shared[T, M]) Set(i int, v T) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Set(i, v)
}

// Update replaces element i with f of its current value under one write lock.
func (u *Shared[T, M]) Update(i int, f func(T) T) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	v, err := u.t.Get(i)
	if err != nil {
		return err
	}
	return u.t.Set(i, f(v))
}

func (u *Shared[T, M]) Get(i int) (T, error) {
	tk := u.mu.RLock()
	defer u.mu.RUnlock(tk)
	return u.t.Get(i)
}

func (u *Shared[T, M]) Fold(l, r int) (T, error) {
	tk := u.mu.RLock()
	defer u.mu.RUnlock(tk)
	return u.t.Fold(l, r)
}

func (u *Shared[T, M]) All() T {
	tk := u.mu.RLock()
	defer u.mu.RUnlock(tk)
	return u.t.All()
}

// MaxRight calls f while holding the read lock, f must not call back into u.
func (u *Shared[T, M]) MaxRight(l int, f func(T) bool) (int, error) {
	tk := u.mu.RLock()
	defer u.mu.RUnlock(tk)
	return u.t.MaxRight(l, f)
}

// MinLeft calls f while holding the read lock, f must not call back into u.
func (u *Shared[T, M]) MinLeft(r int, f func(T) bool) (int, error) {
	tk := u.mu.RLock()
	defer u.mu.RUnlock(tk)
	return u.t.MinLeft(r, f)
}

func (u *Shared[T, M]) Values() []T {
	tk := u.mu.RLock()
	defer u.mu.RUnlock(tk)
	return u.t.Values()
}
