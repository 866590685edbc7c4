package SegTree

import (
	"fmt"

	"github.com/g-m-twostay/fold-utils/Algebra"
	"github.com/g-m-twostay/fold-utils/Trees/internal"
	"github.com/golang/glog"
)

type RangeError = internal.RangeError

var (
	ErrOutOfRange = internal.ErrOutOfRange
	ErrPredicate  = internal.ErrPredicate
)

// Tree is a segment tree over a fixed number of elements of the monoid M.
//
// The elements live in a flat array of 2*size nodes where size is the least power
// of two not smaller than the length. Node 1 is the root, the children of i are 2i
// and 2i+1, and element j is the leaf size+j. Leaves past the length hold the identity.
// Every internal node holds the fold of its two children.
//
// A Tree is not safe for concurrent use, see Shared.
type Tree[T any, M Algebra.Monoid[T]] struct {
	m            M
	n, log, size int
	data         []T
}

// New tree of n identity elements. Panics if n<0.
// Time: O(n)
func New[T any, M Algebra.Monoid[T]](m M, n int) *Tree[T, M] {
	if n < 0 {
		panic("SegTree: negative length")
	}
	log := internal.CeilLog2(n)
	u := &Tree[T, M]{m: m, n: n, log: log, size: 1 << log}
	u.data = make([]T, u.size<<1)
	id := m.Id()
	for i := range u.data {
		u.data[i] = id
	}
	return u
}

// From builds a tree holding a copy of vs.
// Time: O(len(vs))
func From[T any, M Algebra.Monoid[T]](m M, vs []T) *Tree[T, M] {
	u := New[T, M](m, len(vs))
	copy(u.data[u.size:], vs)
	for i := u.size - 1; i > 0; i-- {
		u.update(i)
	}
	return u
}

func (u *Tree[T, M]) update(i int) {
	u.data[i] = u.m.Op(u.data[i<<1], u.data[i<<1|1])
}

// Len is the number of elements.
func (u *Tree[T, M]) Len() int {
	return u.n
}

// Set element i to v.
// Time: O(log n)
func (u *Tree[T, M]) Set(i int, v T) error {
	if err := internal.CheckIndex("SegTree.Set", i, u.n); err != nil {
		return err
	}
	i += u.size
	u.data[i] = v
	for i >>= 1; i > 0; i >>= 1 {
		u.update(i)
	}
	return nil
}

// Get element i.
// Time: O(1)
func (u *Tree[T, M]) Get(i int) (T, error) {
	if err := internal.CheckIndex("SegTree.Get", i, u.n); err != nil {
		return *new(T), err
	}
	return u.data[u.size+i], nil
}

// Fold the elements in [l, r) from left to right. The empty range folds to the identity.
// Time: O(log n)
func (u *Tree[T, M]) Fold(l, r int) (T, error) {
	if err := internal.CheckRange("SegTree.Fold", l, r, u.n); err != nil {
		return *new(T), err
	}
	lv, rv := u.m.Id(), u.m.Id()
	for l, r = l+u.size, r+u.size; l < r; l, r = l>>1, r>>1 {
		if l&1 == 1 {
			lv = u.m.Op(lv, u.data[l])
			l++
		}
		if r&1 == 1 {
			r--
			rv = u.m.Op(u.data[r], rv)
		}
	}
	return u.m.Op(lv, rv), nil
}

// All is the fold of every element.
// Time: O(1)
func (u *Tree[T, M]) All() T {
	return u.data[1]
}

// Values returns a copy of the elements.
func (u *Tree[T, M]) Values() []T {
	vs := make([]T, u.n)
	copy(vs, u.data[u.size:u.size+u.n])
	return vs
}

// Debug logs the nodes level by level at verbosity 2.
func (u *Tree[T, M]) Debug() {
	if !glog.V(2) {
		return
	}
	for _, l := range u.levels() {
		glog.Info(l)
	}
}

func (u *Tree[T, M]) levels() []string {
	ls := make([]string, u.log+1)
	for h := range ls {
		ls[h] = fmt.Sprintf("SegTree level %d: %v", h, u.data[1<<h:2<<h])
	}
	return ls
}
