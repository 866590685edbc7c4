package LazyTree

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

// Tree is a segment tree of values T under the monoid M with range application of
// operators F through the action A.
//
// The layout is the one of SegTree.Tree plus lazy, one pending operator per internal
// node. data[k] always has lazy[k] applied already; lazy[k] is what still has to be
// applied to both children of k. A node is clean when lazy[k] is the identity.
// Pending operators are composed as A.Compose(newer, older).
//
// Every method, reads included, may push pending operators down and thus writes to
// the tree. A Tree is not safe for concurrent use, see Shared.
type Tree[T, F any, M Algebra.Monoid[T], A Algebra.Action[T, F]] struct {
	m            M
	a            A
	n, log, size int
	data         []T
	lazy         []F
}

// New tree of n identity elements. Panics if n<0.
// Time: O(n)
func New[T, F any, M Algebra.Monoid[T], A Algebra.Action[T, F]](m M, a A, n int) *Tree[T, F, M, A] {
	if n < 0 {
		panic("LazyTree: negative length")
	}
	log := internal.CeilLog2(n)
	u := &Tree[T, F, M, A]{m: m, a: a, n: n, log: log, size: 1 << log}
	u.data, u.lazy = make([]T, u.size<<1), make([]F, u.size)
	id, e := m.Id(), a.Id()
	for i := range u.data {
		u.data[i] = id
	}
	for i := range u.lazy {
		u.lazy[i] = e
	}
	return u
}

// From builds a tree holding a copy of vs.
// Time: O(len(vs))
func From[T, F any, M Algebra.Monoid[T], A Algebra.Action[T, F]](m M, a A, vs []T) *Tree[T, F, M, A] {
	u := New[T, F, M, A](m, a, len(vs))
	copy(u.data[u.size:], vs)
	for i := u.size - 1; i > 0; i-- {
		u.update(i)
	}
	return u
}

// update pulls node k up from its children. lazy[k] must be clean.
func (u *Tree[T, F, M, A]) update(k int) {
	u.data[k] = u.m.Op(u.data[k<<1], u.data[k<<1|1])
}

// allApply f to the whole subtree of k, deferring the children.
func (u *Tree[T, F, M, A]) allApply(k int, f F) {
	u.data[k] = u.a.Act(f, u.data[k])
	if k < u.size {
		u.lazy[k] = u.a.Compose(f, u.lazy[k])
	}
}

// push the pending operator of k to its children. Every ancestor of k must be clean.
func (u *Tree[T, F, M, A]) push(k int) {
	u.allApply(k<<1, u.lazy[k])
	u.allApply(k<<1|1, u.lazy[k])
	u.lazy[k] = u.a.Id()
}

// pushPath cleans every strict ancestor of the leaf position i, root first.
func (u *Tree[T, F, M, A]) pushPath(i int) {
	for h := u.log; h > 0; h-- {
		u.push(i >> h)
	}
}

// pullPath recomputes every strict ancestor of the leaf position i, lowest first.
func (u *Tree[T, F, M, A]) pullPath(i int) {
	for h := 1; h <= u.log; h++ {
		u.update(i >> h)
	}
}

// pushBounds cleans the ancestors of the leaf positions [l, r) that the range cuts through.
// A block of height h is cut at a boundary b exactly when b isn't a multiple of 1<<h.
func (u *Tree[T, F, M, A]) pushBounds(l, r int) {
	for h := u.log; h > 0; h-- {
		if !internal.Aligned(l, h) {
			u.push(l >> h)
		}
		if !internal.Aligned(r, h) {
			u.push((r - 1) >> h)
		}
	}
}

// pullBounds is the reverse of pushBounds after the nodes inside [l, r) were changed.
func (u *Tree[T, F, M, A]) pullBounds(l, r int) {
	for h := 1; h <= u.log; h++ {
		if !internal.Aligned(l, h) {
			u.update(l >> h)
		}
		if !internal.Aligned(r, h) {
			u.update((r - 1) >> h)
		}
	}
}

// Len is the number of elements.
func (u *Tree[T, F, M, A]) Len() int {
	return u.n
}

// Set element i to v.
// Time: O(log n)
func (u *Tree[T, F, M, A]) Set(i int, v T) error {
	if err := internal.CheckIndex("LazyTree.Set", i, u.n); err != nil {
		return err
	}
	i += u.size
	u.pushPath(i)
	u.data[i] = v
	u.pullPath(i)
	return nil
}

// Get element i with every pending operator applied.
// Time: O(log n)
func (u *Tree[T, F, M, A]) Get(i int) (T, error) {
	if err := internal.CheckIndex("LazyTree.Get", i, u.n); err != nil {
		return *new(T), err
	}
	i += u.size
	u.pushPath(i)
	return u.data[i], nil
}

// Prod folds the elements in [l, r) from left to right. The empty range folds to the identity.
// Time: O(log n)
func (u *Tree[T, F, M, A]) Prod(l, r int) (T, error) {
	if err := internal.CheckRange("LazyTree.Prod", l, r, u.n); err != nil {
		return *new(T), err
	}
	if l == r {
		return u.m.Id(), nil
	}
	l, r = l+u.size, r+u.size
	u.pushBounds(l, r)
	lv, rv := u.m.Id(), u.m.Id()
	for ; l < r; l, r = l>>1, r>>1 {
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

// All is the fold of every element. The root never has a parent holding work for it.
// Time: O(1)
func (u *Tree[T, F, M, A]) All() T {
	return u.data[1]
}

// Apply f to element i.
// Time: O(log n)
func (u *Tree[T, F, M, A]) Apply(i int, f F) error {
	if err := internal.CheckIndex("LazyTree.Apply", i, u.n); err != nil {
		return err
	}
	i += u.size
	u.pushPath(i)
	u.data[i] = u.a.Act(f, u.data[i])
	u.pullPath(i)
	return nil
}

// ApplyRange applies f to every element in [l, r). The empty range is a no-op.
// Time: O(log n)
func (u *Tree[T, F, M, A]) ApplyRange(l, r int, f F) error {
	if err := internal.CheckRange("LazyTree.ApplyRange", l, r, u.n); err != nil {
		return err
	}
	if l == r {
		return nil
	}
	l, r = l+u.size, r+u.size
	u.pushBounds(l, r)
	for l2, r2 := l, r; l2 < r2; l2, r2 = l2>>1, r2>>1 {
		if l2&1 == 1 {
			u.allApply(l2, f)
			l2++
		}
		if r2&1 == 1 {
			r2--
			u.allApply(r2, f)
		}
	}
	u.pullBounds(l, r)
	return nil
}

// Values returns a copy of the elements with every pending operator applied. It
// leaves the whole tree clean.
// Time: O(n)
func (u *Tree[T, F, M, A]) Values() []T {
	for k := 1; k < u.size; k++ {
		u.push(k)
	}
	vs := make([]T, u.n)
	copy(vs, u.data[u.size:u.size+u.n])
	return vs
}

// Debug logs the nodes level by level as data/lazy pairs at verbosity 2.
func (u *Tree[T, F, M, A]) Debug() {
	if !glog.V(2) {
		return
	}
	for _, l := range u.levels() {
		glog.Info(l)
	}
}

func (u *Tree[T, F, M, A]) levels() []string {
	ls := make([]string, 0, u.log+1)
	for h := 0; h < u.log; h++ {
		ls = append(ls, fmt.Sprintf("LazyTree level %d: %v / %v", h, u.data[1<<h:2<<h], u.lazy[1<<h:2<<h]))
	}
	return append(ls, fmt.Sprintf("LazyTree leaves: %v", u.data[u.size:]))
}
