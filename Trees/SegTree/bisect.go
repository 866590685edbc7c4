package SegTree

import "github.com/g-m-twostay/fold-utils/Trees/internal"

// MaxRight returns the largest r in [l, n] such that f(Fold(l, r)) holds, assuming f
// is monotone: once false on a prefix it stays false on longer prefixes, and f(Id())
// is true. When l==n it returns n without calling f.
// Time: O(log n) calls to f.
func (u *Tree[T, M]) MaxRight(l int, f func(T) bool) (int, error) {
	if err := internal.CheckBound("SegTree.MaxRight", l, u.n); err != nil {
		return 0, err
	}
	if l == u.n {
		return u.n, nil
	}
	if err := internal.CheckPredicate("SegTree.MaxRight", f, u.m.Id()); err != nil {
		return 0, err
	}
	sm := u.m.Id()
	for l += u.size; ; {
		for l&1 == 0 { //climb while l is a left child
			l >>= 1
		}
		v := u.m.Op(sm, u.data[l])
		if !f(v) {
			for l < u.size {
				l <<= 1
				if v = u.m.Op(sm, u.data[l]); f(v) {
					sm = v
					l++
				}
			}
			return l - u.size, nil
		}
		sm = v
		if l++; internal.IsPow2(l) {
			return u.n, nil
		}
	}
}

// MinLeft returns the smallest l in [0, r] such that f(Fold(l, r)) holds, assuming f
// is monotone as the range grows to the left and f(Id()) is true. When r==0 it
// returns 0 without calling f.
// Time: O(log n) calls to f.
func (u *Tree[T, M]) MinLeft(r int, f func(T) bool) (int, error) {
	if err := internal.CheckBound("SegTree.MinLeft", r, u.n); err != nil {
		return 0, err
	}
	if r == 0 {
		return 0, nil
	}
	if err := internal.CheckPredicate("SegTree.MinLeft", f, u.m.Id()); err != nil {
		return 0, err
	}
	sm := u.m.Id()
	for r += u.size; ; {
		r--
		for r > 1 && r&1 == 1 { //climb while r is a right child
			r >>= 1
		}
		v := u.m.Op(u.data[r], sm)
		if !f(v) {
			for r < u.size {
				r = r<<1 | 1
				if v = u.m.Op(u.data[r], sm); f(v) {
					sm = v
					r--
				}
			}
			return r + 1 - u.size, nil
		}
		sm = v
		if internal.IsPow2(r) {
			return 0, nil
		}
	}
}
