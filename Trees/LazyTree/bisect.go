package LazyTree

import "github.com/g-m-twostay/fold-utils/Trees/internal"

// MaxRight returns the largest r in [l, n] such that f(Prod(l, r)) holds, for f
// monotone on growing prefixes with f(Id()) true. When l==n it returns n without calling f.
// Time: O(log n) calls to f.
func (u *Tree[T, F, M, A]) MaxRight(l int, f func(T) bool) (int, error) {
	if err := internal.CheckBound("LazyTree.MaxRight", l, u.n); err != nil {
		return 0, err
	}
	if l == u.n {
		return u.n, nil
	}
	if err := internal.CheckPredicate("LazyTree.MaxRight", f, u.m.Id()); err != nil {
		return 0, err
	}
	l += u.size
	u.pushPath(l)
	sm := u.m.Id()
	for {
		for l&1 == 0 {
			l >>= 1
		}
		v := u.m.Op(sm, u.data[l])
		if !f(v) {
			for l < u.size {
				u.push(l)
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

// MinLeft returns the smallest l in [0, r] such that f(Prod(l, r)) holds, for f
// monotone on ranges growing to the left with f(Id()) true. When r==0 it returns 0
// without calling f.
// Time: O(log n) calls to f.
func (u *Tree[T, F, M, A]) MinLeft(r int, f func(T) bool) (int, error) {
	if err := internal.CheckBound("LazyTree.MinLeft", r, u.n); err != nil {
		return 0, err
	}
	if r == 0 {
		return 0, nil
	}
	if err := internal.CheckPredicate("LazyTree.MinLeft", f, u.m.Id()); err != nil {
		return 0, err
	}
	r += u.size
	u.pushPath(r - 1)
	sm := u.m.Id()
	for {
		r--
		for r > 1 && r&1 == 1 {
			r >>= 1
		}
		v := u.m.Op(u.data[r], sm)
		if !f(v) {
			for r < u.size {
				u.push(r)
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
