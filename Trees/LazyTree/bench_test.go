package LazyTree

import (
	"testing"

	"github.com/g-m-twostay/fold-utils/Algebra"
)

const bN = 1 << 20

var sideEff Algebra.Sized[uint64]

func create(b *testing.B) *affineTree {
	b.Helper()
	vs := make([]uint64, bN)
	for i := range vs {
		vs[i] = uint64(rg.Intn(bN))
	}
	return newAffine(vs)
}

func BenchmarkApplyRange(b *testing.B) {
	tree := create(b)
	f := Algebra.Affine[uint64]{A: 3, B: 1}
	b.ResetTimer()
	for i := range b.N {
		l := i & (bN - 1)
		tree.ApplyRange(l>>1, l, f)
	}
}

func BenchmarkProd(b *testing.B) {
	tree := create(b)
	f := Algebra.Affine[uint64]{A: 3, B: 1}
	for i := range 1 << 12 {
		tree.ApplyRange(i, bN-i, f)
	}
	b.ResetTimer()
	for i := range b.N {
		l := i & (bN - 1)
		sideEff, _ = tree.Prod(l>>1, l)
	}
}

func BenchmarkMaxRight(b *testing.B) {
	tree := create(b)
	b.ResetTimer()
	for i := range b.N {
		k := uint64(i & (bN - 1))
		r, _ := tree.MaxRight(0, func(s Algebra.Sized[uint64]) bool { return s.V <= k<<10 })
		sideEff.N = uint64(r)
	}
}
