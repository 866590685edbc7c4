package comparisons

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/g-m-twostay/fold-utils/Algebra"
	"github.com/g-m-twostay/fold-utils/Trees/SegTree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"
)

const (
	bUniverse = 1 << 20
	bMembers  = bUniverse / 8
)

var sideEff int

func members(b *testing.B) []int {
	b.Helper()
	ks := make([]int, bMembers)
	for i := range ks {
		ks[i] = rg.Intn(bUniverse)
	}
	return ks
}

// Every iteration moves one member and asks for one successor.

func BenchmarkSuccessor_SegTree(b *testing.B) {
	ks := members(b)
	vs := make([]int8, bUniverse)
	for _, k := range ks {
		vs[k] = 1
	}
	s := SegTree.From(Algebra.Max[int8]{}, vs)
	b.ResetTimer()
	for i := range b.N {
		j := i % bMembers
		s.Set(ks[j], 0)
		ks[j] = (ks[j] + 7919) % bUniverse
		s.Set(ks[j], 1)
		sideEff = ceiling(s, (i*31)%bUniverse)
	}
}

func BenchmarkSuccessor_BTree(b *testing.B) {
	ks := members(b)
	bt := btree.NewG[int](32, func(x, y int) bool { return x < y })
	for _, k := range ks {
		bt.ReplaceOrInsert(k)
	}
	b.ResetTimer()
	for i := range b.N {
		j := i % bMembers
		bt.Delete(ks[j])
		ks[j] = (ks[j] + 7919) % bUniverse
		bt.ReplaceOrInsert(ks[j])
		bt.AscendGreaterOrEqual((i*31)%bUniverse, func(v int) bool {
			sideEff = v
			return false
		})
	}
}

func BenchmarkSuccessor_LLRB(b *testing.B) {
	ks := members(b)
	lr := llrb.New()
	for _, k := range ks {
		lr.ReplaceOrInsert(llrb.Int(k))
	}
	b.ResetTimer()
	for i := range b.N {
		j := i % bMembers
		lr.Delete(llrb.Int(ks[j]))
		ks[j] = (ks[j] + 7919) % bUniverse
		lr.ReplaceOrInsert(llrb.Int(ks[j]))
		lr.AscendGreaterOrEqual(llrb.Int((i*31)%bUniverse), func(v llrb.Item) bool {
			sideEff = int(v.(llrb.Int))
			return false
		})
	}
}

func BenchmarkSuccessor_RedBlack(b *testing.B) {
	ks := members(b)
	rb := redblacktree.NewWithIntComparator()
	for _, k := range ks {
		rb.Put(k, struct{}{})
	}
	b.ResetTimer()
	for i := range b.N {
		j := i % bMembers
		rb.Remove(ks[j])
		ks[j] = (ks[j] + 7919) % bUniverse
		rb.Put(ks[j], struct{}{})
		if n, ok := rb.Ceiling((i * 31) % bUniverse); ok {
			sideEff = n.Key.(int)
		}
	}
}
