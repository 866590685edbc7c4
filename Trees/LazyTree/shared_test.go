package LazyTree

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/g-m-twostay/fold-utils/Algebra"
)

const (
	sN       = 1 << 9
	sWriters = 8
	sOps     = 1000
)

// Writers add to blocks they own and count their adds in a concurrent map; the tree
// must end up with each element equal to the adds counted for it.
func TestShared_Concurrent(t *testing.T) {
	tree := NewShared(From[Algebra.Sized[int64], Algebra.Affine[int64]](Algebra.SizedSum[int64]{}, Algebra.AffineAction[int64]{}, Algebra.Leaves(make([]int64, sN))))
	adds := haxmap.New[int, int64]()
	const block = sN / sWriters
	wg := sync.WaitGroup{}
	for g := range sWriters {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(int64(g)))
			var local [block]int64
			for range sOps {
				l := r.Intn(block)
				h := l + r.Intn(block-l) + 1
				d := r.Int63n(10)
				if err := tree.ApplyRange(g*block+l, g*block+h, Algebra.Affine[int64]{A: 1, B: d}); err != nil {
					t.Error(err)
					return
				}
				for i := l; i < h; i++ {
					local[i] += d
				}
				if _, err := tree.Prod(0, r.Intn(sN+1)); err != nil {
					t.Error(err)
					return
				}
			}
			for i, v := range local {
				adds.Set(g*block+i, v)
			}
		}(g)
	}
	wg.Wait()

	if adds.Len() != sN {
		t.Fatalf("reference has %d entries, want %d", adds.Len(), sN)
	}
	var sum int64
	vs := tree.Values()
	for i := range sN {
		want, _ := adds.Get(i)
		if got := must(tree.Get(i)); got.V != want || vs[i].V != want {
			t.Errorf("value %d is %d, want %d", i, got.V, want)
		}
		sum += want
	}
	if tree.All().V != sum {
		t.Errorf("All is %d, want %d", tree.All().V, sum)
	}
	if l := must(tree.MinLeft(sN, func(s Algebra.Sized[int64]) bool { return s.V <= sum })); l != 0 {
		t.Errorf("MinLeft is %d, want 0", l)
	}
	if r := must(tree.MaxRight(0, func(s Algebra.Sized[int64]) bool { return s.V <= sum })); r != sN {
		t.Errorf("MaxRight is %d, want %d", r, sN)
	}
}

func TestShared_Point(t *testing.T) {
	tree := NewShared(New[int, Algebra.Assign[int]](Algebra.Min[int]{}, Algebra.AssignAction[int]{}, 16))
	wg := sync.WaitGroup{}
	for g := range 16 {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			tree.Set(g, 100+g)
			tree.Apply(g, Algebra.Assign[int]{Ok: g%2 == 0, V: g})
		}(g)
	}
	wg.Wait()
	if tree.Len() != 16 {
		t.Errorf("Len is %d", tree.Len())
	}
	for g := range 16 {
		want := 100 + g
		if g%2 == 0 {
			want = g
		}
		if got := must(tree.Get(g)); got != want {
			t.Errorf("value %d is %d, want %d", g, got, want)
		}
	}
	if v := must(tree.Prod(1, 16)); v != 2 {
		t.Errorf("Prod(1,16) is %d, want 2", v)
	}
}
