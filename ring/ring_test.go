package ring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-ring/api"
	"github.com/momentics/hioload-ring/capacity"
	"github.com/momentics/hioload-ring/ring"
	"github.com/momentics/hioload-ring/storage"
)

type engine struct {
	name string
	make func(t testing.TB, n int) api.Ring[int]
}

// engines builds every ring variant for a requested logical capacity.
// Masking variants are only valid for powers of two.
var engines = []engine{
	{"masking", func(t testing.TB, n int) api.Ring[int] {
		r, err := ring.NewMaskingHeap[int](n)
		require.NoError(t, err)
		return r
	}},
	{"sparse", func(t testing.TB, n int) api.Ring[int] {
		r, err := ring.NewSparseMaskingHeap[int](n)
		require.NoError(t, err)
		return r
	}},
	{"subtracting", func(t testing.TB, n int) api.Ring[int] {
		r, err := ring.NewSubtractingHeap[int](n)
		require.NoError(t, err)
		return r
	}},
}

func forEachEngine(t *testing.T, n int, fn func(t *testing.T, r api.Ring[int])) {
	for _, e := range engines {
		if e.name == "masking" && !capacity.IsPowerOfTwo(n) {
			continue
		}
		t.Run(e.name, func(t *testing.T) {
			fn(t, e.make(t, n))
		})
	}
}

func TestEnqueueAndDequeueOnce(t *testing.T) {
	forEachEngine(t, 4, func(t *testing.T, r api.Ring[int]) {
		_, evicted := r.Enqueue(1)
		assert.False(t, evicted)

		v, ok := r.Dequeue()
		require.True(t, ok)
		assert.Equal(t, 1, v)

		_, ok = r.Dequeue()
		assert.False(t, ok)
		assert.True(t, r.IsEmpty())
	})
}

func TestFillBufferUpBeforeDequeue(t *testing.T) {
	forEachEngine(t, 4, func(t *testing.T, r api.Ring[int]) {
		for i := 1; i <= 4; i++ {
			_, evicted := r.Enqueue(i)
			assert.False(t, evicted, "enqueue %d", i)
		}
		assert.True(t, r.IsFull())

		old, evicted := r.Enqueue(5)
		require.True(t, evicted)
		assert.Equal(t, 1, old)
		assert.True(t, r.IsFull())

		for _, want := range []int{2, 3, 4, 5} {
			got, ok := r.Dequeue()
			require.True(t, ok)
			assert.Equal(t, want, got)
		}
		assert.True(t, r.IsEmpty())
	})
}

func TestWrapManyTimes(t *testing.T) {
	forEachEngine(t, 4, func(t *testing.T, r api.Ring[int]) {
		total := 0
		for i := 1; i <= 40; i++ {
			if n, ok := r.Enqueue(i); ok {
				total += n
			}
		}
		for {
			n, ok := r.Dequeue()
			if !ok {
				break
			}
			total += n
		}
		assert.Equal(t, 820, total)
	})
}

func TestNonPowerOfTwoCapacities(t *testing.T) {
	for _, n := range []int{1, 3, 5, 7, 12} {
		forEachEngine(t, n, func(t *testing.T, r api.Ring[int]) {
			require.Equal(t, n, r.Cap())
			for i := 0; i < 3*n+1; i++ {
				r.Enqueue(i)
			}
			require.True(t, r.IsFull())
			// The newest n values survive, oldest first.
			for want := 2*n + 1; want <= 3*n; want++ {
				got, ok := r.Dequeue()
				require.True(t, ok)
				assert.Equal(t, want, got)
			}
			assert.True(t, r.IsEmpty())
		})
	}
}

func TestMaskingRejectsNonPowerOfTwo(t *testing.T) {
	for _, n := range []int{0, 3, 5, 6} {
		_, err := ring.NewMaskingHeap[int](n)
		assert.ErrorIs(t, err, api.ErrInvalidCapacity, "capacity %d", n)
	}
	_, err := ring.NewSubtractingHeap[int](0)
	var nzErr *capacity.NonZeroCapacityError
	assert.ErrorAs(t, err, &nzErr)
	_, err = ring.NewSparseMaskingHeap[int](0)
	assert.ErrorAs(t, err, &nzErr)
}

func TestDequeueOnEmptyLeavesStateUnchanged(t *testing.T) {
	forEachEngine(t, 4, func(t *testing.T, r api.Ring[int]) {
		_, ok := r.Dequeue()
		assert.False(t, ok)
		_, ok = r.Peek()
		assert.False(t, ok)
		assert.Equal(t, 0, r.Len())

		r.Enqueue(7)
		v, ok := r.Peek()
		require.True(t, ok)
		assert.Equal(t, 7, v)
		assert.Equal(t, 1, r.Len())
	})
}

func TestClear(t *testing.T) {
	forEachEngine(t, 4, func(t *testing.T, r api.Ring[int]) {
		for i := 0; i < 6; i++ {
			r.Enqueue(i)
		}
		r.Clear()
		assert.True(t, r.IsEmpty())
		r.Enqueue(42)
		v, ok := r.Dequeue()
		require.True(t, ok)
		assert.Equal(t, 42, v)
	})
}

func TestSparseNotFullUntilArtificialCapacity(t *testing.T) {
	s := storage.NewHeap[int](capacity.Must[capacity.Masking](8))
	r := ring.NewSparseMasking[int](capacity.Must[capacity.NonZero](5), s)
	assert.Equal(t, 5, r.Cap())
	assert.Equal(t, 8, r.StorageCap())

	for i := 1; i <= 5; i++ {
		assert.False(t, r.IsFull(), "full after %d items", i-1)
		_, evicted := r.Enqueue(i)
		assert.False(t, evicted)
	}
	assert.True(t, r.IsFull())

	// Wrap through the slack a few times; FIFO must hold across the mask.
	for i := 6; i <= 30; i++ {
		old, evicted := r.Enqueue(i)
		require.True(t, evicted)
		assert.Equal(t, i-5, old)
		assert.Equal(t, 5, r.Len())
	}
}

func TestSparseRejectsOversizedCapacity(t *testing.T) {
	s := storage.NewHeap[int](capacity.Must[capacity.Masking](4))
	assert.PanicsWithError(t, "capacity exceeds storage capacity: 5 > 4", func() {
		ring.NewSparseMasking[int](capacity.Must[capacity.NonZero](5), s)
	})
	assert.Panics(t, func() {
		ring.NewSparseMasking[int](capacity.NonZero{}, s)
	})
}

func TestInlineConstructors(t *testing.T) {
	m := ring.NewMaskingInline[int, [8]int]()
	assert.Equal(t, 8, m.Cap())

	sub := ring.NewSubtractingInline[string, [3]string]()
	assert.Equal(t, 3, sub.Cap())
	sub.Enqueue("a")
	sub.Enqueue("b")
	sub.Enqueue("c")
	old, ok := sub.Enqueue("d")
	require.True(t, ok)
	assert.Equal(t, "a", old)

	sp := ring.NewSparseMaskingInline[int, [16]int](capacity.Must[capacity.NonZero](10))
	assert.Equal(t, 10, sp.Cap())

	assert.Panics(t, func() { ring.NewMaskingInline[int, [3]int]() })
	assert.Panics(t, func() {
		ring.NewSparseMaskingInline[int, [4]int](capacity.Must[capacity.NonZero](5))
	})
}

func TestBorrowedStorage(t *testing.T) {
	var block storage.Inline[int, capacity.NonZero, [5]int]
	r := ring.NewSubtracting[int](storage.Borrow[int, capacity.NonZero](&block))
	for i := 1; i <= 5; i++ {
		r.Enqueue(i)
	}
	assert.Equal(t, []int{1, 2, 3, 4, 5}, block.Get())

	old, ok := r.Enqueue(6)
	require.True(t, ok)
	assert.Equal(t, 1, old)
	assert.Equal(t, 6, *block.Slot(0))
}

func TestDequeueZeroesVacatedSlot(t *testing.T) {
	s := storage.NewHeap[*int](capacity.Must[capacity.NonZero](2))
	r := ring.NewSubtracting[*int](s)
	v := 1
	r.Enqueue(&v)
	_, ok := r.Dequeue()
	require.True(t, ok)
	assert.Nil(t, s.Get()[0])
}

func TestMappedStorageRing(t *testing.T) {
	s := storage.NewMapped[uint64](capacity.Must[capacity.Masking](1024))
	r := ring.NewMasking[uint64](s)
	for i := uint64(0); i < 3000; i++ {
		r.Enqueue(i)
	}
	v, ok := r.Dequeue()
	require.True(t, ok)
	assert.Equal(t, uint64(3000-1024), v)
	require.NoError(t, r.Storage().Close())
}
