package cow_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rostercore/pkg/cow"
	"rostercore/pkg/domain"
)

func TestListCopyLaw(t *testing.T) {
	h1 := cow.NewList(1)
	require.True(t, h1.IsUniquelyHeld(), "fresh list must be uniquely held")

	h2 := h1.Share()
	assert.False(t, h1.IsUniquelyHeld(), "shared list must not report unique")
	assert.False(t, h2.IsUniquelyHeld(), "shared list must not report unique")

	h1.Add(2)

	assert.Equal(t, 2, h1.Count())
	assert.Equal(t, 1, h2.Count())
	assert.True(t, h1.IsUniquelyHeld(), "writer owns its clone")
	assert.True(t, h2.IsUniquelyHeld(), "other handle owns the original buffer")
	assert.Equal(t, []int{1, 2}, h1.Items())
	assert.Equal(t, []int{1}, h2.Items())
}

func TestListUniqueMutationDoesNotClone(t *testing.T) {
	l := cow.NewList("a")
	l.Add("b")
	l.Add("c")
	require.True(t, l.IsUniquelyHeld())
	assert.Equal(t, "[a b c]", l.String())
}

func TestListGetOutOfRangeIsAbsent(t *testing.T) {
	l := cow.NewList("hello", "world")
	got, ok := l.Get(1)
	require.True(t, ok)
	assert.Equal(t, "world", got)

	for _, idx := range []int{-1, 2, 10} {
		_, ok := l.Get(idx)
		assert.False(t, ok, "index %d", idx)
	}
}

func TestListGetManySkipsOutOfRange(t *testing.T) {
	l := cow.NewList(1, 2, 3, 4, 5)
	assert.Equal(t, []int{3, 4, 5}, l.GetMany(2, 3, 4))
	assert.Equal(t, []int{5, 1}, l.GetMany(4, 9, -3, 0))
	assert.Empty(t, l.GetMany())
}

func TestListDelete(t *testing.T) {
	l := cow.NewList(1, 2, 3)
	require.NoError(t, l.Delete(1))
	assert.Equal(t, []int{1, 3}, l.Items())

	err := l.Delete(2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrIndex))
	var ierr domain.IndexError
	require.ErrorAs(t, err, &ierr)
	assert.Equal(t, 2, ierr.Index)
	assert.Equal(t, 2, ierr.Len)
	assert.Equal(t, []int{1, 3}, l.Items(), "failed delete must not mutate")
}

func TestListDeleteThroughSharedHandleClones(t *testing.T) {
	a := cow.NewList(1, 2, 3)
	b := a.Share()

	require.Error(t, b.Delete(5))
	assert.False(t, b.IsUniquelyHeld(), "failed delete must not clone")

	require.NoError(t, b.Delete(0))
	assert.Equal(t, []int{1, 2, 3}, a.Items())
	assert.Equal(t, []int{2, 3}, b.Items())
	assert.True(t, a.IsUniquelyHeld())
	assert.True(t, b.IsUniquelyHeld())
}

func TestListReleaseRestoresUniqueness(t *testing.T) {
	a := cow.NewList(1)
	b := a.Share()
	c := a.Share()
	assert.False(t, a.IsUniquelyHeld())

	b.Release()
	assert.False(t, a.IsUniquelyHeld(), "c still shares the buffer")
	c.Release()
	assert.True(t, a.IsUniquelyHeld())

	assert.Equal(t, 0, b.Count(), "released handle is empty")
	b.Add(9)
	assert.Equal(t, []int{9}, b.Items())
	assert.Equal(t, []int{1}, a.Items())
}

func TestListZeroValue(t *testing.T) {
	var l cow.List[int]
	assert.True(t, l.IsUniquelyHeld())
	other := l.Share()
	l.Add(1)
	assert.Equal(t, 1, l.Count())
	assert.Equal(t, 0, other.Count())
}

func TestListItemsIsACopy(t *testing.T) {
	l := cow.NewList(1, 2)
	items := l.Items()
	items[0] = 99
	got, _ := l.Get(0)
	assert.Equal(t, 1, got)
}

func TestListSharedHandlesAcrossGoroutines(t *testing.T) {
	base := cow.NewList(0)
	const workers = 8
	handles := make([]*cow.List[int], workers)
	for i := range handles {
		handles[i] = base.Share()
	}
	base.Release()

	var wg sync.WaitGroup
	for i, h := range handles {
		wg.Add(1)
		go func(i int, h *cow.List[int]) {
			defer wg.Done()
			for n := 0; n < 10; n++ {
				h.Add(i)
			}
		}(i, h)
	}
	wg.Wait()

	for _, h := range handles {
		assert.Equal(t, 11, h.Count())
		assert.True(t, h.IsUniquelyHeld())
		first, _ := h.Get(0)
		assert.Equal(t, 0, first)
	}
}
