package viewstate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheGetNeverFetches(t *testing.T) {
	c := NewCache[[]string]()

	_, ok := c.Get(42)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestCacheFetchAndStoreOverwrites(t *testing.T) {
	c := NewCache[[]string]()

	v, err := c.FetchAndStore(7, func() ([]string, error) { return []string{"first"}, nil })
	require.NoError(t, err)
	assert.Equal(t, []string{"first"}, v)

	v, err = c.FetchAndStore(7, func() ([]string, error) { return []string{"second"}, nil })
	require.NoError(t, err)
	assert.Equal(t, []string{"second"}, v)

	// Full replacement, no merge.
	got, ok := c.Get(7)
	require.True(t, ok)
	assert.Equal(t, []string{"second"}, got)
	assert.Equal(t, 1, c.Len())
}

func TestCacheFetchFailureLeavesSlot(t *testing.T) {
	c := NewCache[[]string]()
	c.Put(7, []string{"kept"})

	_, err := c.FetchAndStore(7, func() ([]string, error) { return nil, errors.New("boom") })
	assert.Error(t, err)

	got, ok := c.Get(7)
	require.True(t, ok)
	assert.Equal(t, []string{"kept"}, got)
}

func TestCacheStoresEmptyList(t *testing.T) {
	c := NewCache[[]string]()

	_, err := c.FetchAndStore(42, func() ([]string, error) { return []string{}, nil })
	require.NoError(t, err)

	// Present and empty, not absent.
	got, ok := c.Get(42)
	assert.True(t, ok)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCacheValuesOrderedByKey(t *testing.T) {
	c := NewCache[string]()
	c.Put(3, "c")
	c.Put(1, "a")
	c.Put(2, "b")

	assert.Equal(t, []string{"a", "b", "c"}, c.Values())
}

func TestSlotUnfilledVersusEmpty(t *testing.T) {
	s := NewSlot[[]int]()

	_, filled := s.Get()
	assert.False(t, filled)

	s.Set([]int{})
	v, filled := s.Get()
	assert.True(t, filled)
	assert.Empty(t, v)
}

func TestSlotMutateSkipsUnfilled(t *testing.T) {
	s := NewSlot[[]int]()

	s.Mutate(func(v []int) []int { return append(v, 1) })
	_, filled := s.Get()
	assert.False(t, filled)

	s.Set([]int{1, 2})
	s.Mutate(func(v []int) []int { return append(v, 3) })
	v, _ := s.Get()
	assert.Equal(t, []int{1, 2, 3}, v)
}

func TestSlotClear(t *testing.T) {
	s := NewSlot[[]int]()
	s.Set([]int{1})

	s.Clear()
	_, filled := s.Get()
	assert.False(t, filled)
}

func TestExpansionMutualExclusion(t *testing.T) {
	e := NewExpansion()

	assert.True(t, e.Toggle(1))
	assert.True(t, e.IsExpanded(1))

	// Expanding B collapses A.
	assert.True(t, e.Toggle(2))
	assert.False(t, e.IsExpanded(1))
	assert.True(t, e.IsExpanded(2))

	key, open := e.Expanded()
	assert.True(t, open)
	assert.Equal(t, 2, key)

	// Toggling the open key collapses it.
	assert.False(t, e.Toggle(2))
	_, open = e.Expanded()
	assert.False(t, open)
}

func TestExpansionLevelsIndependent(t *testing.T) {
	st := NewState()

	st.ExpandedCourse.Toggle(9)
	st.ExpandedLesson.Toggle(5)

	assert.True(t, st.ExpandedCourse.IsExpanded(9))
	assert.True(t, st.ExpandedLesson.IsExpanded(5))

	st.ExpandedLesson.Collapse()
	assert.True(t, st.ExpandedCourse.IsExpanded(9))
}

func TestFirstVisit(t *testing.T) {
	st := NewState()

	assert.True(t, st.FirstVisit("mount"))
	assert.False(t, st.FirstVisit("mount"))
	assert.True(t, st.FirstVisit("other"))
}

func TestRegistryLifetime(t *testing.T) {
	r := NewRegistry()

	st := r.Get("sid-1")
	require.NotNil(t, st)
	assert.Same(t, st, r.Get("sid-1"))

	st.Lessons.Put(1, nil)
	r.Drop("sid-1")

	fresh := r.Get("sid-1")
	assert.NotSame(t, st, fresh)
	_, ok := fresh.Lessons.Get(1)
	assert.False(t, ok)
}
