package swiss

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapInsertGetDelete(t *testing.T) {
	m := New[string, int]()

	ok := m.Insert("a", 1)
	require.True(t, ok)
	ok = m.Insert("a", 2)
	require.False(t, ok, "Insert must not overwrite an existing key")

	v, ok := m.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	require.False(t, m.Contains("b"))
	require.True(t, m.Delete("a"))
	require.False(t, m.Delete("a"))
	require.False(t, m.Contains("a"))
	require.Equal(t, 0, m.Len())
}

func TestMapInsertOrAssign(t *testing.T) {
	m := New[string, int]()

	prev, existed := m.InsertOrAssign("a", 1)
	require.False(t, existed)
	require.Zero(t, prev)

	prev, existed = m.InsertOrAssign("a", 2)
	require.True(t, existed)
	require.Equal(t, 1, prev)

	v, _ := m.Get("a")
	require.Equal(t, 2, v)
}

func TestMapGrowsAndKeepsAllEntries(t *testing.T) {
	m := New[int, int](WithCapacity(16))
	const n = 10_000
	for i := 0; i < n; i++ {
		require.True(t, m.Insert(i, i*i))
	}
	require.Equal(t, n, m.Len())
	for i := 0; i < n; i++ {
		v, ok := m.Get(i)
		require.True(t, ok)
		require.Equal(t, i*i, v)
	}
	require.LessOrEqual(t, m.LoadFactor(), m.maxLoadFactor)
}

func TestMapDeleteReclaimsTombstones(t *testing.T) {
	m := New[int, int](WithCapacity(16))
	for i := 0; i < 200; i++ {
		m.Insert(i, i)
	}
	for i := 0; i < 200; i += 2 {
		require.True(t, m.Delete(i))
	}
	capBefore := m.Capacity()
	for i := 1000; i < 1100; i++ {
		m.Insert(i, i)
	}
	require.LessOrEqual(t, m.Capacity(), capBefore*4, "repeated churn should not grow capacity unboundedly when tombstones are reclaimable")
	for i := 1; i < 200; i += 2 {
		v, ok := m.Get(i)
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestMapWithoutTombstoneReclamationStillFindsEverything(t *testing.T) {
	m := New[int, int](WithCapacity(64), WithTombstoneReclamation(false))
	for i := 0; i < 500; i++ {
		m.Insert(i, i)
	}
	for i := 0; i < 500; i += 3 {
		m.Delete(i)
	}
	for i := 1; i < 500; i++ {
		if i%3 == 0 {
			continue
		}
		v, ok := m.Get(i)
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestMapInsertUniquePanicsOnDuplicateUnderDebugBuild(t *testing.T) {
	if !debugAssertions {
		t.Skip("build without -tags swissdebug does not enforce this precondition")
	}
	m := New[string, int]()
	m.InsertUnique("a", 1)
	require.Panics(t, func() { m.InsertUnique("a", 2) })
}

func TestMapClear(t *testing.T) {
	m := New[int, int]()
	for i := 0; i < 100; i++ {
		m.Insert(i, i)
	}
	cap := m.Capacity()
	m.Clear()
	require.Equal(t, 0, m.Len())
	require.Equal(t, cap, m.Capacity())
	require.False(t, m.Contains(0))
	require.True(t, m.Insert(0, 42))
}

func TestMapReserveAvoidsGrowthBelowTarget(t *testing.T) {
	m := New[int, int]()
	m.Reserve(1000)
	cap := m.Capacity()
	for i := 0; i < 1000; i++ {
		m.Insert(i, i)
	}
	require.Equal(t, cap, m.Capacity(), "Reserve should have sized the table so this loop never rehashes")
}

func TestMapClone(t *testing.T) {
	m := New[string, int]()
	for i := 0; i < 50; i++ {
		m.Insert(strconv.Itoa(i), i)
	}
	c := m.Clone()
	require.True(t, c.Delete("0"))
	require.True(t, m.Contains("0"), "mutating the clone must not affect the original")

	require.True(t, m.Insert("new", -1))
	require.False(t, c.Contains("new"), "mutating the original must not affect the clone")
}

func TestMapMaxDisplacementNeverTruncatesLookup(t *testing.T) {
	m := New[int, int](WithCapacity(16))
	for i := 0; i < 5000; i++ {
		m.Insert(i, i)
	}
	require.GreaterOrEqual(t, m.MaxDisplacement(), 0)
	for i := 0; i < 5000; i++ {
		_, ok := m.Get(i)
		require.True(t, ok, "every inserted key must still be reachable regardless of its probe displacement")
	}
}

func TestMapCustomHasherAndEqual(t *testing.T) {
	calls := 0
	m := New[int, int](
		WithHasher(func(k int) uint64 { calls++; return uint64(k) }),
		WithEqual(func(a, b int) bool { return a == b }),
	)
	m.Insert(1, 10)
	v, ok := m.Get(1)
	require.True(t, ok)
	require.Equal(t, 10, v)
	require.Positive(t, calls)
}

func TestWithMaxLoadFactorValidatesRange(t *testing.T) {
	require.Panics(t, func() { New[int, int](WithMaxLoadFactor(0)) })
	require.Panics(t, func() { New[int, int](WithMaxLoadFactor(1)) })
	require.NotPanics(t, func() { New[int, int](WithMaxLoadFactor(0.5)) })
}
