package swiss

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapKeysValuesAllVisitEveryEntryOnce(t *testing.T) {
	m := New[int, string]()
	want := map[int]string{}
	for i := 0; i < 300; i++ {
		v := string(rune('a' + i%26))
		m.Insert(i, v)
		want[i] = v
	}

	var keys []int
	for k := range m.Keys() {
		keys = append(keys, k)
	}
	require.Len(t, keys, len(want))
	sort.Ints(keys)
	var wantKeys []int
	for k := range want {
		wantKeys = append(wantKeys, k)
	}
	sort.Ints(wantKeys)
	require.Equal(t, wantKeys, keys)

	got := map[int]string{}
	for k, v := range m.All() {
		got[k] = v
	}
	require.Equal(t, want, got)

	var values []string
	for v := range m.Values() {
		values = append(values, v)
	}
	require.Len(t, values, len(want))
}

func TestMapKeysStopsEarly(t *testing.T) {
	m := New[int, int]()
	for i := 0; i < 100; i++ {
		m.Insert(i, i)
	}
	seen := 0
	for range m.Keys() {
		seen++
		if seen == 5 {
			break
		}
	}
	require.Equal(t, 5, seen)
}
