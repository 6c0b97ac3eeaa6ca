package swiss

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetAddRemoveContains(t *testing.T) {
	s := NewSet[string]()
	require.True(t, s.Add("a"))
	require.False(t, s.Add("a"))
	require.True(t, s.Contains("a"))
	require.False(t, s.Contains("b"))

	require.True(t, s.Remove("a"))
	require.False(t, s.Remove("a"))
	require.False(t, s.Contains("a"))
	require.Equal(t, 0, s.Len())
}

func TestSetKeysMatchMembership(t *testing.T) {
	s := NewSet[int]()
	for i := 0; i < 100; i++ {
		s.Add(i)
	}
	count := 0
	for k := range s.Keys() {
		require.True(t, s.Contains(k))
		count++
	}
	require.Equal(t, s.Len(), count)
}

func TestSetCloneIsIndependent(t *testing.T) {
	s := NewSet[int]()
	s.Add(1)
	s.Add(2)
	c := s.Clone()
	c.Remove(1)
	require.True(t, s.Contains(1))
	require.False(t, c.Contains(1))
}
