package automaton

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlappingFindsEveryOccurrence(t *testing.T) {
	m := Build([]string{"网", "网球", "网球拍", "球", "球拍", "拍", "拍卖", "拍卖会", "卖", "会"})
	matches := m.Overlapping("网球拍卖会")

	byStart := map[int][]int{}
	for _, mt := range matches {
		byStart[mt.Start] = append(byStart[mt.Start], mt.End)
	}
	for start := range byStart {
		assert.True(t, sort.IntsAreSorted(byStart[start]), "ends for start %d must be ascending", start)
	}

	assert.ElementsMatch(t, []int{3, 6, 9}, byStart[0])
	assert.ElementsMatch(t, []int{6, 9}, byStart[3])
	assert.ElementsMatch(t, []int{9, 12, 15}, byStart[6])
	assert.ElementsMatch(t, []int{12}, byStart[9])
	assert.ElementsMatch(t, []int{15}, byStart[12])
}

func TestOverlappingNoMatch(t *testing.T) {
	m := Build([]string{"abc"})
	assert.Empty(t, m.Overlapping("xyz"))
}

func TestLeftmostLongestPrefersLongerAtEarliestStart(t *testing.T) {
	m := Build([]string{"a", "ab", "abc", "b"})
	match, ok := m.LeftmostLongest("abcd")
	require.True(t, ok)
	assert.Equal(t, 0, match.Start)
	assert.Equal(t, 3, match.End) // "abc", the longest match starting at offset 0

	match, ok = m.LeftmostLongest("xabc")
	require.True(t, ok)
	assert.Equal(t, 1, match.Start)
	assert.Equal(t, 4, match.End)
}

func TestLeftmostLongestExactMembership(t *testing.T) {
	m := Build([]string{"南京", "南京市", "京市"})

	match, ok := m.LeftmostLongest("南京市")
	require.True(t, ok)
	assert.Equal(t, 0, match.Start)
	assert.Equal(t, len("南京市"), match.End)

	match, ok = m.LeftmostLongest("京市")
	require.True(t, ok)
	assert.Equal(t, 0, match.Start)
	assert.Equal(t, len("京市"), match.End)

	_, ok = m.LeftmostLongest("北京")
	assert.False(t, ok)
}

func TestLeftmostLongestNoMatchAnywhere(t *testing.T) {
	m := Build([]string{"foo"})
	_, ok := m.LeftmostLongest("bar")
	assert.False(t, ok)
}
