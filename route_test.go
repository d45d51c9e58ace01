package jieba

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeRoutePrefersLongerDictionaryWord(t *testing.T) {
	d, err := NewDictionary(strings.NewReader("网 500 n\n网球 200 n\n网球拍 5000 n\n球 400 n\n球拍 60 n\n拍 300 v\n"))
	require.NoError(t, err)

	block := "网球拍"
	g := dag{}
	buildDAG(d, block, g)
	var rt routeTable
	computeRoute(d, block, g, &rt)

	x := 0
	var words []string
	for x < len(block) {
		y := rt.next[x]
		words = append(words, block[x:y])
		x = y
	}
	assert.Equal(t, []string{"网球拍"}, words, "the single atomic 3-character word must beat the 网+球拍 or 网球+拍 splits")
}

func TestComputeRouteFallsBackToSingleCodePoints(t *testing.T) {
	d, err := NewDictionary(strings.NewReader("网 10 n\n"))
	require.NoError(t, err)

	block := "网久"
	g := dag{}
	buildDAG(d, block, g)
	var rt routeTable
	computeRoute(d, block, g, &rt)

	assert.Equal(t, len("网"), rt.next[0])
	assert.Equal(t, len(block), rt.next[len("网")])
}
