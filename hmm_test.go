package jieba

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHMMCutSingleRuneShortcut(t *testing.T) {
	h := newHMMModel()
	var s hmmScratch
	assert.Equal(t, []string{"中"}, h.cut("中", &s))
}

func TestHMMCutDecodesZhongChuLe(t *testing.T) {
	h := newHMMModel()
	var s hmmScratch
	words := h.cut("中出了", &s)
	assert.Equal(t, []string{"中出", "了"}, words)
}

func TestHMMEmissionFallsBackToFloorForUnseenCharacters(t *testing.T) {
	h := newHMMModel()
	got := h.emission(stB, '龘')
	assert.Equal(t, h.floor, got)
}

func TestCutWordsClosesSpanAtEveryEOrS(t *testing.T) {
	runes := []rune("中出了")
	path := []int8{stB, stE, stS}
	assert.Equal(t, []string{"中出", "了"}, cutWords(runes, path))
}

func TestViterbiNeverChoosesForbiddenTransition(t *testing.T) {
	h := newHMMModel()
	var s hmmScratch
	runes := []rune("中出了")
	h.viterbi(runes, &s)
	for i := 1; i < len(s.path); i++ {
		from, to := s.path[i-1], s.path[i]
		assert.NotEqual(t, negInf, h.trans[from][to], "decoded path must never cross a forbidden transition")
	}
}
