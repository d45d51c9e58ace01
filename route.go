package jieba

import "math"

// routeTable holds the backward DP result for one block: for each byte
// offset i, prob[i] is the maximum log-probability path from i to the
// end of the block, and next[i] is the byte offset that path steps to
// first. prob/next are indexed 0..len(block), with route[len(block)]
// fixed at (0, len(block)).
type routeTable struct {
	prob []float64
	next []int
}

func (rt *routeTable) ensureLen(n int) {
	if cap(rt.prob) < n {
		rt.prob = make([]float64, n)
		rt.next = make([]int, n)
		return
	}
	rt.prob = rt.prob[:n]
	rt.next = rt.next[:n]
}

// codePointStarts returns, in ascending order, every byte offset in s
// that begins a UTF-8 code point.
func codePointStarts(s string) []int {
	starts := make([]int, 0, len(s))
	for i := range s {
		starts = append(starts, i)
	}
	return starts
}

// computeRoute runs the maximum-log-probability backward DP of spec
// section 4.4 over block, using dag d (already built over the same
// block) and the dictionary's frequencies. The result is left in rt,
// sized to len(block)+1.
func computeRoute(dict *Dictionary, block string, d dag, rt *routeTable) {
	l := len(block)
	rt.ensureLen(l + 1)
	rt.prob[l] = 0
	rt.next[l] = l

	logTotal := math.Log(float64(dict.Total()))
	starts := codePointStarts(block)

	for k := len(starts) - 1; k >= 0; k-- {
		i := starts[k]
		ends := d[i]
		if len(ends) == 0 {
			e := l
			if k+1 < len(starts) {
				e = starts[k+1]
			}
			rt.prob[i] = -logTotal + rt.prob[e] // ln(1) == 0
			rt.next[i] = e
			continue
		}
		bestProb := math.Inf(-1)
		bestEnd := ends[0]
		for _, e := range ends {
			freq := dict.Freq(block[i:e])
			p := math.Log(float64(freq)) - logTotal + rt.prob[e]
			if p >= bestProb {
				bestProb = p
				bestEnd = e
			}
		}
		rt.prob[i] = bestProb
		rt.next[i] = bestEnd
	}
}
