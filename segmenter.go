package jieba

import (
	"context"
	"io"
	"runtime"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// Token is one segmented word with its Unicode code point offsets
// over the whole input sentence.
type Token struct {
	Word  string
	Start int
	End   int
}

// Tag is a segmented word paired with its part-of-speech tag.
type Tag struct {
	Word string
	Tag  string
}

// TokenizeMode selects Tokenize's output shape.
type TokenizeMode int

const (
	// TokenizeDefault emits exactly the words Cut would produce.
	TokenizeDefault TokenizeMode = iota
	// TokenizeSearch additionally emits dictionary-present 2- and
	// 3-gram sub-spans of each word, before the word itself.
	TokenizeSearch
)

// Segmenter is the public entry point for the segmentation pipeline:
// dictionary lookup, DAG construction, max-probability routing, and
// HMM fallback tagging.
type Segmenter struct {
	dict *Dictionary
	hmm  *hmmModel
}

// NewSegmenter builds a Segmenter from a custom lexicon reader, per
// spec section 6's dictionary format.
func NewSegmenter(r io.Reader) (*Segmenter, error) {
	d, err := NewDictionary(r)
	if err != nil {
		return nil, err
	}
	return &Segmenter{dict: d, hmm: newHMMModel()}, nil
}

// NewDefaultSegmenter builds a Segmenter from the embedded default
// dictionary and HMM tables. It never fails.
func NewDefaultSegmenter() *Segmenter {
	return &Segmenter{dict: NewDefaultDictionary(), hmm: newHMMModel()}
}

// Dictionary returns the segmenter's underlying dictionary.
func (s *Segmenter) Dictionary() *Dictionary {
	return s.dict
}

// AddWord inserts or updates a dictionary entry ahead of segmentation.
// If freq is less than 1, a frequency is suggested from the current
// dictionary statistics, following the teacher's suggestFreq
// heuristic. Not safe to call concurrently with Cut/CutAll/Tokenize/
// Tag/CutBatch on the same Segmenter.
func (s *Segmenter) AddWord(word string, freq int, tag string) {
	if freq < 1 {
		freq = s.suggestFreq(word)
	}
	s.dict.AddWord(word, freq, tag)
}

func (s *Segmenter) suggestFreq(word string) int {
	total := s.dict.Total()
	if total < 1 {
		total = 1
	}
	p := 1.0
	for _, piece := range s.Cut(word, false) {
		p *= float64(s.dict.Freq(piece)) / float64(total)
	}
	suggested := int(p*float64(total)) + 1
	if id, ok := s.dict.Contains(word); ok {
		if existing := s.dict.entries[id].freq; existing > suggested {
			return existing
		}
	}
	return suggested
}

// Cut segments sentence into words, optionally falling back to HMM
// decoding for out-of-vocabulary runs, per spec section 4.6.
func (s *Segmenter) Cut(sentence string, hmm bool) []string {
	return s.cutInternal(sentence, false, hmm)
}

// CutAll enumerates every dictionary-matching span in the DAG over
// each Han-like block, per spec section 4.6.
func (s *Segmenter) CutAll(sentence string) []string {
	return s.cutInternal(sentence, true, false)
}

// CutForSearch runs Cut, then additionally emits every dictionary-
// present 2-gram (for words longer than 2 characters) and 3-gram (for
// words longer than 3 characters) sub-span of each word, immediately
// before that word.
func (s *Segmenter) CutForSearch(sentence string, hmm bool) []string {
	words := s.Cut(sentence, hmm)
	out := make([]string, 0, len(words))
	for _, w := range words {
		runes := []rune(w)
		n := len(runes)
		if n > 2 {
			for i := 0; i < n-1; i++ {
				gram := string(runes[i : i+2])
				if _, ok := s.dict.Contains(gram); ok {
					out = append(out, gram)
				}
			}
		}
		if n > 3 {
			for i := 0; i < n-2; i++ {
				gram := string(runes[i : i+3])
				if _, ok := s.dict.Contains(gram); ok {
					out = append(out, gram)
				}
			}
		}
		out = append(out, w)
	}
	return out
}

// Tokenize segments sentence and reports each token's code point
// offsets over the whole input. In Search mode, dictionary-present
// 2- and 3-grams of each word are emitted first, with their own local
// offsets, before the containing word.
func (s *Segmenter) Tokenize(sentence string, mode TokenizeMode, hmm bool) []Token {
	words := s.Cut(sentence, hmm)
	tokens := make([]Token, 0, len(words))
	start := 0
	for _, w := range words {
		runes := []rune(w)
		width := len(runes)
		if mode == TokenizeSearch && width > 2 {
			for i := 0; i < width-1; i++ {
				gram := string(runes[i : i+2])
				if _, ok := s.dict.Contains(gram); ok {
					tokens = append(tokens, Token{gram, start + i, start + i + 2})
				}
			}
			if width > 3 {
				for i := 0; i < width-2; i++ {
					gram := string(runes[i : i+3])
					if _, ok := s.dict.Contains(gram); ok {
						tokens = append(tokens, Token{gram, start + i, start + i + 3})
					}
				}
			}
		}
		tokens = append(tokens, Token{w, start, start + width})
		start += width
	}
	return tokens
}

// Tag segments sentence and assigns each word a part-of-speech tag:
// the dictionary's tag for an exact entry, else "m" if every ASCII
// alphanumeric in the word is a digit, "eng" if at least one of them
// is not a digit, or "x" if the word has no ASCII alphanumerics at all.
func (s *Segmenter) Tag(sentence string, hmm bool) []Tag {
	words := s.Cut(sentence, hmm)
	tags := make([]Tag, 0, len(words))
	for _, w := range words {
		if id, ok := s.dict.Contains(w); ok {
			tags = append(tags, Tag{w, s.dict.Tag(id)})
			continue
		}
		eng, digits := 0, 0
		for _, r := range w {
			if isASCIIAlnum(r) {
				eng++
				if r >= '0' && r <= '9' {
					digits++
				}
			}
		}
		tag := "eng"
		switch {
		case eng == 0:
			tag = "x"
		case eng == digits:
			tag = "m"
		}
		tags = append(tags, Tag{w, tag})
	}
	return tags
}

// CutBatch runs Cut over every sentence concurrently, one goroutine
// per sentence bounded by GOMAXPROCS, each with its own scratch
// buffers sharing only the read-only Dictionary and HMM tables. The
// result preserves input order.
func (s *Segmenter) CutBatch(ctx context.Context, sentences []string, hmm bool) ([][]string, error) {
	results := make([][]string, len(sentences))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, sentence := range sentences {
		i, sentence := i, sentence
		g.Go(func() error {
			results[i] = s.Cut(sentence, hmm)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// cutInternal is shared by Cut and CutAll: split sentence into Han/
// non-Han blocks, then route each block through the DAG+route pair,
// the DAG enumeration, or HMM post-processing as appropriate.
func (s *Segmenter) cutInternal(sentence string, cutAll, useHMM bool) []string {
	mode := Default
	if cutAll {
		mode = CutAll
	}
	blocks := splitText(mode, sentence)
	words := make([]string, 0, len(sentence)/2+1)
	sc := &scratch{dag: dag{}}

	for _, b := range blocks {
		if !b.han {
			words = append(words, splitNonHan(mode, b.text)...)
			continue
		}
		switch {
		case cutAll:
			cutAllBlock(s.dict, b.text, &words)
		case useHMM:
			s.cutBlockHMM(b.text, sc, &words)
		default:
			cutBlockNoHMM(s.dict, b.text, sc, &words)
		}
	}
	return words
}

// scratch holds the per-call, per-invocation buffers spec section 5
// requires: they must be cleared between blocks and never shared
// across goroutines.
type scratch struct {
	dag   dag
	route routeTable
	hmm   hmmScratch
}

func cutAllBlock(dict *Dictionary, block string, words *[]string) {
	d := dag{}
	buildDAG(dict, block, d)
	for _, start := range codePointStarts(block) {
		for _, end := range d[start] {
			*words = append(*words, block[start:end])
		}
	}
}

func cutBlockNoHMM(dict *Dictionary, block string, sc *scratch, words *[]string) {
	sc.dag.clear()
	buildDAG(dict, block, sc.dag)
	computeRoute(dict, block, sc.dag, &sc.route)

	x, leftStart := 0, -1
	for x < len(block) {
		y := sc.route.next[x]
		step := block[x:y]
		if singleASCIIAlnum(step) {
			if leftStart == -1 {
				leftStart = x
			}
		} else {
			if leftStart != -1 {
				*words = append(*words, block[leftStart:x])
				leftStart = -1
			}
			*words = append(*words, step)
		}
		x = y
	}
	if leftStart != -1 {
		*words = append(*words, block[leftStart:])
	}
}

func (s *Segmenter) cutBlockHMM(block string, sc *scratch, words *[]string) {
	sc.dag.clear()
	buildDAG(s.dict, block, sc.dag)
	computeRoute(s.dict, block, sc.dag, &sc.route)

	x, leftStart := 0, -1
	for x < len(block) {
		y := sc.route.next[x]
		step := block[x:y]
		if singleRune(step) {
			if leftStart == -1 {
				leftStart = x
			}
		} else {
			if leftStart != -1 {
				s.flushHMMSpan(block[leftStart:x], sc, words)
				leftStart = -1
			}
			*words = append(*words, step)
		}
		x = y
	}
	if leftStart != -1 {
		s.flushHMMSpan(block[leftStart:], sc, words)
	}
}

func (s *Segmenter) flushHMMSpan(span string, sc *scratch, words *[]string) {
	if runeLen(span) == 1 {
		*words = append(*words, span)
		return
	}
	if _, ok := s.dict.Contains(span); !ok {
		*words = append(*words, s.hmm.cut(span, &sc.hmm)...)
		return
	}
	for _, r := range span {
		*words = append(*words, string(r))
	}
}

func singleRune(s string) bool {
	_, size := utf8.DecodeRuneInString(s)
	return size == len(s)
}

func singleASCIIAlnum(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size == len(s) && isASCIIAlnum(r)
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
