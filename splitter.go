package jieba

import "regexp"

// Mode selects which Han/skip regular expression pair the splitter and
// orchestrator use.
type Mode int

const (
	// Default mode segments Han-like runs through the dictionary
	// pipeline and treats ASCII alphanumerics and a small punctuation
	// set as part of a Han-like block too.
	Default Mode = iota
	// CutAll mode restricts Han-like runs to CJK ranges only, and
	// enumerates every DAG span rather than the single best path.
	CutAll
)

// hanRanges is the large CJK Unified Ideographs (+ extensions) range
// list shared by both modes, per spec section 4.2.
const hanRanges = `` +
	`\x{3400}-\x{4DBF}` +
	`\x{4E00}-\x{9FFF}` +
	`\x{F900}-\x{FAFF}` +
	`\x{20000}-\x{2A6DF}` +
	`\x{2A700}-\x{2B73F}` +
	`\x{2B740}-\x{2B81F}` +
	`\x{2B820}-\x{2CEAF}` +
	`\x{2CEB0}-\x{2EBEF}` +
	`\x{2F800}-\x{2FA1F}`

var (
	reHanDefault = regexp.MustCompile(`[` + hanRanges + `a-zA-Z0-9+#&._%]+`)
	reSkipDefault = regexp.MustCompile(`\r\n|\s`)
	reHanCutAll  = regexp.MustCompile(`[` + hanRanges + `]+`)
	reSkipCutAll = regexp.MustCompile(`[^a-zA-Z0-9+#\n]`)
)

func patternsFor(mode Mode) (han, skip *regexp.Regexp) {
	if mode == CutAll {
		return reHanCutAll, reSkipCutAll
	}
	return reHanDefault, reSkipDefault
}

// block is one alternating piece of a splitText() result: either a
// Han-like run (destined for the dictionary pipeline) or everything
// between two such runs.
type block struct {
	text string
	han  bool
}

// splitText partitions text into alternating Han-like / non-Han-like
// blocks using the Han pattern for mode. Empty blocks are never
// produced.
func splitText(mode Mode, text string) []block {
	han, _ := patternsFor(mode)
	idx := han.FindAllStringIndex(text, -1)
	if len(idx) == 0 {
		if text == "" {
			return nil
		}
		return []block{{text, false}}
	}

	blocks := make([]block, 0, len(idx)*2+1)
	prevEnd := 0
	for _, pair := range idx {
		if pair[0] != prevEnd {
			blocks = append(blocks, block{text[prevEnd:pair[0]], false})
		}
		blocks = append(blocks, block{text[pair[0]:pair[1]], true})
		prevEnd = pair[1]
	}
	if prevEnd != len(text) {
		blocks = append(blocks, block{text[prevEnd:], false})
	}
	return blocks
}

// splitNonHan further splits a non-Han block per spec section 4.2:
// skip-regex matches (whitespace in default mode, anything outside
// [A-Za-z0-9+#\n] in cut-all mode) are emitted verbatim; everything
// else is emitted whole in cut-all mode, or one code point at a time
// in default mode.
func splitNonHan(mode Mode, text string) []string {
	_, skip := patternsFor(mode)
	idx := skip.FindAllStringIndex(text, -1)
	if len(idx) == 0 {
		return splitRemainder(mode, text)
	}

	var pieces []string
	prevEnd := 0
	for _, pair := range idx {
		if pair[0] != prevEnd {
			pieces = append(pieces, splitRemainder(mode, text[prevEnd:pair[0]])...)
		}
		pieces = append(pieces, text[pair[0]:pair[1]])
		prevEnd = pair[1]
	}
	if prevEnd != len(text) {
		pieces = append(pieces, splitRemainder(mode, text[prevEnd:])...)
	}
	return pieces
}

func splitRemainder(mode Mode, text string) []string {
	if text == "" {
		return nil
	}
	if mode == CutAll {
		return []string{text}
	}
	pieces := make([]string, 0, len(text))
	for _, r := range text {
		pieces = append(pieces, string(r))
	}
	return pieces
}
