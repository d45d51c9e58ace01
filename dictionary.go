package jieba

import (
	_ "embed"

	"bufio"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/ericlingit/jieba-core/internal/automaton"
)

//go:embed data/dict.txt
var embeddedLexicon string

const bom = "﻿"

type entry struct {
	word string
	freq int
	tag  string
}

// Dictionary is a prefix dictionary over a fixed vocabulary: a list of
// (word, frequency, tag) entries plus the two multi-pattern automata
// built over their text. It is safe for concurrent read-only use once
// constructed; AddWord mutates it in place and is not safe to call
// concurrently with Cut/Contains on the same Dictionary.
type Dictionary struct {
	mu      sync.RWMutex
	entries []entry
	index   map[string]int
	total   int
	longest int
	matcher *automaton.Matcher
}

// NewDictionary builds a Dictionary from a newline-delimited lexicon:
// "word[ freq[ tag]]" per line, whitespace separated. A missing
// frequency defaults to 0; a missing tag defaults to "". Blank lines
// are skipped. A leading UTF-8 byte-order mark is tolerated. An
// unparsable frequency field aborts construction with *DictionaryError.
func NewDictionary(r io.Reader) (*Dictionary, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, bom)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return buildDictionary(lines)
}

// NewDefaultDictionary builds a Dictionary from the embedded default
// lexicon. It returns no error: the embedded lexicon is parsed here, at
// runtime, and a malformed one makes it panic.
func NewDefaultDictionary() *Dictionary {
	d, err := buildDictionary(strings.Split(embeddedLexicon, "\n"))
	if err != nil {
		panic("jieba: embedded default dictionary is malformed: " + err.Error())
	}
	return d
}

func buildDictionary(lines []string) (*Dictionary, error) {
	d := &Dictionary{
		index: make(map[string]int, len(lines)),
	}
	for lineNo, line := range lines {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		word := fields[0]
		freq := 0
		if len(fields) >= 2 {
			f, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, &DictionaryError{Line: lineNo + 1, Reason: "frequency is not an integer: " + fields[1]}
			}
			if f < 0 {
				return nil, &DictionaryError{Line: lineNo + 1, Reason: "frequency must not be negative"}
			}
			freq = f
		}
		tag := ""
		if len(fields) >= 3 {
			tag = fields[2]
		}
		d.addTermLocked(word, freq, tag)
	}
	d.rebuildMatcherLocked()
	return d, nil
}

func (d *Dictionary) addTermLocked(word string, freq int, tag string) {
	if id, ok := d.index[word]; ok {
		d.total += freq - d.entries[id].freq
		d.entries[id] = entry{word, freq, tag}
		return
	}
	d.index[word] = len(d.entries)
	d.entries = append(d.entries, entry{word, freq, tag})
	d.total += freq
	if n := runeLen(word); n > d.longest {
		d.longest = n
	}
}

func (d *Dictionary) rebuildMatcherLocked() {
	patterns := make([]string, len(d.entries))
	for i, e := range d.entries {
		patterns[i] = e.word
	}
	d.matcher = automaton.Build(patterns)
}

// AddWord inserts or updates a dictionary entry. It is the caller's
// responsibility to serialize calls to AddWord against concurrent
// Cut/Contains calls on the same Dictionary: runtime dictionary
// mutation is explicitly out of the segmentation core's concurrency
// guarantees.
func (d *Dictionary) AddWord(word string, freq int, tag string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.addTermLocked(word, freq, tag)
	d.rebuildMatcherLocked()
}

// Contains reports whether w is, in its entirety, a dictionary word:
// the leftmost-longest match over w must span all of w. It returns the
// matching entry's id.
func (d *Dictionary) Contains(w string) (id int, ok bool) {
	if w == "" {
		return 0, false
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	match, found := d.matcher.LeftmostLongest(w)
	if !found || match.Start != 0 || match.End != len(w) {
		return 0, false
	}
	return match.Pattern, true
}

// Freq returns the dictionary frequency of w if w is an exact
// dictionary word, else 1 (the unigram fallback frequency used by the
// route DP).
func (d *Dictionary) Freq(w string) int {
	if id, ok := d.Contains(w); ok {
		return d.entries[id].freq
	}
	return 1
}

// Tag returns the part-of-speech tag recorded for word id.
func (d *Dictionary) Tag(id int) string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.entries[id].tag
}

// Total returns the sum of every entry's frequency.
func (d *Dictionary) Total() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.total
}

// LongestWordLen returns the length, in runes, of the longest
// dictionary word, for sizing caller-owned scratch buffers.
func (d *Dictionary) LongestWordLen() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.longest
}

// overlappingMatches returns every dictionary word occurrence in
// block, in ascending end order per start, per the DAG builder's
// requirements.
func (d *Dictionary) overlappingMatches(block string) []automaton.Match {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.matcher.Overlapping(block)
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
