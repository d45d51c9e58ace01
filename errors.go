package jieba

import "fmt"

// DictionaryError reports a malformed line encountered while building a
// Dictionary from a lexicon reader. A missing frequency field is not
// malformed (it defaults to 0); only an unparsable or negative
// frequency field triggers this error.
type DictionaryError struct {
	Line   int
	Reason string
}

func (e *DictionaryError) Error() string {
	return fmt.Sprintf("dictionary: line %d: %s", e.Line, e.Reason)
}
