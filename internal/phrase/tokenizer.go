package phrase

import (
	"iter"
	"sort"
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
)

// stopwords excluded from lexical tokenization. Function words stand in for
// the source-of-truth content-word filter: everything left after removing
// them is treated as a content token.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "is": true, "are": true,
	"was": true, "were": true, "do": true, "does": true, "did": true,
	"have": true, "has": true, "had": true, "be": true, "been": true,
	"being": true, "will": true, "would": true, "could": true, "should": true,
	"may": true, "might": true, "can": true, "shall": true, "not": true,
	"no": true, "and": true, "or": true, "but": true, "if": true,
	"then": true, "than": true, "so": true, "as": true, "at": true,
	"by": true, "for": true, "from": true, "in": true, "into": true,
	"of": true, "on": true, "to": true, "with": true, "about": true,
	"up": true, "out": true, "it": true, "its": true, "this": true,
	"that": true, "what": true, "which": true, "who": true, "how": true,
	"when": true, "where": true, "why": true, "you": true, "me": true,
	"i": true, "my": true, "your": true, "we": true, "they": true,
	"he": true, "she": true, "her": true, "him": true, "us": true,
	"them": true, "am": true, "our": true, "their": true,
}

// Tokenizer produces phrase-aware token streams. The zero value is not
// usable; construct with NewTokenizer, once, at process start.
type Tokenizer struct {
	// phrases indexed by first word, longest first within each bucket, so a
	// greedy scan prefers "full stack developer" over "full".
	byFirstWord map[string][][]string
}

// NewTokenizer builds a tokenizer over the package's KeyPhrases.
func NewTokenizer() *Tokenizer {
	t := &Tokenizer{byFirstWord: make(map[string][][]string)}
	for _, p := range KeyPhrases {
		words := strings.Fields(p)
		t.byFirstWord[words[0]] = append(t.byFirstWord[words[0]], words)
	}
	for first := range t.byFirstWord {
		bucket := t.byFirstWord[first]
		sort.Slice(bucket, func(i, j int) bool { return len(bucket[i]) > len(bucket[j]) })
	}
	return t
}

// Tokens returns a restartable, finite sequence of tokens for text.
// A matched key phrase is emitted as one token with spaces replaced by "_",
// and its constituent words are consumed; they never appear separately for
// that span. Every other token is the stemmed form of a content word.
// Stopwords and punctuation-only words are dropped, numerals kept.
func (t *Tokenizer) Tokens(text string) iter.Seq[string] {
	words := strings.Fields(strings.ToLower(text))
	return func(yield func(string) bool) {
		for i := 0; i < len(words); {
			if n, joined := t.matchPhrase(words, i); n > 0 {
				if !yield(joined) {
					return
				}
				i += n
				continue
			}
			w := trimPunct(words[i])
			i++
			if w == "" || stopwords[w] {
				continue
			}
			if !yield(english.Stem(w, true)) {
				return
			}
		}
	}
}

// matchPhrase reports the longest key phrase starting at words[i], as its
// word count and joined token, or (0, "").
func (t *Tokenizer) matchPhrase(words []string, i int) (int, string) {
	first := trimPunct(words[i])
	for _, candidate := range t.byFirstWord[first] {
		if i+len(candidate) > len(words) {
			continue
		}
		ok := true
		for j, pw := range candidate {
			got := words[i+j]
			// Interior words must match trimmed; phrase words themselves may
			// carry punctuation ("node.js", "scikit-learn").
			if got != pw && trimPunct(got) != pw {
				ok = false
				break
			}
		}
		if ok {
			return len(candidate), strings.Join(candidate, "_")
		}
	}
	return 0, ""
}

// trimPunct strips leading/trailing punctuation but keeps interior marks,
// so "node.js," becomes "node.js" and "(python)" becomes "python".
func trimPunct(w string) string {
	return strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// Collect drains a token sequence into a slice. Convenience for callers that
// need random access (n-gram construction).
func Collect(seq iter.Seq[string]) []string {
	var out []string
	for tok := range seq {
		out = append(out, tok)
	}
	return out
}
