// Package phrase holds the fixed domain vocabulary used by the matching
// pipeline: canonical multi-word key phrases, the synonym table that rewrites
// common abbreviations to their canonical form, and a phrase-aware tokenizer.
//
// KeyPhrases and Synonyms are process-wide read-only state. They are plain
// package-level values constructed at init and never mutated afterwards, so
// concurrent readers need no locking.
package phrase

import "strings"

// KeyPhrases is the canonical set of domain terms. Multi-word entries are
// emitted as a single token by the tokenizer and drive the keyword and role
// bonuses in scoring.
var KeyPhrases = []string{
	"full stack developer", "machine learning", "data analysis", "business intelligence",
	"restful api", "data scientist", "tensorflow", "pytorch", "scikit-learn", "react",
	"node.js", "django", "python", "javascript", "sql", "nosql", "aws", "azure",
	"docker", "kubernetes", "frontend", "backend", "devops", "agile", "scrum",
}

// Synonyms maps abbreviations and variants to their canonical phrase.
// Replacement is literal substring replacement, not word-boundary aware:
// "js" rewrites inside "enjoys" too. Downstream scoring depends on this
// behavior, so it must not be tightened to word boundaries.
var Synonyms = map[string]string{
	"ml":       "machine learning",
	"ai":       "artificial intelligence",
	"js":       "javascript",
	"node":     "node.js",
	"reactjs":  "react",
	"rest api": "restful api",
	"nosql":    "no sql",
}

// synonymOrder fixes the replacement order so Expand is deterministic
// (map iteration order is not).
var synonymOrder = []string{"ml", "ai", "js", "node", "reactjs", "rest api", "nosql"}

// Expand lowercases s and applies every synonym rewrite.
func Expand(s string) string {
	s = strings.ToLower(s)
	for _, key := range synonymOrder {
		s = strings.ReplaceAll(s, key, Synonyms[key])
	}
	return s
}

// CountShared returns how many key phrases appear as substrings in both texts.
// Inputs are expected to be lowercased already.
func CountShared(a, b string) int {
	n := 0
	for _, p := range KeyPhrases {
		if strings.Contains(a, p) && strings.Contains(b, p) {
			n++
		}
	}
	return n
}
