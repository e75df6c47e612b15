package phrase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandRewritesSynonyms(t *testing.T) {
	got := Expand("Experience with ML and REST API design")
	assert.Contains(t, got, "machine learning")
	assert.Contains(t, got, "restful api")
}

func TestExpandIsLiteralSubstring(t *testing.T) {
	// Not word-boundary aware: "js" inside "json" is rewritten too.
	// Kept deliberately; scoring depends on it.
	assert.Contains(t, Expand("parses json payloads"), "javascripton")
	assert.Contains(t, Expand("graph nodes"), "node.jss")
}

func TestExpandDeterministic(t *testing.T) {
	in := "ml ai js node reactjs rest api nosql"
	first := Expand(in)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Expand(in))
	}
}

func TestCountShared(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"no overlap", "python developer", "java engineer", 0},
		{"one shared", "python and react", "react experience", 1},
		{"two shared", "full stack developer with react", "senior full stack developer, react apps", 2},
		{"substring containment counts", "aws cloud", "awesome laws and aws", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountShared(tt.a, tt.b))
		})
	}
}

func TestKeyPhrasesNeverMutated(t *testing.T) {
	require.NotEmpty(t, KeyPhrases)
	assert.Contains(t, KeyPhrases, "full stack developer")
	assert.Contains(t, KeyPhrases, "machine learning")
}
