package martindb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		source string
		tokens []string
	}{
		{
			source: "SELECT(a,b)",
			tokens: []string{"SELECT", "(", "a", ",", "b", ")"},
		},
		{
			source: "CREATE TABLE t (id INT PRIMARY, name TEXT)",
			tokens: []string{"CREATE", "TABLE", "t", "(", "id", "INT", "PRIMARY", ",", "name", "TEXT", ")"},
		},
		{
			source: "INSERT INTO t VALUES(1,'Martin')",
			tokens: []string{"INSERT", "INTO", "t", "VALUES", "(", "1", ",", "'Martin'", ")"},
		},
		{
			source: "a ,b,  c",
			tokens: []string{"a", ",", "b", ",", "c"},
		},
		{
			source: "miXed CaSe",
			tokens: []string{"miXed", "CaSe"},
		},
	}

	for _, test := range tests {
		assert.Equal(t, test.tokens, Tokenize(test.source), test.source)
	}
}

func TestTokenizeEmpty(t *testing.T) {
	assert.Empty(t, Tokenize(""))
	assert.Empty(t, Tokenize("  \t\n  "))
}
