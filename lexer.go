package martindb

import "strings"

// Tokenize splits raw statement text into a flat token sequence.
// Parentheses and commas always become standalone tokens regardless of
// surrounding whitespace; all other separation is by whitespace. Any
// input is valid and the empty string yields no tokens. Case is
// preserved; keyword folding is the parser's job.
func Tokenize(source string) []string {
	spaced := strings.NewReplacer(
		"(", " ( ",
		")", " ) ",
		",", " , ",
	).Replace(source)

	return strings.Fields(spaced)
}
