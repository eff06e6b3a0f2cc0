package martindb

import (
	"fmt"
	"strconv"
	"strings"
)

// parser consumes a token sequence positionally with a single forward
// cursor and one-token lookahead.
type parser struct {
	tokens []string
	cursor int
}

func (p *parser) next() (string, bool) {
	if p.cursor >= len(p.tokens) {
		return "", false
	}

	t := p.tokens[p.cursor]
	p.cursor++
	return t, true
}

func (p *parser) peek() (string, bool) {
	if p.cursor >= len(p.tokens) {
		return "", false
	}

	return p.tokens[p.cursor], true
}

// nextKeywordIs consumes the next token and compares it to the given
// keyword case-insensitively. End-of-input counts as a mismatch.
func (p *parser) nextKeywordIs(kw string) bool {
	t, ok := p.next()
	return ok && strings.EqualFold(t, kw)
}

// Parse tokenizes one statement and produces its typed representation.
// The leading token selects the grammar; keywords match
// case-insensitively, identifiers and values are taken verbatim. The
// first syntax error aborts parsing.
func Parse(source string) (*Statement, error) {
	p := &parser{tokens: Tokenize(source)}

	command, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("Empty query")
	}

	switch strings.ToUpper(command) {
	case "CREATE":
		return p.parseCreateTable()
	case "INSERT":
		return p.parseInsert()
	case "SELECT":
		return p.parseSelect()
	default:
		return nil, fmt.Errorf("Unknown command: %s", strings.ToUpper(command))
	}
}

// CREATE TABLE name ( colname TYPE [PRIMARY] [UNIQUE] [, ...] )
func (p *parser) parseCreateTable() (*Statement, error) {
	if !p.nextKeywordIs("TABLE") {
		return nil, fmt.Errorf("Expected TABLE after CREATE")
	}

	name, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("Expected table name")
	}

	if t, ok := p.next(); !ok || t != "(" {
		return nil, fmt.Errorf("Expected '('")
	}

	var cols []ColumnDefinition
	for {
		t, ok := p.next()
		if !ok || t == ")" {
			break
		}
		if t == "," {
			continue
		}

		dataType, ok := p.next()
		if !ok {
			return nil, fmt.Errorf("Expected column type")
		}

		col := ColumnDefinition{Name: t, DataType: strings.ToUpper(dataType)}

	modifiers:
		for {
			nxt, ok := p.peek()
			if !ok {
				break
			}

			switch strings.ToUpper(nxt) {
			case "PRIMARY":
				col.IsPrimary = true
				p.next()
			case "UNIQUE":
				col.IsUnique = true
				p.next()
			case ",", ")":
				break modifiers
			default:
				// Unknown column modifiers are tolerated and skipped.
				p.next()
			}
		}

		cols = append(cols, col)
	}

	return &Statement{
		Kind:                 CreateTableKind,
		CreateTableStatement: &CreateTableStatement{Name: name, Cols: cols},
	}, nil
}

// INSERT INTO name VALUES ( value [, ...] )
func (p *parser) parseInsert() (*Statement, error) {
	if !p.nextKeywordIs("INTO") {
		return nil, fmt.Errorf("Expected INTO after INSERT")
	}

	name, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("Expected table name")
	}

	if !p.nextKeywordIs("VALUES") {
		return nil, fmt.Errorf("Expected VALUES after table name")
	}

	if t, ok := p.next(); !ok || t != "(" {
		return nil, fmt.Errorf("Expected '('")
	}

	var values []Value
	for {
		t, ok := p.next()
		if !ok || t == ")" {
			break
		}
		if t == "," {
			continue
		}

		values = append(values, parseValue(t))
	}

	return &Statement{
		Kind:            InsertKind,
		InsertStatement: &InsertStatement{Table: name, Values: values},
	}, nil
}

// parseValue reads a token as a 32-bit integer if it lexes as one and
// as text otherwise, stripping a single pair of surrounding single
// quotes. There is no NULL literal in the grammar.
func parseValue(t string) Value {
	if n, err := strconv.ParseInt(t, 10, 32); err == nil {
		return NewInt(int32(n))
	}

	if len(t) >= 2 && t[0] == '\'' && t[len(t)-1] == '\'' {
		t = t[1 : len(t)-1]
	}
	return NewText(t)
}

// SELECT col [, ...] | * FROM table [JOIN other ON left_col = right_col]
//
// The join clause is parsed permissively: any token remaining after
// the table name triggers it, and the tokens at the JOIN, ON, and =
// positions are consumed without being verified.
func (p *parser) parseSelect() (*Statement, error) {
	var columns []string
	for {
		t, ok := p.next()
		if !ok || strings.EqualFold(t, "FROM") {
			break
		}
		if t != "," {
			columns = append(columns, t)
		}
	}

	name, ok := p.next()
	if !ok {
		return nil, fmt.Errorf("Expected table name")
	}

	var join *JoinClause
	if _, ok := p.next(); ok {
		joinTable, ok := p.next()
		if !ok {
			return nil, fmt.Errorf("Expected join table")
		}
		p.next() // ON
		left, ok := p.next()
		if !ok {
			return nil, fmt.Errorf("Expected left column")
		}
		p.next() // =
		right, ok := p.next()
		if !ok {
			return nil, fmt.Errorf("Expected right column")
		}

		join = &JoinClause{Table: joinTable, LeftColumn: left, RightColumn: right}
	}

	return &Statement{
		Kind:            SelectKind,
		SelectStatement: &SelectStatement{Table: name, Columns: columns, Join: join},
	}, nil
}
