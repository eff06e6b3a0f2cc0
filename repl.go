package martindb

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/olekukonko/tablewriter"
)

func renderResult(res *Result) {
	if res.Headers == nil {
		fmt.Println(res.Message)
		return
	}

	if len(res.Rows) == 0 {
		fmt.Println("(no results)")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(res.Headers)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)

	rows := [][]string{}
	for _, row := range res.Rows {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = v.String()
		}
		rows = append(rows, cells)
	}

	table.AppendBulk(rows)
	table.Render()

	if len(rows) == 1 {
		fmt.Println("(1 result)")
	} else {
		fmt.Printf("(%d results)\n", len(rows))
	}
}

func debugTable(b Backend, name string) {
	// psql behavior is to display all if no name is specified.
	if name == "" {
		debugTables(b)
		return
	}

	var tm *TableMetadata
	tables := b.Metadata()
	for i := range tables {
		if tables[i].Name == name {
			tm = &tables[i]
			break
		}
	}

	if tm == nil {
		fmt.Printf("Did not find any relation named \"%s\".\n", name)
		return
	}

	fmt.Printf("Table \"%s\" (%d rows)\n", tm.Name, tm.Rows)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Column", "Type", "Constraints"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)

	rows := [][]string{}
	for _, c := range tm.Columns {
		constraints := []string{}
		if c.IsPrimary {
			constraints = append(constraints, "PRIMARY")
		}
		if c.IsUnique {
			constraints = append(constraints, "UNIQUE")
		}
		rows = append(rows, []string{c.Name, c.DataType, strings.Join(constraints, ", ")})
	}

	table.AppendBulk(rows)
	table.Render()
	fmt.Println("")
}

func debugTables(b Backend) {
	tables := b.Metadata()
	if len(tables) == 0 {
		fmt.Println("Did not find any relations.")
		return
	}

	fmt.Println("List of relations")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Rows"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)

	rows := [][]string{}
	for _, t := range tables {
		rows = append(rows, []string{t.Name, fmt.Sprintf("%d", t.Rows)})
	}

	table.AppendBulk(rows)
	table.Render()

	fmt.Println("")
}

// RunRepl drives the interactive shell. Statements execute against db
// under no lock (the shell is the only writer); every successful
// mutation snapshots the database when a store is configured.
func RunRepl(db *Database, store *Store) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "martindb> ",
		HistoryFile:     "/tmp/martindb.history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()

	fmt.Println("Welcome to martindb.")
repl:
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue repl
		} else if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Println("Error while reading line:", err)
			continue repl
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if trimmed == "quit" || trimmed == "exit" || trimmed == "\\q" {
			break
		}

		if trimmed == "\\dt" {
			debugTables(db)
			continue
		}

		if strings.HasPrefix(trimmed, "\\d") {
			debugTable(db, strings.TrimSpace(trimmed[len("\\d"):]))
			continue
		}

		stmt, err := Parse(trimmed)
		if err != nil {
			fmt.Println("SQL error:", err)
			continue repl
		}

		res, err := db.Execute(stmt)
		if err != nil {
			fmt.Println("Error:", err)
			continue repl
		}

		renderResult(res)

		if store != nil && stmt.Kind != SelectKind {
			if err := store.Save(db); err != nil {
				fmt.Println("Error saving database:", err)
			}
		}
	}
}
