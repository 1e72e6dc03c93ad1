package export

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// writeSQLite creates a database at path with a search_results table (one
// column per result column) and a one-row summary table.
func writeSQLite(report *Report, path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if err := populate(db, report); err != nil {
		db.Close()
		return err
	}
	return db.Close()
}

func populate(db *sql.DB, report *Report) error {
	columns := sqliteColumns(report.Columns)

	defs := make([]string, len(columns))
	for i, col := range columns {
		typ := "TEXT"
		if report.Columns[i] == ColLineNumber {
			typ = "INTEGER"
		}
		defs[i] = quoteIdent(col) + " " + typ
	}

	schema := []string{
		"CREATE TABLE search_results (" + strings.Join(defs, ", ") + ")",
		`CREATE TABLE summary (
			run_id TEXT NOT NULL,
			search_terms TEXT NOT NULL,
			search_location TEXT NOT NULL,
			total_results INTEGER NOT NULL,
			unique_files INTEGER NOT NULL
		)`,
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	quoted := make([]string, len(columns))
	for i, col := range columns {
		quoted[i] = quoteIdent(col)
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	insert, err := tx.Prepare("INSERT INTO search_results (" + strings.Join(quoted, ", ") + ") VALUES (" + placeholders + ")")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer insert.Close()

	for _, row := range report.Rows {
		if _, err := insert.Exec(row...); err != nil {
			return fmt.Errorf("insert result: %w", err)
		}
	}

	summary := report.SummaryRow()
	if _, err := tx.Exec(
		"INSERT INTO summary (run_id, search_terms, search_location, total_results, unique_files) VALUES (?, ?, ?, ?, ?)",
		report.RunID, summary[0], summary[1], summary[2], summary[3],
	); err != nil {
		return fmt.Errorf("insert summary: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// sqliteColumns makes column names unique ignoring case, since SQLite
// identifiers are case-insensitive ("source_Name" and "source_name" clash).
func sqliteColumns(columns []string) []string {
	out := make([]string, len(columns))
	used := make(map[string]bool)
	for i, col := range columns {
		name := col
		for n := 2; used[strings.ToLower(name)]; n++ {
			name = col + "_" + strconv.Itoa(n)
		}
		used[strings.ToLower(name)] = true
		out[i] = name
	}
	return out
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
