// Package testsupport holds helpers shared by the landing repository test
// suites.
package testsupport

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// NewSQLiteMemoryDB opens the shared in-memory SQLite store used by the
// bun-backed tenant and testimonial repository tests. Callers must cap the
// pool at one connection so every query observes the same memory database.
func NewSQLiteMemoryDB() (*sql.DB, error) {
	return sql.Open("sqlite3", "file::memory:?cache=shared")
}
