package database

import "regexp"

// Dialect captures the SQL differences between the supported engines.
// Queries are written with PostgreSQL "$n" placeholders.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

var numberedPlaceholder = regexp.MustCompile(`\$\d+`)

// Rebind rewrites "$n" placeholders for the dialect. SQLite gets positional
// "?" markers, so every placeholder must appear once and in order.
func (d Dialect) Rebind(query string) string {
	if d == DialectSQLite {
		return numberedPlaceholder.ReplaceAllString(query, "?")
	}
	return query
}
