// Package migrations embeds the SQL schema migrations applied by
// golang-migrate. The statements are portable between PostgreSQL and SQLite.
package migrations

import "embed"

// FS holds the numbered up/down migration files.
//
//go:embed *.sql
var FS embed.FS
