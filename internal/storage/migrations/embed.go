package migrations

import "embed"

// FS holds the goose SQL migrations for the products table.
//
//go:embed *.sql
var FS embed.FS
