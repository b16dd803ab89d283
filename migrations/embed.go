package migrations

import "embed"

// FS holds the embedded schema migrations.
//
//go:embed *.sql
var FS embed.FS
