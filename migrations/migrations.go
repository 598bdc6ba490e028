// Package migrations embeds the schema files applied at startup.
package migrations

import "embed"

// Files holds every .sql migration, applied in lexical order. Each file must
// stay idempotent (IF NOT EXISTS everywhere) because there is no version table.
//
//go:embed *.sql
var Files embed.FS
