// Package migrations bundles the SQLite schema with the binary.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
