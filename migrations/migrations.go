// Package migrations embeds the Postgres schema applied by `roommatch migrate`.
package migrations

import "embed"

// FS holds the numbered *.sql files, applied in lexical order.
//
//go:embed *.sql
var FS embed.FS
