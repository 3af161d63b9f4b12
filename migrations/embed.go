// Package migrations embeds the forward-only schema migrations applied at
// startup, ordered by their numeric prefix.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
