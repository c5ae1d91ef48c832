// Package migrations embeds the schema and seed migrations so they can be
// applied from the binary itself and from the integration suite.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
