// Package migrations embeds the credential store's schema migrations.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
