// Package migrations embebe los SQL de goose en el binario.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
