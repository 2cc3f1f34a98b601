// Package migrations esquema SQL embebido, aplicado con goose al arrancar.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
