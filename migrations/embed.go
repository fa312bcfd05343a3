// Package migrations embeds the schema migration files for the Rihla
// database so server bootstrap and tests can apply them through goose's
// programmatic API.
package migrations

import "embed"

// FS holds every *.sql migration embedded at compile time, so a deployed
// binary never depends on a migrations directory being present on disk.
//
//go:embed *.sql
var FS embed.FS
