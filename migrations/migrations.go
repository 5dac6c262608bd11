// Package migrations embeds the schema of each service.
package migrations

import "embed"

//go:embed order/*.sql user/*.sql
var FS embed.FS
