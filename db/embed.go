// Package db embeds the SQL migrations for the game archive so production
// builds do not need the migration files on disk.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
