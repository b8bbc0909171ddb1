package db

import "embed"

// MigrationsFS holds the SQL migrations applied at startup and by the
// integration test harness.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
