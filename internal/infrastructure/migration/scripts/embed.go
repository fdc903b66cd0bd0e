// Package scripts holds the versioned SQL migrations, one directory per
// database dialect.
package scripts

import "embed"

//go:embed mysql/*.sql postgres/*.sql sqlite/*.sql
var FS embed.FS
