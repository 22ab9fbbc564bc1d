package session

import (
	"embed"
	"io/fs"
)

var Migrations fs.FS = migrationFiles

//go:embed *.sql
var migrationFiles embed.FS
