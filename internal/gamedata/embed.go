// Package gamedata provides the static ability catalog (spells, items,
// classes, enemy kinds) embedded at build time, and registries over it.
package gamedata

import (
	"embed"
	"io/fs"
)

// dataFS embeds all JSON files from this directory at build time.
//
//go:embed *.json
var dataFS embed.FS

// FS returns the embedded filesystem containing the catalog tables.
func FS() fs.FS {
	return dataFS
}
