// Package levels ships the built-in level catalog.
package levels

import (
	"embed"
	"io/fs"
)

//go:embed easy/*.yaml medium/*.yaml hard/*.yaml expert/*.yaml *.yaml
var catalog embed.FS

// FS returns the built-in levels laid out in difficulty folders.
func FS() fs.FS { return catalog }
