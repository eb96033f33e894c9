// Package templates provides the exercise template store and placeholder rendering.
package templates

import (
	"embed"
	"io/fs"
)

//go:embed all:assets
var assetsFS embed.FS

//go:embed languages.yaml
var defaultManifest []byte

// EmbeddedFS returns the built-in template tree, one directory per language.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return sub
}
