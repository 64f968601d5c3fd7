// Package web embeds the static search page served at the site root.
package web

import (
	"embed"
	"io/fs"
)

//go:embed index.html index.js index.css
var files embed.FS

// Routes maps request paths to embedded file names
var Routes = map[string]string{
	"/":           "index.html",
	"/index.html": "index.html",
	"/index.js":   "index.js",
	"/index.css":  "index.css",
}

// FS returns the embedded files
func FS() fs.FS {
	return files
}
