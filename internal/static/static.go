// Package static embeds the viewer shell and data fixtures served from the asset origin.
package static

import (
	"bytes"
	"embed"
	"io/fs"
	"net/http"
	"time"
)

//go:embed assets
var assets embed.FS

const indexFile = "index.html"

// FS returns the asset tree rooted at the document root.
func FS() fs.FS {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

// Handler serves the embedded assets. /index.html is answered directly rather than
// redirected to / so both manifest entries cache as 200s.
func Handler() http.Handler {
	root := FS()
	files := http.FileServer(http.FS(root))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/"+indexFile {
			files.ServeHTTP(w, r)
			return
		}
		data, err := fs.ReadFile(root, indexFile)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, indexFile, time.Time{}, bytes.NewReader(data))
	})
}
