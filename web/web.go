// Package web holds the browser front end served at the site root.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var static embed.FS

func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err) // static is embedded above
	}
	return sub
}

func Handler() http.Handler {
	return http.FileServerFS(Static())
}
