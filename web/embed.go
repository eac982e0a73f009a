// Package web embeds the HTML templates and static assets served by the application.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}

// Static returns the embedded static asset tree rooted at its contents.
func Static() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
