// Package templates holds the embedded server-rendered pages.
package templates

import (
	"embed"
	"html/template"
	"time"
)

//go:embed *.html
var files embed.FS

var funcMap = template.FuncMap{
	"formatTime": formatTime,
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("January 2, 2006")
}

// Load parses the embedded pages into a single template set.
func Load() (*template.Template, error) {
	return template.New("").Funcs(funcMap).ParseFS(files, "*.html")
}

// MustLoad parses the embedded pages and panics on failure. The files are
// compiled in, so a parse error is a programming error.
func MustLoad() *template.Template {
	tmpl, err := Load()
	if err != nil {
		panic(err)
	}
	return tmpl
}
