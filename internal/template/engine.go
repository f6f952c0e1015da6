package template

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed data/*.tmpl
var files embed.FS

// Engine renders the text templates under data/. Parsed once, safe for concurrent use.
type Engine struct {
	tmpl *template.Template
}

func NewEngine() (Engine, error) {
	tmpl, err := template.ParseFS(files, "data/*.tmpl")
	if err != nil {
		return Engine{}, fmt.Errorf("template.ParseFS: %w", err)
	}

	return Engine{tmpl: tmpl}, nil
}

func (e Engine) Execute(name string, data any) (string, error) {
	if e.tmpl == nil {
		return "", fmt.Errorf("engine is not initialized")
	}

	var output strings.Builder
	if err := e.tmpl.ExecuteTemplate(&output, name, data); err != nil {
		return "", fmt.Errorf("tmpl.ExecuteTemplate[%s]: %w", name, err)
	}

	return strings.TrimSpace(output.String()), nil
}
