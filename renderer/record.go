// Package renderer turns validation outcomes into markdown, suitable for
// terminal display or for quoting back to a user.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/finsage/intake"
)

//go:embed templates/*.md
var templates embed.FS

// listSection is the view of one multi-item field for the templates.
type listSection struct {
	Title string
	Items intake.ItemList
}

// fieldError is the view of one failing field for the templates.
type fieldError struct {
	Field   string
	Message string
}

// RecordMarkdown renders a validated record to a markdown summary.
func RecordMarkdown(rec *intake.Record) string {
	partials := map[string]string{
		"record_summary": "templates/record_summary.md",
		"record_lists":   "templates/record_lists.md",
		"record_flags":   "templates/record_flags.md",
	}
	data := struct {
		*intake.Record
		Sections []listSection
	}{rec, []listSection{
		{"Commitments", rec.Commitments},
		{"EMIs", rec.EMIs},
		{"Investment contributions", rec.Investments},
	}}
	return renderTemplate("record", "templates/record.md", partials, data)
}

// FieldErrorsMarkdown renders a field error map to a markdown table, one
// row per failing field, in stable field order.
func FieldErrorsMarkdown(errs intake.FieldErrors) string {
	views := make([]fieldError, 0, len(errs))
	for _, f := range errs.Fields() {
		views = append(views, fieldError{Field: f, Message: errs[f]})
	}
	return renderTemplate("fieldErrors", "templates/field_errors.md", nil, views)
}

// renderTemplate is a generic utility to render a main template that
// depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
