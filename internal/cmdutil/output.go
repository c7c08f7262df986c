package cmdutil

import (
	"github.com/ChrisDavison/ptt/internal/output"
	"github.com/ChrisDavison/ptt/internal/templates"
)

// TemplateRows converts lister entries into rows for output.WriteTemplates.
func TemplateRows(entries []templates.Entry) []output.TemplateRow {
	rows := make([]output.TemplateRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, output.TemplateRow{
			Display: e.Display,
			Name:    e.Name,
			Dated:   e.Dated,
			Path:    e.Path,
		})
	}
	return rows
}
