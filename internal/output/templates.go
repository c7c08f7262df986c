package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// TemplateRow is one template in list output. It mirrors the lister's entry
// so this package does not import internal/templates.
type TemplateRow struct {
	Display string `json:"display" yaml:"display"`
	Name    string `json:"name" yaml:"name"`
	Dated   bool   `json:"dated" yaml:"dated"`
	Path    string `json:"path" yaml:"path"`
}

// WriteTemplates renders rows to w in the given format. Rows are written in
// the order given.
func WriteTemplates(w io.Writer, rows []TemplateRow, format Format, styled bool) error {
	switch format {
	case FormatText, "":
		return writeTemplateText(w, rows, styled)
	case FormatTable:
		_, err := fmt.Fprintln(w, RenderTemplateTable(rows))
		return err
	case FormatJSON:
		if rows == nil {
			rows = []TemplateRow{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case FormatYAML:
		if rows == nil {
			rows = []TemplateRow{}
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q (valid: %s)", format, strings.Join(ValidFormats(), ", "))
	}
}

func writeTemplateText(w io.Writer, rows []TemplateRow, styled bool) error {
	heading := "Templates"
	if styled {
		heading = StyleHeading.Render(heading)
	}
	if _, err := fmt.Fprintf(w, "%s\n\n", heading); err != nil {
		return err
	}
	for _, r := range rows {
		display := r.Display
		if styled && r.Dated {
			display = StyleDated.Render("(DATE)") + " " + StyleNoun.Render(r.Name)
		} else if styled {
			display = StyleNoun.Render(display)
		}
		if _, err := fmt.Fprintf(w, "- %s\n", display); err != nil {
			return err
		}
	}
	return nil
}

// RenderTemplateTable renders rows as a NAME/DATED/PATH table.
func RenderTemplateTable(rows []TemplateRow) string {
	t := NewTable("NAME", "DATED", "PATH")
	for _, r := range rows {
		dated := "no"
		if r.Dated {
			dated = "yes"
		}
		t.Row(r.Name, dated, r.Path)
	}
	return t.String()
}
