// Package templates resolves named plaintext templates in a template
// directory, lists them, and instantiates them into output files.
package templates

const (
	// Ext is the file extension of templates and of generated files.
	Ext = ".txt"

	// DatedPrefix marks a template whose output name starts with the date.
	DatedPrefix = "DATE-"

	// DefaultDateFormat is the strftime pattern used when none is given.
	DefaultDateFormat = "%Y-%m-%d"
)

// Template is a resolved template: its name as given, the file backing it,
// and whether it is dated. It is immutable once resolved.
type Template struct {
	// Name is the template identifier as given by the caller.
	Name string

	// Path is the absolute path of the backing file.
	Path string

	// Dated is true when the DATE- variant was found.
	Dated bool
}

// Entry is one template in a directory listing.
type Entry struct {
	// Display is "(DATE) <name>" for dated templates, "<name>" otherwise.
	Display string

	// Name is the template identifier, usable with Resolve.
	Name string

	Dated bool
	Path  string
}
