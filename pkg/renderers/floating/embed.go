package floating

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

// Template names resolved through the engine. Theme partials with the same
// keys point them at other files.
const (
	FormTemplate  = "form.tmpl"
	FieldTemplate = "field.tmpl"
)

// TemplatesFS exposes the embedded templates rooted at their directory.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}
