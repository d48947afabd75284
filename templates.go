package floatform

import (
	"io/fs"

	"github.com/goliatone/go-floatform/pkg/renderers/floating"
)

// EmbeddedTemplates exposes the floating renderer templates so callers can
// copy or extend them. A directory holding modified copies can be passed to
// floating.WithTemplatesDir.
func EmbeddedTemplates() fs.FS {
	return floating.TemplatesFS()
}
