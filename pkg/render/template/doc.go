// Package template defines the template engine seam used by the HTML
// renderers. The pongo subpackage provides the pongo2-backed engine.
package template
