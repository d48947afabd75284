// Package render holds the renderer contract, the renderer registry and the
// request-scoped options renderers consume.
package render
