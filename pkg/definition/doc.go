// Package definition loads declarative form definitions (fields, initial
// values and rules) from JSON or YAML documents, or derives them from the
// request body schema of an OpenAPI operation, and turns them into the
// presentation model, rule set and form store the rest of the module uses.
package definition
