package floatform

import (
	"context"

	"github.com/goliatone/go-floatform/pkg/definition"
)

// LoadDefinition reads a JSON or YAML definition from path and validates it
// against the built-in custom validators.
func LoadDefinition(path string) (Definition, error) {
	def, err := definition.Load(path)
	if err != nil {
		return Definition{}, err
	}
	if err := def.Validate(nil); err != nil {
		return Definition{}, err
	}
	return def, nil
}

// DefinitionFromOpenAPI derives a definition from the request body of
// operationID in an OpenAPI document.
func DefinitionFromOpenAPI(ctx context.Context, data []byte, operationID string) (Definition, error) {
	return definition.FromOpenAPI(ctx, data, operationID)
}
