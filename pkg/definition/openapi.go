package definition

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-floatform/pkg/model"
	"github.com/goliatone/go-floatform/pkg/validation"
)

// ErrOperationNotFound is returned when no operation matches the requested id.
var ErrOperationNotFound = errors.New("definition: openapi operation not found")

var requestMediaTypes = []string{
	"application/x-www-form-urlencoded",
	"multipart/form-data",
	"application/json",
}

// FromOpenAPI derives a definition from the request body of operationID.
// Only string properties of the top-level object schema become fields, in
// the order they are listed by the schema's required list followed by the
// remaining properties in name order.
func FromOpenAPI(ctx context.Context, data []byte, operationID string) (Definition, error) {
	if err := ctx.Err(); err != nil {
		return Definition{}, err
	}
	operationID = strings.TrimSpace(operationID)
	if operationID == "" {
		return Definition{}, errors.New("definition: openapi operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return Definition{}, fmt.Errorf("definition: load openapi document: %w", err)
	}

	method, path, op := findOperation(doc, operationID)
	if op == nil {
		return Definition{}, fmt.Errorf("%w: %q", ErrOperationNotFound, operationID)
	}

	schema := requestSchema(op.RequestBody)
	if schema == nil {
		return Definition{}, fmt.Errorf("definition: operation %q has no request body schema", operationID)
	}

	def := Definition{
		ID:          operationID,
		Title:       op.Summary,
		Description: op.Description,
		Action:      path,
		Method:      method,
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	for _, name := range propertyOrder(schema) {
		ref := schema.Properties[name]
		if ref == nil || ref.Value == nil || !isString(ref.Value) {
			continue
		}
		def.Fields = append(def.Fields, fieldFromSchema(name, ref.Value, required[name]))
	}

	if len(def.Fields) == 0 {
		return Definition{}, fmt.Errorf("definition: operation %q has no string properties", operationID)
	}
	return def, nil
}

func findOperation(doc *openapi3.T, operationID string) (string, string, *openapi3.Operation) {
	if doc == nil || doc.Paths == nil {
		return "", "", nil
	}
	paths := doc.Paths.Map()
	keys := make([]string, 0, len(paths))
	for path := range paths {
		keys = append(keys, path)
	}
	sort.Strings(keys)

	for _, path := range keys {
		item := paths[path]
		if item == nil {
			continue
		}
		for method, op := range item.Operations() {
			if op != nil && op.OperationID == operationID {
				return strings.ToUpper(method), path, op
			}
		}
	}
	return "", "", nil
}

func requestSchema(body *openapi3.RequestBodyRef) *openapi3.Schema {
	if body == nil || body.Value == nil {
		return nil
	}
	content := body.Value.Content
	for _, mediaType := range requestMediaTypes {
		if mt, ok := content[mediaType]; ok && mt != nil && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func propertyOrder(schema *openapi3.Schema) []string {
	seen := make(map[string]struct{}, len(schema.Properties))
	order := make([]string, 0, len(schema.Properties))
	for _, name := range schema.Required {
		if _, ok := schema.Properties[name]; !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		order = append(order, name)
	}

	rest := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		if _, ok := seen[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

func isString(schema *openapi3.Schema) bool {
	if schema.Type == nil {
		return false
	}
	return schema.Type.Is(openapi3.TypeString)
}

func fieldFromSchema(name string, schema *openapi3.Schema, required bool) Field {
	field := Field{
		Name:     name,
		Label:    schema.Title,
		Help:     schema.Description,
		Required: required,
	}
	if field.Label == "" {
		field.Label = humanize(name)
	}
	if def, ok := schema.Default.(string); ok {
		field.Default = def
	}

	switch schema.Format {
	case "email", "password", "url", "tel", "date", "time":
		field.Type = schema.Format
	case "uri":
		field.Type = "url"
	case "textarea":
		field.Kind = model.FieldKindTextarea
	}

	rules := validation.RuleSpec{Pattern: schema.Pattern}
	if schema.MinLength > 0 {
		rules.MinLength = int(schema.MinLength)
	}
	if schema.MaxLength != nil {
		rules.MaxLength = int(*schema.MaxLength)
	}
	field.Rules = rules
	return field
}

func humanize(name string) string {
	replacer := strings.NewReplacer("_", " ", "-", " ")
	words := strings.Fields(replacer.Replace(name))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
