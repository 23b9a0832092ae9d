// Package schema publishes a JSON Schema for snippet source files so editors
// can validate snippets/*.json while they are being written.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/syntax-frame/syntax-frame/api"
)

const (
	title       = "Syntax Frame snippet source"
	description = "One language's snippets, keyed by snippet name. Each snippet requires prefix, scope and body."
)

// Reflect builds the schema of api.SourceFile. Definitions are inlined and
// unknown snippet fields are allowed, matching what the generator accepts.
func Reflect() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	s := r.Reflect(api.SourceFile{})
	s.Title = title
	s.Description = description
	return s
}

// Render returns the schema as indented JSON followed by a newline.
func Render() ([]byte, error) {
	data, err := json.MarshalIndent(Reflect(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
