package api

import "github.com/invopop/jsonschema"

// SourceFile is the content of one per-language snippet file: snippet names
// mapped to their definitions.
type SourceFile map[string]Definition

// Definition is a single snippet as written in a source file and as copied
// into the merged output. Fields other than these pass through untouched.
type Definition struct {
	// Prefix is the trigger text. VS Code accepts a string or an array of strings.
	Prefix any `json:"prefix" jsonschema_description:"Trigger word or words that expand the snippet."`
	// Scope restricts the snippet to a comma-separated list of language ids.
	Scope any `json:"scope" jsonschema_description:"Comma-separated language identifiers the snippet applies to."`
	// Body is the template text.
	Body Body `json:"body" jsonschema_description:"Snippet template, as one string or as an array of lines."`
	// Description is shown by the editor next to the completion.
	Description string `json:"description,omitempty" jsonschema_description:"Text shown next to the completion item."`
	// IsFileTemplate offers the snippet when creating a new file.
	IsFileTemplate bool `json:"isFileTemplate,omitempty" jsonschema_description:"Offer the snippet as a new-file template."`
}

// Body is a snippet body: one string, or an array of lines joined with newlines.
type Body []string

// JSONSchema implements jsonschema.Reflector's custom schema hook.
func (Body) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "array", Items: &jsonschema.Schema{Type: "string"}},
		},
	}
}
