package snippet

import "github.com/syntax-frame/syntax-frame/internal/jsonvalue"

// Required snippet fields, in the order they are checked.
var requiredFields = []string{"prefix", "scope", "body"}

// ValidateDefinition checks one snippet definition from fileName. Checks run
// in a fixed order and the first failure is returned. A required field only
// has to be present: null, "" and 0 are accepted. The body must be a string
// or an array, and array elements are not inspected.
func ValidateDefinition(fileName, name string, def *jsonvalue.Value) error {
	if !def.IsObject() {
		return snippetError(fileName, name, `Snippet "%s" in %s is not an object`, name, fileName)
	}

	for _, field := range requiredFields {
		if !def.Has(field) {
			return snippetError(fileName, name, `Missing "%s" in snippet "%s" (%s)`, field, name, fileName)
		}
	}

	body, _ := def.Get("body")
	if !body.IsString() && !body.IsArray() {
		return snippetError(fileName, name, `Invalid "body" type in snippet "%s" (%s)`, name, fileName)
	}

	return nil
}
