package snippet

// KeySeparator joins a snippet name and its language label into a global key.
// Existing consumers of the merged file match on this exact string.
const KeySeparator = " — "

// Labels maps every supported snippet source file to the language label used
// in global keys. A source file missing from this table is rejected rather
// than skipped.
var Labels = map[string]string{
	"javascript.json": "JavaScript",
	"python.json":     "Python",
	"html.json":       "HTML",
	"css.json":        "CSS",
	"java.json":       "Java",
}

// GlobalKey returns the namespaced key of a snippet in the merged output.
func GlobalKey(snippetName, label string) string {
	return snippetName + KeySeparator + label
}
