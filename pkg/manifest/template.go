// pkg/manifest/template.go
package manifest

import (
	"sort"
	"strings"
)

// Template is manifest text with named literal placeholders
type Template struct {
	Name         string   // Used in error messages
	Body         string   // Template text
	Placeholders []string // Tokens that must be supplied
}

// Render replaces every placeholder with its value and returns the result.
//
// Substitution is a plain literal replace; no escaping is applied. It fails
// when a declared placeholder has no value or is absent from the body, and
// when a value contains any placeholder token.
func Render(tmpl Template, values map[string]string) (string, error) {
	for _, ph := range tmpl.Placeholders {
		v, ok := values[ph]
		if !ok || v == "" {
			return "", &TemplateError{Manifest: tmpl.Name, Placeholder: ph, Reason: "no value supplied"}
		}
		if !strings.Contains(tmpl.Body, ph) {
			return "", &TemplateError{Manifest: tmpl.Name, Placeholder: ph, Reason: "not present in template"}
		}
	}

	tokens := make([]string, 0, len(values))
	for k := range values {
		tokens = append(tokens, k)
	}
	sort.Strings(tokens)

	for _, k := range tokens {
		for _, other := range tokens {
			if strings.Contains(values[k], other) {
				return "", &TemplateError{Manifest: tmpl.Name, Placeholder: k, Reason: "value contains placeholder " + other}
			}
		}
	}

	out := tmpl.Body
	for _, k := range tokens {
		out = strings.ReplaceAll(out, k, values[k])
	}
	return out, nil
}
