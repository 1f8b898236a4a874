package dispatch

import (
	"regexp"

	"github.com/wovenflow/runtime/internal/schema"
)

var templatePlaceholder = regexp.MustCompile(`\{\{\s*([a-zA-Z0-9_.-]+)\s*\}\}`)

// asRecord unwraps an executor's gathered input into a plain record for
// field lookups, regardless of whether the Runner tagged it as a fan-in
// result (schema.FanInInput) or it arrived as an ordinary map from a
// single upstream.
func asRecord(input interface{}) map[string]interface{} {
	switch v := input.(type) {
	case map[string]interface{}:
		return v
	case schema.FanInInput:
		return map[string]interface{}(v)
	default:
		return nil
	}
}

// renderTemplate substitutes {{input}} with the stringified input value and
// {{name}} with input-record fields named in variables. Missing variables
// render as the empty string.
func renderTemplate(template string, input interface{}, variables []string) string {
	allowed := make(map[string]bool, len(variables))
	for _, v := range variables {
		allowed[v] = true
	}

	record := asRecord(input)

	return templatePlaceholder.ReplaceAllStringFunc(template, func(match string) string {
		name := templatePlaceholder.FindStringSubmatch(match)[1]
		if name == "input" {
			s, err := stringifyForPrompt(input)
			if err != nil {
				return ""
			}
			return s
		}
		if !allowed[name] {
			return match
		}
		if record == nil {
			return ""
		}
		val, ok := record[name]
		if !ok || val == nil {
			return ""
		}
		s, err := stringifyForPrompt(val)
		if err != nil {
			return ""
		}
		return s
	})
}
