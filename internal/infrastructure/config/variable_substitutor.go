package config

import (
	"fmt"
	"regexp"
	"strings"
)

// Variable pattern: {{ .vars.key }}
var varPattern = regexp.MustCompile(`\{\{\s*\.vars\.([a-zA-Z0-9_.]+)\s*\}\}`)

// VariableSubstitutor performs variable substitution in invocation documents.
type VariableSubstitutor struct{}

// NewVariableSubstitutor creates a new variable substitutor.
func NewVariableSubstitutor() *VariableSubstitutor {
	return &VariableSubstitutor{}
}

// Substitute replaces {{ .vars.key }} patterns in the document's config with
// values from its vars map. Nested paths like {{ .vars.net.cidr }} work.
// A string that is exactly one reference takes the variable's value with its
// type, so numbers and lists stay numbers and lists.
// Returns an error if a referenced variable is not found.
// Modifies the document in place.
func (s *VariableSubstitutor) Substitute(doc *Document) error {
	return s.substituteInMap(doc.Config, doc.Vars)
}

func (s *VariableSubstitutor) substituteValue(value any, vars map[string]any) (any, error) {
	switch v := value.(type) {
	case string:
		return s.substituteInString(v, vars)
	case map[string]any:
		return v, s.substituteInMap(v, vars)
	case []any:
		for i, elem := range v {
			substituted, err := s.substituteValue(elem, vars)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			v[i] = substituted
		}
		return v, nil
	default:
		// Other types (int, bool, etc.) don't need substitution
		return v, nil
	}
}

// substituteInString replaces patterns with values.
func (s *VariableSubstitutor) substituteInString(str string, vars map[string]any) (any, error) {
	if m := varPattern.FindStringSubmatchIndex(str); m != nil && m[0] == 0 && m[1] == len(str) {
		return lookupVar(vars, str[m[2]:m[3]])
	}

	var lastErr error
	result := varPattern.ReplaceAllStringFunc(str, func(match string) string {
		submatches := varPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			lastErr = fmt.Errorf("invalid variable pattern: %s", match)
			return match
		}

		value, err := lookupVar(vars, submatches[1])
		if err != nil {
			lastErr = err
			return match
		}
		return fmt.Sprintf("%v", value)
	})

	if lastErr != nil {
		return "", lastErr
	}
	return result, nil
}

// substituteInMap recursively substitutes variables in map values.
// Modifies the map in place.
func (s *VariableSubstitutor) substituteInMap(m map[string]any, vars map[string]any) error {
	for key, value := range m {
		substituted, err := s.substituteValue(value, vars)
		if err != nil {
			return fmt.Errorf("key %s: %w", key, err)
		}
		m[key] = substituted
	}
	return nil
}

// lookupVar looks up a variable value by path (e.g., "net.cidr").
func lookupVar(vars map[string]any, path string) (any, error) {
	parts := strings.Split(path, ".")
	current := any(vars)

	for i, part := range parts {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("variable path %s: cannot access %s (not a map)", path, strings.Join(parts[:i+1], "."))
		}

		value, exists := m[part]
		if !exists {
			return nil, fmt.Errorf("variable not found: %s", path)
		}
		current = value
	}

	return current, nil
}
