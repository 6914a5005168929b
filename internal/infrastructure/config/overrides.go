package config

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// ParseSet splits a Key=Value override. The value is read as a YAML scalar
// or flow collection, so "AmazonSideAsn=64512" sets a number,
// "DryRun=true" a boolean and "Ids=[a, b]" a list.
func ParseSet(assignment string) (string, any, error) {
	key, raw, ok := strings.Cut(assignment, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", nil, fmt.Errorf("invalid override %q: expected Key=Value", assignment)
	}

	if strings.TrimSpace(raw) == "" {
		return key, "", nil
	}

	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return "", nil, fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return key, value, nil
}

// ApplySets applies overrides to config, creating nested objects for dotted
// keys ("Options.DnsSupport=enable"). Later overrides win.
func ApplySets(config map[string]any, assignments []string) error {
	for _, assignment := range assignments {
		key, value, err := ParseSet(assignment)
		if err != nil {
			return err
		}
		if err := setPath(config, strings.Split(key, "."), value); err != nil {
			return fmt.Errorf("override %s: %w", key, err)
		}
	}
	return nil
}

func setPath(m map[string]any, parts []string, value any) error {
	if len(parts) == 1 {
		m[parts[0]] = value
		return nil
	}

	next, exists := m[parts[0]]
	if !exists || next == nil {
		next = map[string]any{}
		m[parts[0]] = next
	}
	nested, ok := next.(map[string]any)
	if !ok {
		return fmt.Errorf("%s is not an object", parts[0])
	}
	return setPath(nested, parts[1:], value)
}
