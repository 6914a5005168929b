// Package catalog holds the EC2 operation registry: one descriptor and one
// command per supported remote operation.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	apperrors "github.com/reglet-dev/ec2blocks/internal/application/errors"
	"github.com/reglet-dev/ec2blocks/internal/application/ports"
	"github.com/reglet-dev/ec2blocks/internal/domain/operation"
)

// Entry pairs a descriptor with the command that performs it.
type Entry struct {
	Command    ports.OperationCommand
	Descriptor operation.Descriptor
}

// Registry is the read-only catalog built once at startup.
type Registry struct {
	descriptors map[string]operation.Descriptor
	commands    map[string]ports.OperationCommand
	schemas     map[string]*jsonschema.Schema
	names       []string
}

var _ ports.OperationCatalog = (*Registry)(nil)

// NewRegistry validates entries and builds a registry. It fails on duplicate
// names, missing commands, invalid descriptors and input schemas that do not
// compile.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		descriptors: make(map[string]operation.Descriptor, len(entries)),
		commands:    make(map[string]ports.OperationCommand, len(entries)),
		schemas:     make(map[string]*jsonschema.Schema, len(entries)),
		names:       make([]string, 0, len(entries)),
	}

	var problems []string
	for _, e := range entries {
		name := e.Descriptor.Name
		if _, dup := r.descriptors[name]; dup {
			problems = append(problems, fmt.Sprintf("duplicate operation %q", name))
			continue
		}
		if e.Command == nil {
			problems = append(problems, fmt.Sprintf("operation %q has no command", name))
			continue
		}
		if err := e.Descriptor.Validate(); err != nil {
			problems = append(problems, err.Error())
			continue
		}
		schema, err := compileInputSchema(e.Descriptor)
		if err != nil {
			problems = append(problems, fmt.Sprintf("operation %q: %v", name, err))
			continue
		}

		r.descriptors[name] = e.Descriptor
		r.commands[name] = e.Command
		r.schemas[name] = schema
		r.names = append(r.names, name)
	}

	if len(problems) > 0 {
		return nil, apperrors.NewValidationError("catalog", "invalid operation catalog", problems...)
	}

	slices.Sort(r.names)
	return r, nil
}

// Default returns the built-in EC2 networking catalog. It is built on first
// use and shared afterwards.
var Default = sync.OnceValues(func() (*Registry, error) {
	return NewRegistry(builtin()...)
})

func builtin() []Entry {
	var entries []Entry
	entries = append(entries, transitGatewayEntries()...)
	entries = append(entries, transitGatewayRoutingEntries()...)
	entries = append(entries, routeTableEntries()...)
	entries = append(entries, natGatewayEntries()...)
	entries = append(entries, elasticIPEntries()...)
	return entries
}

// Lookup implements ports.OperationCatalog.
func (r *Registry) Lookup(name string) (operation.Descriptor, error) {
	d, ok := r.descriptors[name]
	if !ok {
		return operation.Descriptor{}, apperrors.NewUnknownOperationError(name)
	}
	return d, nil
}

// Command implements ports.OperationCatalog.
func (r *Registry) Command(name string) (ports.OperationCommand, bool) {
	c, ok := r.commands[name]
	return c, ok
}

// Descriptors implements ports.OperationCatalog.
func (r *Registry) Descriptors() []operation.Descriptor {
	out := make([]operation.Descriptor, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, r.descriptors[n])
	}
	return out
}

// Names returns every operation name in sorted order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// ValidateConfig checks a full config map (region included) against the
// operation's compiled input schema. This is stricter than binding: nested
// arrays are checked item by item.
func (r *Registry) ValidateConfig(name string, config map[string]any) error {
	schema, ok := r.schemas[name]
	if !ok {
		return apperrors.NewUnknownOperationError(name)
	}

	doc, err := toJSONValue(config)
	if err != nil {
		return fmt.Errorf("failed to normalize config: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			return formatSchemaValidationError(name, ve)
		}
		return fmt.Errorf("schema validation error: %w", err)
	}
	return nil
}

func compileInputSchema(d operation.Descriptor) (*jsonschema.Schema, error) {
	schemaBytes, err := json.Marshal(d.InputSchema())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal input schema: %w", err)
	}

	url := "mem://ec2blocks/" + d.Name + ".json"
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(url, bytes.NewReader(schemaBytes)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	schema, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("failed to compile input schema: %w", err)
	}
	return schema, nil
}

// toJSONValue converts YAML- or Go-typed values into the generic JSON shape
// the schema validator expects.
func toJSONValue(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var out any
	if err := dec.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func formatSchemaValidationError(name string, err *jsonschema.ValidationError) error {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if e.Message != "" {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(messages) == 0 {
		return apperrors.NewValidationError(name, "config does not match input schema")
	}
	return apperrors.NewValidationError(name,
		"config does not match input schema:\n    - "+strings.Join(messages, "\n    - "),
		messages...)
}
