// Package operation defines the static, self-describing metadata of a remote
// operation: its name, its input field schema and the shape of its output.
package operation

import (
	"fmt"
	"regexp"
	"strings"
)

// Reserved and well-known configuration keys.
const (
	// RegionKey is the adapter-level key every config map must carry.
	// It is never forwarded to the remote call.
	RegionKey = "region"
	// DryRunKey asks the remote service for a permission check only.
	DryRunKey = "DryRun"
	// MaxResultsKey is the page-size hint of list-shaped operations.
	MaxResultsKey = "MaxResults"
	// NextTokenKey carries the continuation token of list-shaped operations.
	NextTokenKey = "NextToken"
)

var namePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]+$`)

// FieldSpec declares one input field of an operation.
type FieldSpec struct {
	Key         string
	Description string
	Type        FieldType
	// Items is the element type of array fields. Empty means any.
	Items    FieldType
	Required bool
}

// Descriptor binds a named remote operation to its input and output schema.
// Descriptors are created once at registry build time and treated as
// read-only afterwards.
type Descriptor struct {
	Name        string
	Description string
	InputFields []FieldSpec
	OutputShape SchemaNode
	// SupportsDryRun marks operations accepting a boolean DryRun field.
	SupportsDryRun bool
	// Paginated marks list-shaped operations (MaxResults/NextToken in,
	// NextToken out).
	Paginated bool
}

// Field returns the spec for key, if declared.
func (d Descriptor) Field(key string) (FieldSpec, bool) {
	for _, f := range d.InputFields {
		if f.Key == key {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// RequiredFields returns the required input fields in declaration order.
func (d Descriptor) RequiredFields() []FieldSpec {
	var out []FieldSpec
	for _, f := range d.InputFields {
		if f.Required {
			out = append(out, f)
		}
	}
	return out
}

// Validate checks the descriptor's own integrity. It does not look at any
// config map.
func (d Descriptor) Validate() error {
	var errs []string

	if !namePattern.MatchString(d.Name) {
		errs = append(errs, fmt.Sprintf("operation name %q must be PascalCase", d.Name))
	}

	seen := make(map[string]bool, len(d.InputFields))
	for _, f := range d.InputFields {
		switch {
		case f.Key == "":
			errs = append(errs, "field key is required")
		case f.Key == RegionKey:
			errs = append(errs, fmt.Sprintf("field %q is reserved", RegionKey))
		case seen[f.Key]:
			errs = append(errs, fmt.Sprintf("duplicate field %q", f.Key))
		}
		seen[f.Key] = true

		if err := f.Type.Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("field %q: %v", f.Key, err))
		}
		if f.Items != "" {
			if f.Type != TypeArray {
				errs = append(errs, fmt.Sprintf("field %q: items set on non-array field", f.Key))
			} else if err := f.Items.Validate(); err != nil {
				errs = append(errs, fmt.Sprintf("field %q items: %v", f.Key, err))
			}
		}
	}

	if d.SupportsDryRun {
		if f, ok := d.Field(DryRunKey); !ok || f.Type != TypeBoolean {
			errs = append(errs, "dry-run operations must declare a boolean DryRun field")
		}
	}

	if d.Paginated {
		if f, ok := d.Field(MaxResultsKey); !ok || f.Type != TypeNumber {
			errs = append(errs, "paginated operations must declare a number MaxResults field")
		}
		if f, ok := d.Field(NextTokenKey); !ok || f.Type != TypeString {
			errs = append(errs, "paginated operations must declare a string NextToken field")
		}
		if n, ok := d.OutputShape.Properties[NextTokenKey]; !ok || n.Type != TypeString {
			errs = append(errs, "paginated operations must declare a string NextToken output")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("descriptor %s: %s", d.Name, strings.Join(errs, "; "))
	}
	return nil
}
