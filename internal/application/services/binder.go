// Package services contains application use cases.
package services

import (
	"encoding/json"
	"log/slog"
	"reflect"

	apperrors "github.com/reglet-dev/ec2blocks/internal/application/errors"
	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
	"github.com/reglet-dev/ec2blocks/internal/domain/operation"
)

// Binder validates a raw configuration map against a descriptor and splits
// the adapter-level region from the operation request.
type Binder struct {
	logger *slog.Logger
}

// NewBinder creates a new config binder.
func NewBinder(logger *slog.Logger) *Binder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Binder{logger: logger}
}

// Bind checks requiredness and shallow types, then returns the region and a
// region-stripped copy of raw. Nested values are passed through uninterpreted.
// A nil value counts as absent. raw is never modified.
func (b *Binder) Bind(desc operation.Descriptor, raw map[string]any) (execution.Binding, error) {
	regionValue, ok := present(raw, operation.RegionKey)
	if !ok {
		return execution.Binding{}, apperrors.NewMissingFieldError(desc.Name, operation.RegionKey)
	}
	region, ok := regionValue.(string)
	if !ok {
		return execution.Binding{}, apperrors.NewTypeMismatchError(
			desc.Name, operation.RegionKey, string(operation.TypeString), typeName(regionValue))
	}

	// Declaration order makes the reported field deterministic regardless of
	// map iteration order.
	for _, f := range desc.InputFields {
		v, ok := present(raw, f.Key)
		if !ok {
			if f.Required {
				return execution.Binding{}, apperrors.NewMissingFieldError(desc.Name, f.Key)
			}
			continue
		}
		if !matchesType(f.Type, v) {
			return execution.Binding{}, apperrors.NewTypeMismatchError(
				desc.Name, f.Key, string(f.Type), typeName(v))
		}
	}

	request := make(map[string]any, len(raw))
	for k, v := range raw {
		if k == operation.RegionKey || v == nil {
			continue
		}
		if _, declared := desc.Field(k); !declared {
			b.logger.Debug("passing through undeclared field", "operation", desc.Name, "field", k)
		}
		request[k] = v
	}

	return execution.Binding{Region: region, Request: request}, nil
}

func present(m map[string]any, key string) (any, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func matchesType(t operation.FieldType, v any) bool {
	switch t {
	case operation.TypeString:
		_, ok := v.(string)
		return ok
	case operation.TypeBoolean:
		_, ok := v.(bool)
		return ok
	case operation.TypeNumber:
		return isNumber(v)
	case operation.TypeArray:
		k := reflect.TypeOf(v).Kind()
		return k == reflect.Slice || k == reflect.Array
	case operation.TypeObject:
		return reflect.TypeOf(v).Kind() == reflect.Map
	default:
		return false
	}
}

func isNumber(v any) bool {
	if _, ok := v.(json.Number); ok {
		return true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// typeName reports the JSON type name of v for error messages.
func typeName(v any) string {
	switch {
	case v == nil:
		return "null"
	case matchesType(operation.TypeString, v):
		return string(operation.TypeString)
	case matchesType(operation.TypeBoolean, v):
		return string(operation.TypeBoolean)
	case matchesType(operation.TypeNumber, v):
		return string(operation.TypeNumber)
	case matchesType(operation.TypeArray, v):
		return string(operation.TypeArray)
	case matchesType(operation.TypeObject, v):
		return string(operation.TypeObject)
	default:
		return reflect.TypeOf(v).String()
	}
}
