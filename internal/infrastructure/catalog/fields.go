package catalog

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/reglet-dev/ec2blocks/internal/domain/operation"
	"github.com/reglet-dev/ec2blocks/internal/infrastructure/awsclient"
)

// define builds a catalog entry whose command calls fn.
func define[In, Out any](
	desc operation.Descriptor,
	fn func(awsclient.API, context.Context, *In, ...func(*ec2.Options)) (*Out, error),
) Entry {
	desc.SupportsDryRun = true
	desc.InputFields = append(desc.InputFields, dryRunField)
	return Entry{Descriptor: desc, Command: command(desc.Name, fn)}
}

// paged marks desc list-shaped and adds the pagination fields.
func paged(desc operation.Descriptor) operation.Descriptor {
	desc.Paginated = true
	desc.InputFields = append(desc.InputFields,
		operation.FieldSpec{Key: operation.MaxResultsKey, Type: operation.TypeNumber,
			Description: "The maximum number of results to return with a single call."},
		operation.FieldSpec{Key: operation.NextTokenKey, Type: operation.TypeString,
			Description: "The token for the next page of results."},
	)
	props := make(map[string]operation.SchemaNode, len(desc.OutputShape.Properties)+1)
	for k, v := range desc.OutputShape.Properties {
		props[k] = v
	}
	props[operation.NextTokenKey] = operation.SchemaNode{
		Type:        operation.TypeString,
		Description: "The token to use to retrieve the next page of results. Empty when there are no more results.",
	}
	desc.OutputShape.Properties = props
	return desc
}

var dryRunField = operation.FieldSpec{
	Key:  operation.DryRunKey,
	Type: operation.TypeBoolean,
	Description: "Checks whether you have the required permissions for the action, without actually making the request. " +
		"If you have the required permissions, the error response is DryRunOperation.",
}

func str(key, description string) operation.FieldSpec {
	return operation.FieldSpec{Key: key, Type: operation.TypeString, Description: description}
}

func reqStr(key, description string) operation.FieldSpec {
	f := str(key, description)
	f.Required = true
	return f
}

func num(key, description string) operation.FieldSpec {
	return operation.FieldSpec{Key: key, Type: operation.TypeNumber, Description: description}
}

func boolean(key, description string) operation.FieldSpec {
	return operation.FieldSpec{Key: key, Type: operation.TypeBoolean, Description: description}
}

func strList(key, description string) operation.FieldSpec {
	return operation.FieldSpec{Key: key, Type: operation.TypeArray, Items: operation.TypeString, Description: description}
}

func obj(key, description string) operation.FieldSpec {
	return operation.FieldSpec{Key: key, Type: operation.TypeObject, Description: description}
}

func reqObj(key, description string) operation.FieldSpec {
	f := obj(key, description)
	f.Required = true
	return f
}

// filters accepts loosely-typed filter objects; the remote is the final
// arbiter of filter names and values.
func filters(key string) operation.FieldSpec {
	return operation.FieldSpec{
		Key:         key,
		Type:        operation.TypeArray,
		Items:       operation.TypeObject,
		Description: "One or more filters, each with a Name and a list of Values.",
	}
}

func tagSpecifications() operation.FieldSpec {
	return operation.FieldSpec{
		Key:         "TagSpecifications",
		Type:        operation.TypeArray,
		Items:       operation.TypeObject,
		Description: "The tags to apply to the resource during creation.",
	}
}

func clientToken() operation.FieldSpec {
	return str("ClientToken", "Unique, case-sensitive identifier to ensure the idempotency of the request.")
}

// output describes an open object with the named top-level properties.
func output(props map[string]operation.SchemaNode) operation.SchemaNode {
	return operation.SchemaNode{
		Type:                 operation.TypeObject,
		Properties:           props,
		AdditionalProperties: true,
	}
}

func objectNode(description string) operation.SchemaNode {
	return operation.SchemaNode{Type: operation.TypeObject, Description: description, AdditionalProperties: true}
}

func listNode(description string) operation.SchemaNode {
	item := operation.SchemaNode{Type: operation.TypeObject, AdditionalProperties: true}
	return operation.SchemaNode{Type: operation.TypeArray, Description: description, Items: &item}
}

func boolNode(description string) operation.SchemaNode {
	return operation.SchemaNode{Type: operation.TypeBoolean, Description: description}
}

func strNode(description string) operation.SchemaNode {
	return operation.SchemaNode{Type: operation.TypeString, Description: description}
}
