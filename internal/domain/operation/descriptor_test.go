package operation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pagedDescriptor() Descriptor {
	return Descriptor{
		Name:        "DescribeTransitGateways",
		Description: "Describes transit gateways.",
		InputFields: []FieldSpec{
			{Key: "TransitGatewayIds", Type: TypeArray, Items: TypeString},
			{Key: "Filters", Type: TypeArray, Items: TypeObject},
			{Key: MaxResultsKey, Type: TypeNumber},
			{Key: NextTokenKey, Type: TypeString},
			{Key: DryRunKey, Type: TypeBoolean},
		},
		OutputShape: SchemaNode{
			Properties: map[string]SchemaNode{
				"TransitGateways": {Type: TypeArray, Items: &SchemaNode{Type: TypeObject, AdditionalProperties: true}},
				NextTokenKey:      {Type: TypeString},
			},
		},
		SupportsDryRun: true,
		Paginated:      true,
	}
}

func TestDescriptor_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(d *Descriptor)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(_ *Descriptor) {},
		},
		{
			name:    "lowercase name",
			mutate:  func(d *Descriptor) { d.Name = "describeThings" },
			wantErr: "PascalCase",
		},
		{
			name: "reserved region key",
			mutate: func(d *Descriptor) {
				d.InputFields = append(d.InputFields, FieldSpec{Key: RegionKey, Type: TypeString})
			},
			wantErr: "reserved",
		},
		{
			name: "duplicate key",
			mutate: func(d *Descriptor) {
				d.InputFields = append(d.InputFields, FieldSpec{Key: "Filters", Type: TypeArray})
			},
			wantErr: "duplicate field",
		},
		{
			name: "unknown type",
			mutate: func(d *Descriptor) {
				d.InputFields = append(d.InputFields, FieldSpec{Key: "Port", Type: "integer"})
			},
			wantErr: "unknown field type",
		},
		{
			name: "items on scalar",
			mutate: func(d *Descriptor) {
				d.InputFields = append(d.InputFields, FieldSpec{Key: "Name", Type: TypeString, Items: TypeString})
			},
			wantErr: "items set on non-array",
		},
		{
			name: "dry run without field",
			mutate: func(d *Descriptor) {
				d.InputFields = d.InputFields[:4]
			},
			wantErr: "boolean DryRun",
		},
		{
			name: "paginated without next token output",
			mutate: func(d *Descriptor) {
				d.OutputShape = SchemaNode{}
			},
			wantErr: "NextToken output",
		},
		{
			name: "paginated without max results",
			mutate: func(d *Descriptor) {
				d.InputFields = []FieldSpec{
					{Key: NextTokenKey, Type: TypeString},
					{Key: DryRunKey, Type: TypeBoolean},
				}
			},
			wantErr: "MaxResults",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := pagedDescriptor()
			tt.mutate(&d)

			err := d.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDescriptor_RequiredFields(t *testing.T) {
	t.Parallel()

	d := Descriptor{
		Name: "CreateRoute",
		InputFields: []FieldSpec{
			{Key: "RouteTableId", Type: TypeString, Required: true},
			{Key: "DestinationCidrBlock", Type: TypeString},
			{Key: "GatewayId", Type: TypeString, Required: true},
		},
	}

	required := d.RequiredFields()
	require.Len(t, required, 2)
	assert.Equal(t, "RouteTableId", required[0].Key)
	assert.Equal(t, "GatewayId", required[1].Key)

	f, ok := d.Field("DestinationCidrBlock")
	assert.True(t, ok)
	assert.False(t, f.Required)

	_, ok = d.Field("Missing")
	assert.False(t, ok)
}

func TestDescriptor_InputSchema(t *testing.T) {
	t.Parallel()

	d := pagedDescriptor()
	d.InputFields = append(d.InputFields,
		FieldSpec{Key: "Options", Type: TypeObject},
		FieldSpec{Key: "TransitGatewayId", Type: TypeString, Required: true},
	)

	schema := d.InputSchema()

	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, []string{RegionKey, "TransitGatewayId"}, schema["required"])

	props := schema["properties"].(map[string]any)
	assert.Contains(t, props, RegionKey)
	assert.Equal(t, map[string]any{"type": "string"}, props["TransitGatewayIds"].(map[string]any)["items"])
	assert.Equal(t, true, props["Options"].(map[string]any)["additionalProperties"])
}

func TestDescriptor_OutputSchemaIsOpen(t *testing.T) {
	t.Parallel()

	schema := pagedDescriptor().OutputSchema()

	assert.Equal(t, "object", schema["type"])
	assert.Equal(t, true, schema["additionalProperties"])

	props := schema["properties"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "string"}, props[NextTokenKey])
	items := props["TransitGateways"].(map[string]any)["items"].(map[string]any)
	assert.Equal(t, true, items["additionalProperties"])
}
