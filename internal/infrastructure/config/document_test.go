package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentLoader_LoadFromReader(t *testing.T) {
	yaml := `
operation: CreateTransitGateway
vars:
  env: production
  asn: 64512
  net:
    cidr: 10.0.0.0/16
config:
  region: us-east-1
  Description: "core gateway for {{ .vars.env }}"
  Options:
    AmazonSideAsn: "{{ .vars.asn }}"
    TransitGatewayCidrBlocks:
      - "{{ .vars.net.cidr }}"
  TagSpecifications:
    - ResourceType: transit-gateway
      Tags:
        - Key: env
          Value: "{{ .vars.env }}"
`

	doc, err := NewDocumentLoader().LoadFromReader(strings.NewReader(yaml))
	require.NoError(t, err)

	assert.Equal(t, "CreateTransitGateway", doc.Operation)
	assert.Equal(t, "us-east-1", doc.Config["region"])
	assert.Equal(t, "core gateway for production", doc.Config["Description"])

	options := doc.Config["Options"].(map[string]any)
	assert.EqualValues(t, 64512, options["AmazonSideAsn"])
	assert.Equal(t, []any{"10.0.0.0/16"}, options["TransitGatewayCidrBlocks"])

	specs := doc.Config["TagSpecifications"].([]any)
	tags := specs[0].(map[string]any)["Tags"].([]any)
	assert.Equal(t, "production", tags[0].(map[string]any)["Value"])
}

func TestDocumentLoader_JSON(t *testing.T) {
	doc, err := NewDocumentLoader().LoadFromReader(strings.NewReader(
		`{"config": {"region": "eu-west-1", "DryRun": true, "AllocationIds": ["eipalloc-1"]}}`,
	))
	require.NoError(t, err)

	assert.Empty(t, doc.Operation)
	assert.Equal(t, true, doc.Config["DryRun"])
	assert.Equal(t, []any{"eipalloc-1"}, doc.Config["AllocationIds"])
}

func TestDocumentLoader_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
	}{
		{
			name:        "missing variable",
			content:     "config:\n  TransitGatewayId: \"{{ .vars.missing }}\"\n",
			errContains: "variable not found: missing",
		},
		{
			name:        "path through scalar",
			content:     "vars:\n  env: prod\nconfig:\n  Name: \"x-{{ .vars.env.name }}\"\n",
			errContains: "not a map",
		},
		{
			name:        "malformed",
			content:     "config: [unclosed",
			errContains: "failed to decode invocation document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDocumentLoader().LoadFromReader(strings.NewReader(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestDocumentLoader_Empty(t *testing.T) {
	doc, err := NewDocumentLoader().LoadFromReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.NotNil(t, doc.Config)
	assert.Empty(t, doc.Config)
}

func TestDocumentLoader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invoke.yaml")
	require.NoError(t, os.WriteFile(path, []byte("config:\n  region: us-west-2\n"), 0600))

	doc, err := NewDocumentLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", doc.Config["region"])

	_, err = NewDocumentLoader().Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open document")
}
