package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSet(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantKey   string
		wantValue any
		wantErr   bool
	}{
		{name: "string", input: "TransitGatewayId=tgw-1", wantKey: "TransitGatewayId", wantValue: "tgw-1"},
		{name: "boolean", input: "DryRun=true", wantKey: "DryRun", wantValue: true},
		{name: "list", input: "AllocationIds=[eipalloc-1, eipalloc-2]", wantKey: "AllocationIds", wantValue: []any{"eipalloc-1", "eipalloc-2"}},
		{name: "empty value", input: "Description=", wantKey: "Description", wantValue: ""},
		{name: "value with equals", input: "Description=a=b", wantKey: "Description", wantValue: "a=b"},
		{name: "no equals", input: "DryRun", wantErr: true},
		{name: "empty key", input: "=x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, err := ParseSet(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestParseSet_Number(t *testing.T) {
	_, value, err := ParseSet("MaxResults=5")
	require.NoError(t, err)
	assert.EqualValues(t, 5, value)
}

func TestApplySets(t *testing.T) {
	config := map[string]any{
		"region":  "us-east-1",
		"Options": map[string]any{"DnsSupport": "disable"},
	}

	err := ApplySets(config, []string{
		"region=eu-west-1",
		"Options.DnsSupport=enable",
		"Options.Ipv6Support=enable",
		"Tags.env=prod",
	})
	require.NoError(t, err)

	assert.Equal(t, "eu-west-1", config["region"])
	assert.Equal(t, map[string]any{"DnsSupport": "enable", "Ipv6Support": "enable"}, config["Options"])
	assert.Equal(t, map[string]any{"env": "prod"}, config["Tags"])
}

func TestApplySets_ThroughScalar(t *testing.T) {
	config := map[string]any{"Description": "x"}

	err := ApplySets(config, []string{"Description.Sub=y"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an object")
}
