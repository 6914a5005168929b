package execution_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
	"github.com/stretchr/testify/assert"
)

func TestContext_WithEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		endpoint string
		wantOK   bool
	}{
		{name: "absent", endpoint: "", wantOK: false},
		{name: "present", endpoint: "http://localhost:4566", wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := execution.NewContext("us-east-1", execution.Credentials{}).WithEndpoint(tt.endpoint)
			got, ok := ctx.Endpoint()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.endpoint, got)
		})
	}
}

func TestContext_WithEndpointDoesNotClearExisting(t *testing.T) {
	t.Parallel()

	ctx := execution.NewContext("eu-west-1", execution.Credentials{}).
		WithEndpoint("http://a").
		WithEndpoint("")

	got, ok := ctx.Endpoint()
	assert.True(t, ok)
	assert.Equal(t, "http://a", got)
}

func TestCredentials_LogValueMasksSecrets(t *testing.T) {
	t.Parallel()

	creds := execution.Credentials{
		AccessKeyID:     "AKIAABCDEFGHIJKL1234",
		SecretAccessKey: "wJalrXUtnFEMI/K7MDENG/bPxRfiCYEXAMPLEKEY",
		SessionToken:    "token-value",
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	logger.Info("resolve", "ctx", execution.NewContext("us-east-1", creds))

	out := buf.String()
	assert.NotContains(t, out, creds.SecretAccessKey)
	assert.NotContains(t, out, creds.SessionToken)
	assert.NotContains(t, out, creds.AccessKeyID)
	assert.Contains(t, out, "1234")
	assert.Contains(t, out, "us-east-1")
}

func TestCredentials_IsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, execution.Credentials{}.IsZero())
	assert.False(t, execution.Credentials{AccessKeyID: "a", SecretAccessKey: "b"}.IsZero())
}
