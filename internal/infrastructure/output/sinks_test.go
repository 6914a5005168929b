package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
	"github.com/reglet-dev/ec2blocks/internal/domain/values"
)

const testInvocationID = "0b0f5d8e-7c1a-4d8e-9a51-1c2b3d4e5f60"

func successEvent() execution.Event {
	result := execution.Success(&ec2.DescribeTransitGatewaysOutput{
		NextToken: aws.String("tok-2"),
		TransitGateways: []types.TransitGateway{
			{TransitGatewayId: aws.String("tgw-1"), State: types.TransitGatewayStateAvailable},
		},
	})
	result.Duration = 42 * time.Millisecond

	return execution.Event{
		Timestamp:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		InvocationID: values.MustParseInvocationID(testInvocationID),
		Operation:    "DescribeTransitGateways",
		Region:       "us-east-1",
		Result:       result,
		Page:         2,
	}
}

func failureEvent() execution.Event {
	return execution.Event{
		Timestamp:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		InvocationID: values.MustParseInvocationID(testInvocationID),
		Operation:    "DeleteTransitGateway",
		Region:       "us-east-1",
		Result:       execution.Failure(values.ErrorInvocation, "InvalidTransitGatewayID.NotFound", "no such gateway"),
	}
}

func TestJSONSink_Success(t *testing.T) {
	buf := &bytes.Buffer{}
	sink := NewJSONSink(buf, false)

	require.NoError(t, sink.Emit(context.Background(), successEvent()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, testInvocationID, got["invocation_id"])
	assert.Equal(t, "DescribeTransitGateways", got["operation"])
	assert.Equal(t, "us-east-1", got["region"])
	assert.Equal(t, "success", got["kind"])
	assert.EqualValues(t, 2, got["page"])
	assert.EqualValues(t, 42, got["duration_ms"])
	assert.NotContains(t, got, "error_kind")

	payload, ok := got["payload"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "tok-2", payload["NextToken"])
	assert.NotContains(t, payload, "ResultMetadata")

	gateways, ok := payload["TransitGateways"].([]any)
	require.True(t, ok)
	require.Len(t, gateways, 1)
	assert.Equal(t, "tgw-1", gateways[0].(map[string]any)["TransitGatewayId"])
}

func TestJSONSink_Failure(t *testing.T) {
	buf := &bytes.Buffer{}
	sink := NewJSONSink(buf, true)

	require.NoError(t, sink.Emit(context.Background(), failureEvent()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "failure", got["kind"])
	assert.Equal(t, "InvocationError", got["error_kind"])
	assert.Equal(t, "InvalidTransitGatewayID.NotFound", got["code"])
	assert.Equal(t, "no such gateway", got["message"])
	assert.NotContains(t, got, "payload")
	assert.Contains(t, buf.String(), "\n  \"operation\"")
}

func TestJSONSink_OneLinePerEvent(t *testing.T) {
	buf := &bytes.Buffer{}
	sink := NewJSONSink(buf, false)

	require.NoError(t, sink.Emit(context.Background(), successEvent()))
	require.NoError(t, sink.Emit(context.Background(), failureEvent()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
}

func TestYAMLSink_Documents(t *testing.T) {
	buf := &bytes.Buffer{}
	sink := NewYAMLSink(buf)

	require.NoError(t, sink.Emit(context.Background(), successEvent()))
	require.NoError(t, sink.Emit(context.Background(), failureEvent()))

	docs := strings.Split(buf.String(), "---\n")
	require.Len(t, docs, 2)

	var first map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(docs[0]), &first))
	assert.Equal(t, "DescribeTransitGateways", first["operation"])
	assert.Contains(t, first, "payload")

	var second map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(docs[1]), &second))
	assert.Equal(t, "InvalidTransitGatewayID.NotFound", second["code"])
}

func TestTableSink(t *testing.T) {
	tests := []struct {
		name  string
		event execution.Event
		want  []string
	}{
		{
			name:  "success",
			event: successEvent(),
			want: []string{
				"✓ DescribeTransitGateways [us-east-1] page 2 (42ms)",
				"  NextToken: tok-2",
				"  TransitGateways: 1 item(s)",
				`"TransitGatewayId":"tgw-1"`,
			},
		},
		{
			name:  "failure",
			event: failureEvent(),
			want: []string{
				"✗ DeleteTransitGateway [us-east-1]",
				"  InvocationError InvalidTransitGatewayID.NotFound: no such gateway",
			},
		},
		{
			name: "dry run succeeded",
			event: execution.Event{
				Operation: "DeleteTransitGateway",
				Result: execution.Failure(values.ErrorInvocation, execution.DryRunSucceededCode,
					"Request would have succeeded, but DryRun flag is set."),
			},
			want: []string{
				"◌ DeleteTransitGateway",
				"  Dry run: Request would have succeeded",
			},
		},
		{
			name: "empty payload",
			event: execution.Event{
				Operation: "DeleteRoute",
				Result:    execution.Success(nil),
			},
			want: []string{"(no content)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			sink := NewTableSink(buf)
			sink.EnableColor = false

			require.NoError(t, sink.Emit(context.Background(), tt.event))

			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
			assert.NotContains(t, buf.String(), "\033[")
		})
	}
}

func TestTableSink_Color(t *testing.T) {
	buf := &bytes.Buffer{}
	sink := NewTableSink(buf)

	require.NoError(t, sink.Emit(context.Background(), failureEvent()))
	assert.Contains(t, buf.String(), colorRed)
}

func TestGenericPayload_LeavesEventUntouched(t *testing.T) {
	raw := map[string]any{"ResultMetadata": map[string]any{}, "Return": true}

	got, err := genericPayload(raw)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"Return": true}, got)
	assert.Contains(t, raw, "ResultMetadata")
}
