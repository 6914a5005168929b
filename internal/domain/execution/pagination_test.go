package execution_test

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContinuationToken(t *testing.T) {
	t.Parallel()

	type plainOutput struct {
		NextToken string
	}

	tests := []struct {
		name    string
		payload any
		want    string
	}{
		{name: "nil", payload: nil, want: ""},
		{name: "map with token", payload: map[string]any{"NextToken": "tok-A"}, want: "tok-A"},
		{name: "map without token", payload: map[string]any{"Items": []any{}}, want: ""},
		{name: "map with non-string token", payload: map[string]any{"NextToken": 7}, want: ""},
		{name: "sdk output with token", payload: &ec2.DescribeTransitGatewaysOutput{NextToken: aws.String("tok-B")}, want: "tok-B"},
		{name: "sdk output last page", payload: &ec2.DescribeTransitGatewaysOutput{}, want: ""},
		{name: "nil sdk output", payload: (*ec2.DescribeTransitGatewaysOutput)(nil), want: ""},
		{name: "plain string field", payload: plainOutput{NextToken: "tok-C"}, want: "tok-C"},
		{name: "struct without token", payload: ec2.CreateRouteOutput{}, want: ""},
		{name: "scalar", payload: 42, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, execution.ContinuationToken(tt.payload))
		})
	}
}

func TestPaginationState_Transitions(t *testing.T) {
	t.Parallel()

	state := execution.NewPaginationState(aws.Int32(5))
	assert.Equal(t, execution.WalkIdle, state.State)
	assert.Nil(t, state.Token)

	state.Begin()
	assert.Equal(t, execution.WalkFetching, state.State)

	assert.Equal(t, execution.WalkMore, state.Advance("tok-A"))
	require.NotNil(t, state.Token)
	assert.Equal(t, "tok-A", *state.Token)

	state.Begin()
	assert.Equal(t, execution.WalkDone, state.Advance(""))
	assert.Nil(t, state.Token)
	assert.Equal(t, int32(5), *state.MaxResults)
}

func TestPaginationState_Stop(t *testing.T) {
	t.Parallel()

	state := execution.NewPaginationState(nil)
	state.Begin()
	state.Advance("tok")
	state.Stop()

	assert.Equal(t, execution.WalkDone, state.State)
	assert.Nil(t, state.Token)
}
