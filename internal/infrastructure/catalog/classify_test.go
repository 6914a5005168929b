package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	apperrors "github.com/reglet-dev/ec2blocks/internal/application/errors"
	"github.com/reglet-dev/ec2blocks/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseError(status int, requestID string, cause error) error {
	return &awshttp.ResponseError{
		ResponseError: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{Response: &http.Response{StatusCode: status}},
			Err:      cause,
		},
		RequestID: requestID,
	}
}

func TestClassify(t *testing.T) {
	t.Parallel()

	apiErr := &smithy.GenericAPIError{Code: "InvalidRouteTableID.NotFound", Message: "The routeTable ID 'rtb-1' does not exist"}

	tests := []struct {
		name     string
		err      error
		wantKind values.ErrorKind
		wantCode string
	}{
		{name: "api error", err: apiErr, wantKind: values.ErrorInvocation, wantCode: "InvalidRouteTableID.NotFound"},
		{
			name:     "api error in operation error",
			err:      &smithy.OperationError{ServiceID: "EC2", OperationName: "DeleteRouteTable", Err: responseError(400, "req-1", apiErr)},
			wantKind: values.ErrorInvocation,
			wantCode: "InvalidRouteTableID.NotFound",
		},
		{
			name:     "dry run response",
			err:      &smithy.GenericAPIError{Code: "DryRunOperation", Message: "Request would have succeeded, but DryRun flag is set."},
			wantKind: values.ErrorInvocation,
			wantCode: "DryRunOperation",
		},
		{
			name:     "send failure",
			err:      &smithyhttp.RequestSendError{Err: errors.New("dial tcp: connection refused")},
			wantKind: values.ErrorTransport,
		},
		{
			name:     "cancelled",
			err:      fmt.Errorf("operation error: %w", context.Canceled),
			wantKind: values.ErrorTransport,
		},
		{
			name:     "unparseable response",
			err:      responseError(502, "req-2", errors.New("failed to decode response body")),
			wantKind: values.ErrorInvocation,
		},
		{
			name:     "unknown",
			err:      errors.New("boom"),
			wantKind: values.ErrorTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := classify("DeleteRouteTable", tt.err)
			assert.Equal(t, tt.wantKind, apperrors.KindOf(got))
			assert.ErrorIs(t, got, tt.err)

			var invErr *apperrors.InvocationError
			if errors.As(got, &invErr) {
				assert.Equal(t, tt.wantCode, invErr.Code)
			}
		})
	}
}

func TestClassify_ResponseMetadata(t *testing.T) {
	t.Parallel()

	err := classify("DeleteRouteTable", responseError(400, "req-9",
		&smithy.GenericAPIError{Code: "DependencyViolation", Message: "has dependencies"}))

	var invErr *apperrors.InvocationError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, 400, invErr.StatusCode)
	assert.Equal(t, "req-9", invErr.RequestID)
	assert.Equal(t, "has dependencies", invErr.Message)
}
