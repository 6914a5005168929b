package catalog

import (
	"context"
	"errors"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	apperrors "github.com/reglet-dev/ec2blocks/internal/application/errors"
)

// classify maps an SDK error onto the invocation taxonomy. A remote error
// response keeps its code and message unchanged; anything that failed
// before a response was read is a transport error.
func classify(op string, err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		invErr := apperrors.NewInvocationError(op, apiErr.ErrorCode(), apiErr.ErrorMessage(), err)
		var respErr *awshttp.ResponseError
		if errors.As(err, &respErr) {
			invErr.StatusCode = respErr.HTTPStatusCode()
			invErr.RequestID = respErr.ServiceRequestID()
		}
		return invErr
	}

	var sendErr *smithyhttp.RequestSendError
	switch {
	case errors.As(err, &sendErr):
		return apperrors.NewTransportError(op, "failed to send request", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apperrors.NewTransportError(op, "request cancelled", err)
	}

	// A response arrived but could not be understood as an API error.
	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		invErr := apperrors.NewInvocationError(op, "", respErr.Error(), err)
		invErr.StatusCode = respErr.HTTPStatusCode()
		invErr.RequestID = respErr.ServiceRequestID()
		return invErr
	}

	return apperrors.NewTransportError(op, "no response", err)
}
