package awsclient

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	apperrors "github.com/reglet-dev/ec2blocks/internal/application/errors"
	"github.com/reglet-dev/ec2blocks/internal/application/ports"
	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
)

// Resolver turns an execution context into an EC2 client handle.
//
// The aws.Config is assembled directly rather than through
// config.LoadDefaultConfig: shared config files and AWS_ENDPOINT_URL must not
// be able to add an endpoint the context did not ask for.
type Resolver struct {
	httpClient aws.HTTPClient
	logger     *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithHTTPClient sets the transport used by every resolved client.
func WithHTTPClient(c aws.HTTPClient) ResolverOption {
	return func(r *Resolver) {
		r.httpClient = c
	}
}

// WithLogger sets the resolver's logger.
func WithLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = l
	}
}

// NewResolver creates a new resolver.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve implements ports.ClientResolver. No network activity happens here;
// connections are opened on the first call.
func (r *Resolver) Resolve(_ context.Context, execCtx execution.Context) (ports.ClientHandle, error) {
	h, err := r.resolve(execCtx)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (r *Resolver) resolve(execCtx execution.Context) (*Handle, error) {
	if execCtx.Region == "" {
		return nil, apperrors.NewConfigurationError("region", "region must not be empty", nil)
	}
	creds := execCtx.Credentials
	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return nil, apperrors.NewConfigurationError("credentials",
			"AWS credentials not found (set AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY)", nil)
	}

	cfg := aws.Config{
		Region: execCtx.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			creds.AccessKeyID,
			creds.SecretAccessKey,
			creds.SessionToken,
		),
		Retryer: func() aws.Retryer {
			return aws.NopRetryer{}
		},
	}
	if r.httpClient != nil {
		cfg.HTTPClient = r.httpClient
	}

	h := &Handle{region: execCtx.Region}

	var optFns []func(*ec2.Options)
	if endpoint, ok := execCtx.Endpoint(); ok {
		if err := validateEndpoint(endpoint); err != nil {
			return nil, err
		}
		h.endpoint = &endpoint
		optFns = append(optFns, func(o *ec2.Options) {
			o.BaseEndpoint = aws.String(endpoint)
		})
	}

	h.api = ec2.NewFromConfig(cfg, optFns...)

	r.logger.Debug("resolved client", "context", execCtx)
	return h, nil
}

func validateEndpoint(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return apperrors.NewConfigurationError("endpoint", "invalid endpoint override", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return apperrors.NewConfigurationError("endpoint",
			"endpoint override must be an absolute URL, got "+endpoint, nil)
	}
	return nil
}
