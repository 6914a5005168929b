package awsclient

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	apperrors "github.com/reglet-dev/ec2blocks/internal/application/errors"
	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
)

// CredentialChain supplies credentials from AWS_ACCESS_KEY_ID,
// AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN, falling back to the default
// AWS chain (shared files, SSO, instance roles).
type CredentialChain struct {
	lookupEnv func(string) (string, bool)
	fallback  func(ctx context.Context) (aws.Credentials, error)
}

// NewCredentialChain creates a chain reading the process environment.
func NewCredentialChain() *CredentialChain {
	return &CredentialChain{
		lookupEnv: os.LookupEnv,
		fallback:  defaultChain,
	}
}

// Credentials implements ports.CredentialSource.
func (c *CredentialChain) Credentials(ctx context.Context) (execution.Credentials, error) {
	creds := execution.Credentials{
		AccessKeyID:     c.env("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: c.env("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    c.env("AWS_SESSION_TOKEN"),
	}
	if !creds.IsZero() {
		return creds, nil
	}

	if c.fallback == nil {
		return execution.Credentials{}, apperrors.NewConfigurationError("credentials",
			"AWS credentials not found (set AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY)", nil)
	}

	v, err := c.fallback(ctx)
	if err != nil {
		return execution.Credentials{}, apperrors.NewConfigurationError("credentials",
			"failed to retrieve credentials from the default chain", err)
	}
	return execution.Credentials{
		AccessKeyID:     v.AccessKeyID,
		SecretAccessKey: v.SecretAccessKey,
		SessionToken:    v.SessionToken,
	}, nil
}

func (c *CredentialChain) env(key string) string {
	v, _ := c.lookupEnv(key)
	return v
}

func defaultChain(ctx context.Context) (aws.Credentials, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return aws.Credentials{}, err
	}
	if cfg.Credentials == nil {
		return aws.Credentials{}, apperrors.NewConfigurationError("credentials", "no credential provider configured", nil)
	}
	return cfg.Credentials.Retrieve(ctx)
}

// DefaultRegion returns the region of the default AWS configuration
// (AWS_REGION, AWS_DEFAULT_REGION, shared config), or "" when none is set.
func DefaultRegion(ctx context.Context) string {
	for _, key := range []string{"AWS_REGION", "AWS_DEFAULT_REGION"} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return ""
	}
	return cfg.Region
}
