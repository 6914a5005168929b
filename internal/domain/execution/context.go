package execution

import (
	"log/slog"
	"strings"
)

// Credentials are the three AWS credential fields supplied out of band by
// the hosting environment. SessionToken is empty for non-STS credentials.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// IsZero reports whether no key material is present.
func (c Credentials) IsZero() bool {
	return c.AccessKeyID == "" && c.SecretAccessKey == ""
}

// LogValue keeps secret material out of logs.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("access_key_id", maskKeyID(c.AccessKeyID)),
		slog.Bool("session", c.SessionToken != ""),
	)
}

func maskKeyID(id string) string {
	if len(id) <= 4 {
		return strings.Repeat("*", len(id))
	}
	return strings.Repeat("*", len(id)-4) + id[len(id)-4:]
}

// Context is the region/credential/endpoint bundle addressing one call.
// It is built per invocation and never cached.
type Context struct {
	// endpoint is nil unless an override was supplied.
	endpoint    *string
	Region      string
	Credentials Credentials
}

// NewContext creates an execution context without an endpoint override.
func NewContext(region string, creds Credentials) Context {
	return Context{Region: region, Credentials: creds}
}

// WithEndpoint returns a copy targeting endpoint. An empty endpoint leaves the
// context untouched, so absence never turns into an empty override.
func (c Context) WithEndpoint(endpoint string) Context {
	if endpoint == "" {
		return c
	}
	c.endpoint = &endpoint
	return c
}

// Endpoint returns the override, if one was supplied.
func (c Context) Endpoint() (string, bool) {
	if c.endpoint == nil {
		return "", false
	}
	return *c.endpoint, true
}

// LogValue implements slog.LogValuer.
func (c Context) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("region", c.Region),
		slog.Any("credentials", c.Credentials),
	}
	if e, ok := c.Endpoint(); ok {
		attrs = append(attrs, slog.String("endpoint", e))
	}
	return slog.GroupValue(attrs...)
}

// Binding is the output of the config binder: the adapter-level region and
// the region-stripped request forwarded to the remote call.
type Binding struct {
	Request map[string]any
	Region  string
}
