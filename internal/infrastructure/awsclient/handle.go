package awsclient

// Handle is a client bound to one execution context. It is built per
// invocation and never cached.
type Handle struct {
	api API
	// nil unless the context carried an endpoint override
	endpoint *string
	region   string
}

// NewHandle wraps an existing API for region. Used with fakes.
func NewHandle(region string, api API) *Handle {
	return &Handle{region: region, api: api}
}

// Region implements ports.ClientHandle.
func (h *Handle) Region() string {
	return h.region
}

// API returns the EC2 client.
func (h *Handle) API() API {
	return h.api
}

// Settings describes the resolved client configuration. The endpoint key is
// present only when an override was supplied.
func (h *Handle) Settings() map[string]any {
	s := map[string]any{
		"region":             h.region,
		"retry_max_attempts": 1,
	}
	if h.endpoint != nil {
		s["endpoint"] = *h.endpoint
	}
	return s
}
