package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	apperrors "github.com/reglet-dev/ec2blocks/internal/application/errors"
	"github.com/reglet-dev/ec2blocks/internal/application/ports"
	"github.com/reglet-dev/ec2blocks/internal/domain/execution"
	"github.com/reglet-dev/ec2blocks/internal/domain/operation"
)

var describeTGWs = operation.Descriptor{
	Name:           "DescribeTransitGateways",
	Description:    "Describes one or more transit gateways.",
	SupportsDryRun: true,
	Paginated:      true,
	InputFields: []operation.FieldSpec{
		{Key: "TransitGatewayIds", Type: operation.TypeArray, Items: operation.TypeString},
		{Key: "Filters", Type: operation.TypeArray, Items: operation.TypeObject},
		{Key: "MaxResults", Type: operation.TypeNumber},
		{Key: "NextToken", Type: operation.TypeString},
		{Key: "DryRun", Type: operation.TypeBoolean},
	},
	OutputShape: operation.SchemaNode{
		Type: operation.TypeObject,
		Properties: map[string]operation.SchemaNode{
			"TransitGateways": {Type: operation.TypeArray},
			"NextToken":       {Type: operation.TypeString},
		},
	},
}

var deleteTGW = operation.Descriptor{
	Name:           "DeleteTransitGateway",
	Description:    "Deletes the specified transit gateway.",
	SupportsDryRun: true,
	InputFields: []operation.FieldSpec{
		{Key: "TransitGatewayId", Type: operation.TypeString, Required: true},
		{Key: "DryRun", Type: operation.TypeBoolean},
	},
}

var modifyTGW = operation.Descriptor{
	Name: "ModifyTransitGateway",
	InputFields: []operation.FieldSpec{
		{Key: "TransitGatewayId", Type: operation.TypeString, Required: true},
		{Key: "Description", Type: operation.TypeString},
		{Key: "Options", Type: operation.TypeObject},
		{Key: "AddCount", Type: operation.TypeNumber, Required: true},
	},
}

// call records one command invocation.
type call struct {
	request   map[string]any
	operation string
	region    string
}

// fakeCatalog is an in-memory OperationCatalog recording every call.
type fakeCatalog struct {
	descriptors map[string]operation.Descriptor
	commands    map[string]ports.OperationCommand
	mu          sync.Mutex
	calls       []call
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		descriptors: map[string]operation.Descriptor{},
		commands:    map[string]ports.OperationCommand{},
	}
}

// register adds desc with a command answering through fn.
func (c *fakeCatalog) register(desc operation.Descriptor, fn func(request map[string]any) (any, error)) {
	c.descriptors[desc.Name] = desc
	c.commands[desc.Name] = func(_ context.Context, client ports.ClientHandle, request map[string]any) (any, error) {
		c.mu.Lock()
		c.calls = append(c.calls, call{operation: desc.Name, region: client.Region(), request: request})
		c.mu.Unlock()
		return fn(request)
	}
}

func (c *fakeCatalog) Lookup(name string) (operation.Descriptor, error) {
	d, ok := c.descriptors[name]
	if !ok {
		return operation.Descriptor{}, apperrors.NewUnknownOperationError(name)
	}
	return d, nil
}

func (c *fakeCatalog) Command(name string) (ports.OperationCommand, bool) {
	cmd, ok := c.commands[name]
	return cmd, ok
}

func (c *fakeCatalog) Descriptors() []operation.Descriptor {
	out := make([]operation.Descriptor, 0, len(c.descriptors))
	for _, d := range c.descriptors {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (c *fakeCatalog) recorded() []call {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]call(nil), c.calls...)
}

type fakeClient struct {
	region string
}

func (f fakeClient) Region() string { return f.region }

// fakeResolver returns a fakeClient for the context's region and records the
// contexts it saw.
type fakeResolver struct {
	err  error
	seen []execution.Context
}

func (r *fakeResolver) Resolve(_ context.Context, execCtx execution.Context) (ports.ClientHandle, error) {
	r.seen = append(r.seen, execCtx)
	if r.err != nil {
		return nil, r.err
	}
	return fakeClient{region: execCtx.Region}, nil
}

// recordingSink keeps every emitted event.
type recordingSink struct {
	err    error
	events []execution.Event
}

func (s *recordingSink) Emit(_ context.Context, event execution.Event) error {
	if s.err != nil {
		return s.err
	}
	s.events = append(s.events, event)
	return nil
}

// maskScrubber stands in for the redactor.
type maskScrubber struct{ secret string }

func (m maskScrubber) ScrubString(input string) string {
	return strings.ReplaceAll(input, m.secret, "[REDACTED]")
}

func (m maskScrubber) Redact(data any) any {
	req, ok := data.(map[string]any)
	if !ok {
		return data
	}
	out := make(map[string]any, len(req))
	for k, v := range req {
		if v == m.secret {
			v = "[REDACTED]"
		}
		out[k] = v
	}
	return out
}

// pagedRemote serves pages keyed by the request token ("" for the first page).
func pagedRemote(next map[string]string) func(map[string]any) (any, error) {
	return func(request map[string]any) (any, error) {
		token, _ := request["NextToken"].(string)
		n, ok := next[token]
		if !ok {
			return nil, apperrors.NewInvocationError("DescribeTransitGateways", "InvalidNextToken", "bad token "+token, nil)
		}
		page := map[string]any{"TransitGateways": []any{map[string]any{"TransitGatewayId": "tgw-" + token}}}
		if n != "" {
			page["NextToken"] = n
		}
		return page, nil
	}
}

var errBoom = errors.New("boom")

type countingScrubber struct {
	redactions atomic.Int32
}

func (c *countingScrubber) ScrubString(input string) string { return input }

func (c *countingScrubber) Redact(data any) any {
	c.redactions.Add(1)
	return data
}
