// Package container provides dependency injection for the application.
package container

import (
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/reglet-dev/ec2blocks/internal/application/ports"
	"github.com/reglet-dev/ec2blocks/internal/application/services"
	"github.com/reglet-dev/ec2blocks/internal/infrastructure/awsclient"
	"github.com/reglet-dev/ec2blocks/internal/infrastructure/catalog"
	"github.com/reglet-dev/ec2blocks/internal/infrastructure/persistence/memory"
	"github.com/reglet-dev/ec2blocks/internal/infrastructure/redaction"
	"github.com/reglet-dev/ec2blocks/internal/infrastructure/system"
)

// Container holds all application dependencies.
type Container struct {
	registry        *catalog.Registry
	redactor        *redaction.Redactor
	credentials     *awsclient.CredentialChain
	events          *memory.EventStore
	invokeBlockCase *services.InvokeBlockUseCase
	walkBlockCase   *services.WalkBlockUseCase
	systemCfg       *system.Config
	logger          *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger       *slog.Logger
	SystemConfig *system.Config
	// Sink receives every emitted event. Required.
	Sink ports.EventSink
	// HTTPClient overrides the transport of resolved EC2 clients.
	HTTPClient aws.HTTPClient
	// Registry overrides the built-in catalog.
	Registry *catalog.Registry
	// Redactor overrides the one built from SystemConfig.
	Redactor *redaction.Redactor
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Sink == nil {
		return nil, fmt.Errorf("container: event sink is required")
	}
	if opts.SystemConfig == nil {
		opts.SystemConfig = system.DefaultConfig()
	}

	registry := opts.Registry
	if registry == nil {
		var err error
		registry, err = catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to build operation catalog: %w", err)
		}
	}

	redactor := opts.Redactor
	if redactor == nil {
		var err error
		redactor, err = redaction.New(opts.SystemConfig.RedactorConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redactor: %w", err)
		}
	}

	resolverOpts := []awsclient.ResolverOption{awsclient.WithLogger(opts.Logger)}
	if opts.HTTPClient != nil {
		resolverOpts = append(resolverOpts, awsclient.WithHTTPClient(opts.HTTPClient))
	}
	resolver := awsclient.NewResolver(resolverOpts...)

	binder := services.NewBinder(opts.Logger)
	dispatcher := services.NewDispatcher(registry, redactor, opts.Logger)
	walker := services.NewPaginationWalker(dispatcher, opts.Logger)
	events := memory.NewEventStore(memory.DefaultCapacity)
	emitter := services.NewEmitter(memory.Tee{events, opts.Sink}, redactor, opts.Logger)

	return &Container{
		registry:        registry,
		redactor:        redactor,
		credentials:     awsclient.NewCredentialChain(),
		events:          events,
		invokeBlockCase: services.NewInvokeBlockUseCase(registry, binder, resolver, dispatcher, emitter, opts.Logger),
		walkBlockCase:   services.NewWalkBlockUseCase(registry, binder, resolver, walker, emitter, opts.Logger),
		systemCfg:       opts.SystemConfig,
		logger:          opts.Logger,
	}, nil
}

// InvokeBlockUseCase returns the single-call use case.
func (c *Container) InvokeBlockUseCase() *services.InvokeBlockUseCase {
	return c.invokeBlockCase
}

// WalkBlockUseCase returns the pagination use case.
func (c *Container) WalkBlockUseCase() *services.WalkBlockUseCase {
	return c.walkBlockCase
}

// Registry returns the operation catalog.
func (c *Container) Registry() *catalog.Registry {
	return c.registry
}

// Credentials returns the environment-then-default-chain credential source.
func (c *Container) Credentials() ports.CredentialSource {
	return c.credentials
}

// Events returns the store of every event emitted through this container.
func (c *Container) Events() *memory.EventStore {
	return c.events
}

// Redactor returns the shared redactor.
func (c *Container) Redactor() *redaction.Redactor {
	return c.redactor
}

// SystemConfig returns the system configuration.
func (c *Container) SystemConfig() *system.Config {
	return c.systemCfg
}

// Logger returns the logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
