package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/reglet-dev/ec2blocks/internal/application/dto"
	"github.com/reglet-dev/ec2blocks/internal/domain/operation"
	"github.com/reglet-dev/ec2blocks/internal/infrastructure/awsclient"
	"github.com/reglet-dev/ec2blocks/internal/infrastructure/config"
)

// blockOptions are the flags that assemble one config block.
type blockOptions struct {
	File     string
	Region   string
	Endpoint string
	Sets     []string

	DryRun      bool
	Interactive bool
}

func (o *blockOptions) registerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.File, "file", "f", "", "Invocation document (YAML or JSON)")
	cmd.Flags().StringArrayVar(&o.Sets, "set", nil, "Override a config field (Key=Value, repeatable, dotted keys nest)")
	cmd.Flags().StringVar(&o.Region, "region", "", "AWS region when the config block has none")
	cmd.Flags().StringVar(&o.Endpoint, "endpoint", "", "Endpoint URL override (e.g. a local emulator)")
}

func (o *blockOptions) registerInvokeFlags(cmd *cobra.Command) {
	o.registerFlags(cmd)
	cmd.Flags().BoolVar(&o.DryRun, "dry-run", false, "Ask the service for a permission check only")
	cmd.Flags().BoolVarP(&o.Interactive, "interactive", "i", false, "Prompt for the region and missing required fields")
}

// resolveBlock loads the document, applies overrides and fills the region.
// It returns the operation name and the config map.
func (o *blockOptions) resolveBlock(cc *CommandContext, args []string) (string, map[string]any, error) {
	doc := &config.Document{Config: map[string]any{}}
	if o.File != "" {
		var err error
		doc, err = config.NewDocumentLoader().Load(o.File)
		if err != nil {
			return "", nil, err
		}
	}

	op := doc.Operation
	if len(args) > 0 {
		if op != "" && op != args[0] {
			return "", nil, fmt.Errorf("document operation %s does not match argument %s", op, args[0])
		}
		op = args[0]
	}
	if op == "" {
		return "", nil, fmt.Errorf("operation is required (argument or document 'operation' field)")
	}

	blockConfig := doc.Config
	if err := config.ApplySets(blockConfig, o.Sets); err != nil {
		return "", nil, err
	}
	if o.DryRun {
		blockConfig[operation.DryRunKey] = true
	}

	if region, _ := blockConfig[operation.RegionKey].(string); region == "" {
		if region = o.region(cc); region != "" {
			blockConfig[operation.RegionKey] = region
		}
	}

	if o.Interactive {
		if err := promptMissing(cc, op, blockConfig); err != nil {
			return "", nil, err
		}
	}

	return op, blockConfig, nil
}

// region applies the fallback order: flag, system config, AWS environment
// and shared config.
func (o *blockOptions) region(cc *CommandContext) string {
	if o.Region != "" {
		return o.Region
	}
	if r := cc.Container.SystemConfig().Region; r != "" {
		return r
	}
	return awsclient.DefaultRegion(cc.Context)
}

func (o *blockOptions) endpoint(cc *CommandContext) string {
	if o.Endpoint != "" {
		return o.Endpoint
	}
	return cc.Container.SystemConfig().Endpoint
}

// invokeRequest builds the full request, credentials included. Credential
// lookup failures are logged and left for the resolver to report as a
// configuration failure event.
func (o *blockOptions) invokeRequest(cc *CommandContext, args []string) (dto.InvokeRequest, error) {
	op, blockConfig, err := o.resolveBlock(cc, args)
	if err != nil {
		return dto.InvokeRequest{}, err
	}

	creds, err := cc.Container.Credentials().Credentials(cc.Context)
	if err != nil {
		cc.Logger.Debug("no credentials found", "error", err)
	}

	return dto.InvokeRequest{
		Config:      blockConfig,
		Operation:   op,
		Endpoint:    o.endpoint(cc),
		Credentials: creds,
	}, nil
}

// promptMissing asks for the region and any required field the block lacks.
// Answers are read as YAML scalars, the same way --set values are.
func promptMissing(cc *CommandContext, op string, blockConfig map[string]any) error {
	if region, _ := blockConfig[operation.RegionKey].(string); region == "" {
		var answer string
		err := huh.NewInput().
			Title("AWS Region").
			Value(&answer).
			Run()
		if err != nil {
			return err
		}
		blockConfig[operation.RegionKey] = answer
	}

	desc, err := cc.Container.Registry().Lookup(op)
	if err != nil {
		// Unknown operations are reported by the invocation itself.
		return nil
	}

	for _, field := range desc.RequiredFields() {
		if v, ok := blockConfig[field.Key]; ok && v != nil {
			continue
		}

		var answer string
		err := huh.NewInput().
			Title(field.Key).
			Description(field.Description).
			Value(&answer).
			Run()
		if err != nil {
			return err
		}
		_, value, err := config.ParseSet(field.Key + "=" + answer)
		if err != nil {
			return err
		}
		blockConfig[field.Key] = value
	}
	return nil
}
