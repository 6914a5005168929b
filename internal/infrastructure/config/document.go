// Package config loads invocation documents: the YAML or JSON files that
// carry one block's config map, optional template variables and the
// operation name.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Document is one invocation document.
//
//	operation: DescribeTransitGateways
//	vars:
//	  tgw: tgw-0123456789abcdef0
//	config:
//	  region: us-east-1
//	  TransitGatewayIds: ["{{ .vars.tgw }}"]
type Document struct {
	Vars      map[string]any `yaml:"vars"`
	Config    map[string]any `yaml:"config"`
	Operation string         `yaml:"operation"`
}

// DocumentLoader reads invocation documents and resolves their variables.
type DocumentLoader struct {
	substitutor *VariableSubstitutor
}

// NewDocumentLoader creates a new document loader.
func NewDocumentLoader() *DocumentLoader {
	return &DocumentLoader{substitutor: NewVariableSubstitutor()}
}

// Load reads the document at path.
func (l *DocumentLoader) Load(path string) (*Document, error) {
	// Security: Use os.OpenRoot to prevent path traversal attacks
	root, err := os.OpenRoot(filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open document directory: %w", err)
	}
	defer func() {
		_ = root.Close() // Best-effort cleanup
	}()

	file, err := root.Open(filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	return l.LoadFromReader(file)
}

// LoadFromReader decodes a document and substitutes {{ .vars.x }}
// references in its config.
func (l *DocumentLoader) LoadFromReader(r io.Reader) (*Document, error) {
	var doc Document

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &Document{Config: map[string]any{}}, nil
		}
		return nil, fmt.Errorf("failed to decode invocation document: %w", err)
	}
	if doc.Config == nil {
		doc.Config = map[string]any{}
	}

	if err := l.substitutor.Substitute(&doc); err != nil {
		return nil, fmt.Errorf("variable substitution failed: %w", err)
	}

	return &doc, nil
}
