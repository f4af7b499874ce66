package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/azkrishpy/aws-crt-benchmarker/internal/component"
	"github.com/azkrishpy/aws-crt-benchmarker/internal/ctxlog"
	"github.com/azkrishpy/aws-crt-benchmarker/internal/fsutil"
	"github.com/azkrishpy/aws-crt-benchmarker/internal/registry"
	"github.com/azkrishpy/aws-crt-benchmarker/internal/schema"
)

// Loader parses registry manifests written in HCL.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every .hcl file under path (a single file or a directory),
// decodes the component blocks, and builds a validated registry from them in
// file-then-declaration order. The resulting registry fully replaces the
// built-in table.
func (l *Loader) Load(ctx context.Context, path string) (*registry.Registry, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading registry manifest.", "path", path)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find manifest files in %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl manifest files found at %s", path)
	}

	parser := hclparse.NewParser()
	var defs []component.Component
	for _, file := range files {
		fileDefs, err := l.loadFile(file, parser)
		if err != nil {
			return nil, err
		}
		defs = append(defs, fileDefs...)
	}
	logger.Debug("Manifest components decoded.", "count", len(defs), "files", len(files))

	reg, err := registry.New(defs)
	if err != nil {
		return nil, fmt.Errorf("manifest at %s: %w", path, err)
	}
	return reg, nil
}

// loadFile parses a single manifest file and translates its component blocks.
func (l *Loader) loadFile(filePath string, parser *hclparse.Parser) ([]component.Component, error) {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest file %s: %w", filePath, diags)
	}

	var parsed schema.ManifestFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode manifest file %s: %w", filePath, diags)
	}

	defs := make([]component.Component, 0, len(parsed.Components))
	for _, block := range parsed.Components {
		c, err := translateComponent(block)
		if err != nil {
			return nil, fmt.Errorf("in manifest file %s: %w", filePath, err)
		}
		defs = append(defs, c)
	}
	return defs, nil
}
