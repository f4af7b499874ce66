package hcl

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/azkrishpy/aws-crt-benchmarker/internal/component"
	"github.com/azkrishpy/aws-crt-benchmarker/internal/schema"
)

// translateComponent converts a decoded HCL component block into the
// registry model. Artifact checks are only populated when the manifest
// declares an artifacts block; otherwise the registry derives defaults from
// the id and kind.
func translateComponent(block *schema.Component) (component.Component, error) {
	kind, err := component.ParseKind(block.Kind)
	if err != nil {
		return component.Component{}, fmt.Errorf("component %q: %w", block.ID, err)
	}

	deps, err := dependsOnList(block)
	if err != nil {
		return component.Component{}, err
	}

	c := component.Component{
		ID:        block.ID,
		Kind:      kind,
		DependsOn: deps,
	}

	if block.Artifacts != nil {
		for _, dir := range block.Artifacts.Dirs {
			c.Artifacts = append(c.Artifacts, component.Artifact{Path: dir, Dir: true})
		}
		for _, file := range block.Artifacts.Files {
			c.Artifacts = append(c.Artifacts, component.Artifact{Path: file})
		}
	}

	return c, nil
}

// dependsOnList evaluates the depends_on expression into a string slice,
// preserving element order. An absent attribute yields no dependencies.
func dependsOnList(block *schema.Component) ([]string, error) {
	if block.DependsOn == nil {
		return nil, nil
	}

	val, diags := block.DependsOn.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("component %q: invalid depends_on: %w", block.ID, diags)
	}
	if val.IsNull() {
		return nil, nil
	}

	val, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("component %q: depends_on must be a list of strings: %w", block.ID, err)
	}

	var deps []string
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		deps = append(deps, elem.AsString())
	}
	return deps, nil
}
