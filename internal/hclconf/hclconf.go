// Package hclconf parses Terraform configuration files into a plain
// block/attribute tree that the validation pipeline can walk without
// depending on HCL types.
package hclconf

import (
	"fmt"
	"sort"

	"github.com/WilliamVaron23/tf-pipeline-validator/schema"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
)

// ParseError reports a file that could not be parsed as HCL.
type ParseError struct {
	Path  string
	Diags hcl.Diagnostics
}

// Error returns the first diagnostic with a count of the rest.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %s", e.Path, e.Diags.Error())
}

// ParseFile reads a Terraform file and decodes every top-level block and
// attribute into schema.ParsedConfig. Expressions that cannot be evaluated
// statically (references, function calls) are kept as their raw source text.
func ParseFile(path string) (*schema.ParsedConfig, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, &ParseError{Path: path, Diags: diags}
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("parsing %s: unexpected body type %T", path, file.Body)
	}

	cfg := &schema.ParsedConfig{Path: path}
	cfg.Blocks = convertBlocks(body.Blocks, file.Bytes)
	// Terraform files normally have no top-level attributes, but tfvars-style
	// content is still representable as an unlabeled block.
	if len(body.Attributes) > 0 {
		cfg.Blocks = append(cfg.Blocks, &schema.Block{
			Type:  "",
			Attrs: convertAttributes(body.Attributes, file.Bytes),
		})
	}
	return cfg, nil
}

func convertBlocks(blocks hclsyntax.Blocks, src []byte) []*schema.Block {
	out := make([]*schema.Block, 0, len(blocks))
	for _, blk := range blocks {
		out = append(out, &schema.Block{
			Type:   blk.Type,
			Labels: blk.Labels,
			Attrs:  convertAttributes(blk.Body.Attributes, src),
			Blocks: convertBlocks(blk.Body.Blocks, src),
		})
	}
	return out
}

// convertAttributes flattens an attribute map into source order so that
// downstream issue reporting is deterministic.
func convertAttributes(attrs hclsyntax.Attributes, src []byte) []schema.Attr {
	ordered := make([]*hclsyntax.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].SrcRange.Start.Byte < ordered[j].SrcRange.Start.Byte
	})

	out := make([]schema.Attr, 0, len(ordered))
	for _, attr := range ordered {
		out = append(out, schema.Attr{
			Name:  attr.Name,
			Value: exprValue(attr.Expr, src),
		})
	}
	return out
}
