package schema_test

import (
	"testing"

	"github.com/WilliamVaron23/tf-pipeline-validator/schema"
	"github.com/stretchr/testify/assert"
)

func TestBlockName(t *testing.T) {
	named := &schema.Block{Type: "module", Labels: []string{"vpc"}}
	assert.Equal(t, "vpc", named.Name())

	multi := &schema.Block{Type: "resource", Labels: []string{"aws_instance", "web"}}
	assert.Equal(t, "aws_instance", multi.Name())

	unnamed := &schema.Block{Type: "terraform"}
	assert.Equal(t, "", unnamed.Name())
}

func TestBlockAttrValue(t *testing.T) {
	block := &schema.Block{
		Type:   "module",
		Labels: []string{"vpc"},
		Attrs: []schema.Attr{
			{Name: "source", Value: "./modules/vpc"},
			{Name: "cidr", Value: "10.0.0.0/16"},
		},
	}

	assert.Equal(t, "./modules/vpc", block.AttrValue("source"))
	assert.Equal(t, "10.0.0.0/16", block.AttrValue("cidr"))
	assert.Nil(t, block.AttrValue("missing"))
}

func TestBlocksOfType(t *testing.T) {
	cfg := &schema.ParsedConfig{
		Path: "main.tf",
		Blocks: []*schema.Block{
			{Type: "module", Labels: []string{"first"}},
			{Type: "resource", Labels: []string{"aws_instance", "web"}},
			{Type: "module", Labels: []string{"second"}},
		},
	}

	modules := cfg.BlocksOfType("module")
	assert.Len(t, modules, 2)
	assert.Equal(t, "first", modules[0].Name())
	assert.Equal(t, "second", modules[1].Name())

	assert.Empty(t, cfg.BlocksOfType("provider"))
}
