package schema

// ParsedConfig is the structural form of a single Terraform file. Blocks
// appear in declaration order so repeated runs report issues in a stable
// order. A ParsedConfig lives for the duration of one file's validation and
// is never shared across files.
type ParsedConfig struct {
	Path   string   // File the configuration was parsed from
	Blocks []*Block // Top level blocks in declaration order
}

// Block is one configuration block, e.g. a module, resource or provider.
type Block struct {
	Type   string   // Block type, e.g. "module"
	Labels []string // Block labels, e.g. the module name
	Attrs  []Attr   // Attributes in declaration order
	Blocks []*Block // Nested blocks in declaration order
}

// Attr is a single attribute with its decoded value. Values are plain Go
// types: string, bool, float64, []any or map[string]any.
type Attr struct {
	Name  string
	Value any
}

// Name returns the block's first label, or "" when it has none.
func (b *Block) Name() string {
	if len(b.Labels) == 0 {
		return ""
	}
	return b.Labels[0]
}

// AttrValue returns the named attribute's value, or nil when absent.
func (b *Block) AttrValue(name string) any {
	for _, a := range b.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return nil
}

// BlocksOfType returns the top level blocks with the given type, in
// declaration order.
func (c *ParsedConfig) BlocksOfType(blockType string) []*Block {
	var out []*Block
	for _, b := range c.Blocks {
		if b.Type == blockType {
			out = append(out, b)
		}
	}
	return out
}
