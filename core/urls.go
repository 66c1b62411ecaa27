package core

import (
	"sort"
	"strings"

	"github.com/WilliamVaron23/tf-pipeline-validator/schema"
)

// maxURLScanDepth caps recursion into nested values so that pathological
// configurations cannot blow the stack.
const maxURLScanDepth = 64

// ExtractURLs collects every string literal in the parsed configuration that
// looks like an http or https URL, in source order with duplicates removed.
// Module source attributes are excluded here; the module source check audits
// those separately.
func ExtractURLs(parsed *schema.ParsedConfig) []string {
	seen := make(map[string]struct{})
	var urls []string

	var scanValue func(value any, depth int)
	scanValue = func(value any, depth int) {
		if depth > maxURLScanDepth {
			return
		}
		switch val := value.(type) {
		case string:
			if !schema.IsURLString(val) {
				return
			}
			trimmed := strings.TrimSpace(val)
			if _, ok := seen[trimmed]; ok {
				return
			}
			seen[trimmed] = struct{}{}
			urls = append(urls, trimmed)
		case []any:
			for _, item := range val {
				scanValue(item, depth+1)
			}
		case map[string]any:
			for _, key := range sortedKeys(val) {
				scanValue(val[key], depth+1)
			}
		}
	}

	var scanBlock func(block *schema.Block, depth int)
	scanBlock = func(block *schema.Block, depth int) {
		if depth > maxURLScanDepth {
			return
		}
		isModule := block.Type == "module"
		for _, attr := range block.Attrs {
			if isModule && attr.Name == "source" {
				continue
			}
			scanValue(attr.Value, depth+1)
		}
		for _, child := range block.Blocks {
			scanBlock(child, depth+1)
		}
	}

	for _, block := range parsed.Blocks {
		scanBlock(block, 0)
	}
	return urls
}

// sortedKeys returns map keys in lexical order so the scan output is stable.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
