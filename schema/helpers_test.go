package schema_test

import (
	"testing"

	"github.com/WilliamVaron23/tf-pipeline-validator/schema"
	"github.com/stretchr/testify/assert"
)

func TestIsURLString(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"HTTP URL", "http://example.com", true},
		{"HTTPS URL", "https://example.com/path?q=1", true},
		{"Uppercase Scheme", "HTTPS://EXAMPLE.COM", true},
		{"Mixed Case Scheme", "HtTp://example.com", true},
		{"Leading Whitespace", "  https://example.com", true},
		{"Trailing Whitespace", "https://example.com  ", true},
		{"Local Path", "./modules/vpc", false},
		{"Registry Shorthand", "registry.terraform.io/hashicorp/aws", false},
		{"Git Scheme", "git::https://example.com/repo.git", false},
		{"Scheme Only Substring", "not http://example.com", false},
		{"Empty", "", false},
		{"FTP", "ftp://example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, schema.IsURLString(tt.value))
		})
	}
}
