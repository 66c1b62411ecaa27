package schema_test

import (
	"testing"

	"github.com/WilliamVaron23/tf-pipeline-validator/schema"
	"github.com/stretchr/testify/assert"
)

func TestIssueString(t *testing.T) {
	tests := []struct {
		name     string
		issue    schema.Issue
		expected string
	}{
		{
			"Remote Source Unreachable",
			schema.Issue{Kind: schema.RemoteSourceUnreachable, Module: "vpc", Target: "https://example.com/vpc.zip", Detail: "HTTP status 404"},
			"Module vpc: Unreachable source URL https://example.com/vpc.zip",
		},
		{
			"Local Source Missing",
			schema.Issue{Kind: schema.LocalSourceMissing, Module: "network", Target: "./modules/network"},
			"Module network: Local source path does not exist ./modules/network",
		},
		{
			"URL Unreachable",
			schema.Issue{Kind: schema.URLUnreachable, Target: "https://example.com/ami.json"},
			"Unreachable URL https://example.com/ami.json",
		},
		{
			"Parse Failure",
			schema.Issue{Kind: schema.ParseFailure, Target: "main.tf", Detail: "main.tf:3,1-2: Unclosed configuration block"},
			"Error during validation: main.tf:3,1-2: Unclosed configuration block",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.issue.String())
		})
	}
}

func TestRenderIssues(t *testing.T) {
	issues := []schema.Issue{
		{Kind: schema.LocalSourceMissing, Module: "a", Target: "./missing"},
		{Kind: schema.URLUnreachable, Target: "http://example.com"},
	}

	rendered := schema.RenderIssues(issues)

	assert.Equal(t, []string{
		"Module a: Local source path does not exist ./missing",
		"Unreachable URL http://example.com",
	}, rendered)
}

func TestRenderIssuesEmpty(t *testing.T) {
	rendered := schema.RenderIssues(nil)
	assert.NotNil(t, rendered)
	assert.Len(t, rendered, 0)
}
