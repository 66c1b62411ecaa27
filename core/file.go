package core

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/WilliamVaron23/tf-pipeline-validator/internal/contract"
	"github.com/WilliamVaron23/tf-pipeline-validator/internal/hclconf"
	"github.com/WilliamVaron23/tf-pipeline-validator/schema"
)

// fileValidator audits a single parsed file. Probe results are memoized per
// file so a URL that appears several times is only probed once.
type fileValidator struct {
	ctx        context.Context
	cfg        *contract.Config
	prober     contract.Prober
	path       string
	probeCache map[string]schema.ProbeResult
}

// validateFile parses one Terraform file and runs the structural audit.
func validateFile(ctx context.Context, cfg *contract.Config, prober contract.Prober, path string) schema.ValidationResult {
	cfg.Logger.Infof("Validating file: %s", path)

	v := &fileValidator{
		ctx:        ctx,
		cfg:        cfg,
		prober:     prober,
		path:       path,
		probeCache: make(map[string]schema.ProbeResult),
	}
	return v.validate()
}

func (v *fileValidator) validate() schema.ValidationResult {
	parsed, err := hclconf.ParseFile(v.path)
	if err != nil {
		v.cfg.Logger.Errorf("Error parsing file %s: %v", v.path, err)
		v.cfg.Logger.Errorf("Error validating file %s: %v", v.path, err)
		return schema.ValidationResult{
			FilePath: v.path,
			Issues:   []schema.Issue{{Kind: schema.ParseFailure, Detail: err.Error()}},
		}
	}

	var issues []schema.Issue
	issues = append(issues, v.checkModuleSources(parsed)...)
	issues = append(issues, v.checkURLReachability(parsed)...)

	return schema.ValidationResult{FilePath: v.path, Issues: issues}
}

// checkModuleSources audits every module block's source. Remote http(s)
// sources must answer a HEAD probe and scheme-less sources must exist on
// disk relative to the directory under validation. Sources with any other
// scheme (git, mercurial, s3) are outside the audit and skipped. Registry
// shorthand carries no scheme, so it goes through the disk check and fails
// when no matching local directory exists.
func (v *fileValidator) checkModuleSources(parsed *schema.ParsedConfig) []schema.Issue {
	var issues []schema.Issue
	for _, module := range parsed.BlocksOfType("module") {
		source, ok := module.AttrValue("source").(string)
		if !ok || source == "" {
			continue
		}

		switch sourceScheme(source) {
		case "http", "https":
			result := v.probe(source)
			if result.Reachable {
				continue
			}
			if result.StatusCode == 0 {
				v.cfg.Logger.Warnf("Error reaching module source URL %s: %s", source, result.Detail)
			}
			issues = append(issues, schema.Issue{
				Kind:   schema.RemoteSourceUnreachable,
				Module: module.Name(),
				Target: source,
				Detail: result.Detail,
			})
		case "":
			localPath := filepath.Join(v.cfg.TargetDir, source)
			if _, err := os.Stat(localPath); err != nil {
				issues = append(issues, schema.Issue{
					Kind:   schema.LocalSourceMissing,
					Module: module.Name(),
					Target: source,
				})
			}
		}
	}
	return issues
}

// checkURLReachability probes every URL literal found in the file.
func (v *fileValidator) checkURLReachability(parsed *schema.ParsedConfig) []schema.Issue {
	var issues []schema.Issue
	for _, target := range ExtractURLs(parsed) {
		result := v.probe(target)
		if result.Reachable {
			continue
		}
		if result.StatusCode == 0 {
			v.cfg.Logger.Warnf("Error reaching URL %s: %s", target, result.Detail)
		}
		issues = append(issues, schema.Issue{
			Kind:   schema.URLUnreachable,
			Target: target,
			Detail: result.Detail,
		})
	}
	return issues
}

// probe performs a memoized reachability probe.
func (v *fileValidator) probe(target string) schema.ProbeResult {
	if result, ok := v.probeCache[target]; ok {
		return result
	}
	result := v.prober.Probe(v.ctx, target)
	v.probeCache[target] = result
	return result
}

// sourceScheme extracts the lowercased URL scheme from a module source.
// Malformed sources classify as scheme-less and fall through to the
// local-path branch.
func sourceScheme(source string) string {
	u, err := url.Parse(source)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Scheme)
}
