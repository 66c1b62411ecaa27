package core

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/WilliamVaron23/tf-pipeline-validator/internal/contract"
	"github.com/WilliamVaron23/tf-pipeline-validator/schema"
)

// ValidateDirectory validates every Terraform file under cfg.TargetDir and
// assembles the directory report. Tool checks run first, then each
// discovered file is parsed and audited by a worker pool. Results keep
// discovery order regardless of worker count.
func ValidateDirectory(ctx context.Context, cfg *contract.Config, client contract.TerraformClient, prober contract.Prober) (*schema.DirectoryReport, error) {
	logger := cfg.Logger
	logger.Infof("Initializing validator for directory: %s", cfg.TargetDir)

	report := &schema.DirectoryReport{Directory: cfg.TargetDir}

	// --- 1. Empty Directory Check ---
	hasFiles, err := hasTerraformFiles(cfg.TargetDir)
	if err != nil {
		return nil, err
	}
	if !hasFiles {
		logger.Warnf("No Terraform files found in %s", cfg.TargetDir)
		return report, nil
	}

	// --- 2. Tool Check Phase ---
	if !cfg.SkipToolChecks {
		report.Checks = runToolChecks(ctx, cfg, client)
	}

	// --- 3. File Discovery ---
	files, err := discoverFiles(cfg)
	if err != nil {
		return nil, err
	}

	// --- 4. Per-File Validation ---
	report.Results = validateFiles(ctx, cfg, prober, files)

	return report, nil
}

// hasTerraformFiles reports whether the directory itself (not its subtree)
// contains at least one .tf file.
func hasTerraformFiles(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), schema.TerraformExt) {
			return true, nil
		}
	}
	return false, nil
}

// discoverFiles walks the directory tree and collects .tf files in walk
// order. Unreadable subtrees are logged and skipped.
func discoverFiles(cfg *contract.Config) ([]string, error) {
	var files []string
	err := filepath.WalkDir(cfg.TargetDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == cfg.TargetDir {
				return walkErr
			}
			cfg.Logger.Warnf("Skipping unreadable path %s: %v", path, walkErr)
			return nil
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), schema.TerraformExt) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// validateFiles fans the discovered files out to cfg.Workers goroutines.
// Each worker writes to a unique index of the results slice, which keeps
// the output in discovery order without any post-sorting.
func validateFiles(ctx context.Context, cfg *contract.Config, prober contract.Prober, files []string) []schema.ValidationResult {
	results := make([]schema.ValidationResult, len(files))
	indexCh := make(chan int, len(files))
	var wg sync.WaitGroup

	// Start worker pool
	for range cfg.Workers {
		wg.Go(func() {
			for idx := range indexCh {
				results[idx] = validateFile(ctx, cfg, prober, files[idx])
			}
		})
	}

	// Send file indexes to worker channel
	for idx := range files {
		indexCh <- idx
	}
	close(indexCh)

	// Wait for all workers to finish processing
	wg.Wait()

	return results
}
