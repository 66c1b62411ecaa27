// Package main provides a performance benchmarking tool for the tfvalidator CLI.
// It measures validation times across different directory sizes and worker counts,
// running each configuration multiple times and averaging the wall times,
// generating CSV output for performance analysis and documentation.
//
// Prerequisites:
// - tfvalidator binary installed and available in PATH
//
// Usage: go run benchmark/main.go [fixture-base-dir]
//
//	fixture-base-dir: Directory where benchmark fixtures are generated
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (average times per worker count).
type BenchmarkResult struct {
	Fixture    string
	Files      int
	SerialTime string
	HalfTime   string
	FullTime   string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	FixtureBase  string
	Timeout      time.Duration
	Runs         int
	FixtureSizes map[string]int
	FixtureOrder []string
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [fixture-base-dir]\n", os.Args[0])
		os.Exit(1)
	}
	fixtureBase := os.Args[1]

	config := BenchmarkConfig{
		FixtureBase: fixtureBase,
		Timeout:     5 * time.Minute,
		Runs:        3,
		FixtureSizes: map[string]int{
			"small":  50,
			"medium": 250,
			"large":  1000,
		},
		FixtureOrder: []string{"small", "medium", "large"},
	}

	if err := checkPrerequisites(); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generating fixtures under %s...\n", config.FixtureBase)
	if err := generateFixtures(config); err != nil {
		fmt.Printf("Failed to generate fixtures: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the tfvalidator binary exists
func checkPrerequisites() error {
	if _, err := exec.LookPath("tfvalidator"); err != nil {
		return fmt.Errorf("tfvalidator binary not found in PATH")
	}
	return nil
}

// generateFixtures writes a synthetic Terraform tree for each configured size.
// Every file references a shared local module that exists, so validation
// passes and the runs measure pure pipeline throughput.
func generateFixtures(config BenchmarkConfig) error {
	for _, name := range config.FixtureOrder {
		dir := filepath.Join(config.FixtureBase, name)
		moduleDir := filepath.Join(dir, "modules", "base")
		if err := os.MkdirAll(moduleDir, 0o755); err != nil {
			return err
		}
		moduleMain := filepath.Join(moduleDir, "main.tf")
		if err := os.WriteFile(moduleMain, []byte("variable \"name\" {}\n"), 0o644); err != nil {
			return err
		}
		for i := range config.FixtureSizes[name] {
			content := fmt.Sprintf("module \"app_%d\" {\n  source = \"./modules/base\"\n  name   = \"app-%d\"\n}\n", i, i)
			path := filepath.Join(dir, fmt.Sprintf("app_%04d.tf", i))
			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return err
			}
		}
	}
	return nil
}

// runBenchmarks executes all benchmark tests across the generated fixtures
func runBenchmarks(config BenchmarkConfig) []BenchmarkResult {
	var results []BenchmarkResult

	full := runtime.GOMAXPROCS(0)
	half := max(full/2, 1)

	fmt.Printf("Starting benchmark: %d fixtures, %v timeout, %d runs per configuration\n",
		len(config.FixtureOrder), config.Timeout, config.Runs)

	for _, fixture := range config.FixtureOrder {
		fmt.Printf("Benchmarking %s (%d files)\n", fixture, config.FixtureSizes[fixture])

		fixturePath := filepath.Join(config.FixtureBase, fixture)

		serialAvg := runPhase(config, fixturePath, 1, "Serial")
		halfAvg := runPhase(config, fixturePath, half, fmt.Sprintf("Half (%d workers)", half))
		fullAvg := runPhase(config, fixturePath, full, fmt.Sprintf("Full (%d workers)", full))

		fmt.Printf("  Serial average: %s, Half average: %s, Full average: %s\n", serialAvg, halfAvg, fullAvg)

		results = append(results, BenchmarkResult{
			Fixture:    fixture,
			Files:      config.FixtureSizes[fixture],
			SerialTime: serialAvg,
			HalfTime:   halfAvg,
			FullTime:   fullAvg,
		})
	}

	return results
}

// runPhase runs one worker-count configuration and returns the formatted average
func runPhase(config BenchmarkConfig, fixturePath string, workers int, phaseName string) string {
	fmt.Printf("  %s phase (%d runs)\n", phaseName, config.Runs)
	times := runBenchmark(config, fixturePath, workers)
	if len(times) == 0 {
		return "TIMEOUT"
	}
	var sum float64
	for _, t := range times {
		sum += t
	}
	return fmt.Sprintf("%.3fs", sum/float64(len(times)))
}

// runBenchmark executes the validate command multiple times with a worker count
// and returns the wall times of the successful runs
func runBenchmark(config BenchmarkConfig, fixturePath string, workers int) []float64 {
	// Structural audit only, so runs need neither the terraform binary nor network
	args := []string{
		"validate", fixturePath,
		"--skip-tool-checks",
		"--log-file=",
		"--color", "no",
		"--workers", strconv.Itoa(workers),
	}

	var times []float64
	for run := 1; run <= config.Runs; run++ {
		start := time.Now()

		cmd := exec.Command("tfvalidator", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}
	return times
}

// isSuccess checks if command output indicates successful completion
func isSuccess(output []byte) bool {
	outputStr := string(output)
	return strings.Contains(outputStr, "Validation completed in") &&
		strings.Contains(outputStr, "workers") &&
		strings.Contains(outputStr, "Status: ✅ PASSED")
}

// saveResults writes benchmark results to a timestamped CSV file
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/tfvalidator_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"fixture", "files", "serial_avg", "half_avg", "full_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		record := []string{result.Fixture, strconv.Itoa(result.Files), result.SerialTime, result.HalfTime, result.FullTime}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	for _, result := range results {
		fmt.Printf("  %-8s (%4d files): Serial: %s, Half: %s, Full: %s\n",
			result.Fixture, result.Files, result.SerialTime, result.HalfTime, result.FullTime)
	}

	fmt.Printf("Benchmark script completed successfully\n")
}
