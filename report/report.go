// Package report writes the results of a test run to a JSON file.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/launchdarkly/analyzer-contract-tests/framework"
)

// Output is the document written at the end of a run.
type Output struct {
	Summary     Summary      `json:"summary"`
	TestResults []TestResult `json:"test_results"`
}

type Summary struct {
	TotalTests  int     `json:"total_tests"`
	PassedTests int     `json:"passed_tests"`
	SuccessRate float64 `json:"success_rate"`
	Timestamp   string  `json:"timestamp"`
	RunID       string  `json:"run_id,omitempty"`
	Target      string  `json:"target,omitempty"`
}

type TestResult struct {
	TestName  string `json:"test_name"`
	Success   bool   `json:"success"`
	Details   string `json:"details"`
	Timestamp string `json:"timestamp"`
}

// RunInfo identifies the run in the report summary.
type RunInfo struct {
	RunID  string
	Target string
}

// Build converts framework results into the report document.
func Build(results framework.Results, info RunInfo, now time.Time) Output {
	out := Output{
		Summary: Summary{
			TotalTests:  results.Run(),
			PassedTests: results.Passed(),
			SuccessRate: results.SuccessRate(),
			Timestamp:   formatTime(now),
			RunID:       info.RunID,
			Target:      info.Target,
		},
		TestResults: make([]TestResult, 0, len(results.Tests)),
	}
	for _, r := range results.Tests {
		out.TestResults = append(out.TestResults, TestResult{
			TestName:  r.TestID.String(),
			Success:   r.Success(),
			Details:   r.Details,
			Timestamp: formatTime(r.Timestamp),
		})
	}
	return out
}

// Write builds the report and writes it to path, creating the parent directory if necessary.
func Write(path string, results framework.Results, info RunInfo, now time.Time) error {
	data, err := json.MarshalIndent(Build(results, info, now), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}

// Read loads a report previously written by Write.
func Read(path string) (*Output, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var out Output
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &out, nil
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
