package framework

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Results is the aggregate state of a test run. Tests holds every recorded test case in the
// order they ran; Failures is the subset that failed.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

// TestResult is the outcome of a single test case. It is never modified after it is recorded.
type TestResult struct {
	TestID    TestID
	Details   string
	Timestamp time.Time
	Errors    []error
	Skipped   bool
}

func (r TestResult) Success() bool {
	return len(r.Errors) == 0 && !r.Skipped
}

// OK is true if at least one test ran and none of them failed.
func (r Results) OK() bool {
	return len(r.Tests) != 0 && len(r.Failures) == 0
}

// Run returns the number of test cases that were recorded.
func (r Results) Run() int {
	return len(r.Tests)
}

// Passed returns the number of recorded test cases that succeeded.
func (r Results) Passed() int {
	return len(r.Tests) - len(r.Failures)
}

// SuccessRate returns the percentage of passed tests, or 0 if nothing ran.
func (r Results) SuccessRate() float64 {
	if len(r.Tests) == 0 {
		return 0
	}
	return float64(r.Passed()) / float64(len(r.Tests)) * 100
}

func (r *Results) record(result TestResult) {
	r.Tests = append(r.Tests, result)
	if !result.Success() {
		r.Failures = append(r.Failures, result)
	}
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// PrintResults writes the final summary of a test run.
func PrintResults(out io.Writer, results Results) {
	fmt.Fprintf(out, "Test Summary: %d/%d tests passed\n", results.Passed(), results.Run())
	fmt.Fprintf(out, "Success Rate: %.1f%%\n", results.SuccessRate())
	if results.OK() {
		fmt.Fprintln(out, "All tests passed!")
		return
	}
	if len(results.Failures) > 0 {
		fmt.Fprintln(out, "Some tests failed:")
		for _, f := range results.Failures {
			fmt.Fprintf(out, "  %s\n", f.TestID)
		}
	}
}
