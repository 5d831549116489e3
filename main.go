package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/launchdarkly/analyzer-contract-tests/analyzertests"
	"github.com/launchdarkly/analyzer-contract-tests/config"
	"github.com/launchdarkly/analyzer-contract-tests/framework"
	"github.com/launchdarkly/analyzer-contract-tests/report"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const separatorWidth = 60

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute parses the command line, runs the test suite, and returns the process exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	var params commandParams
	exitCode := 0
	cmd := &cobra.Command{
		Use:           "analyzer-contract-tests",
		Short:         "End-to-end tests for the Security File Analyzer API",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := runTests(params, stdout)
			exitCode = code
			return err
		},
	}
	params.addFlags(cmd)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	return exitCode
}

func runTests(params commandParams, out io.Writer) (int, error) {
	cfg, err := config.LoadConfig(params.configPath)
	if err != nil {
		return 1, err
	}
	if params.serviceURL != "" {
		cfg.BaseURL = params.serviceURL
	}
	if params.reportPath != "" {
		cfg.ReportPath = params.reportPath
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = framework.NewWriterLogger(out, "")
	}
	harness := framework.NewTestHarness(cfg.BaseURL, nil, mainDebugLogger)

	fmt.Fprintf(out, "Starting Security File Analyzer API Tests against %s\n", cfg.BaseURL)
	fmt.Fprintln(out, strings.Repeat("=", separatorWidth))
	framework.PrintFilterDescription(out, params.filters)

	testLogger := &ConsoleTestLogger{
		Out:                  out,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
		Verbose:              params.debugAll,
	}
	results := analyzertests.RunTestSuite(harness, cfg, params.filters.AsFilter, testLogger)

	fmt.Fprintln(out)
	fmt.Fprintln(out, strings.Repeat("=", separatorWidth))
	framework.PrintResults(out, results)

	info := report.RunInfo{RunID: uuid.NewString(), Target: cfg.BaseURL}
	if err := report.Write(cfg.ReportPath, results, info, time.Now()); err != nil {
		return 1, err
	}
	fmt.Fprintf(out, "\nDetailed results saved to: %s\n", cfg.ReportPath)

	if !results.OK() {
		return 1, nil
	}
	return 0, nil
}
