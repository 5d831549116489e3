package main

import (
	"fmt"
	"io"

	"github.com/launchdarkly/analyzer-contract-tests/framework"

	"github.com/fatih/color"
)

var (
	passedLabel  = color.New(color.FgGreen, color.Bold)
	failedLabel  = color.New(color.FgRed, color.Bold)
	skippedLabel = color.New(color.FgYellow)
)

// ConsoleTestLogger prints one status line per test case, followed by its details.
type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
	Verbose              bool
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	if c.Verbose {
		fmt.Fprintf(c.Out, "[%s]\n", id)
	}
}

// TestError does nothing, because every error is also part of the details that TestFinished
// prints.
func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, result framework.TestResult, debugOutput framework.CapturedOutput) {
	failed := !result.Success()
	if failed {
		failedLabel.Fprint(c.Out, "FAILED")
	} else {
		passedLabel.Fprint(c.Out, "PASSED")
	}
	fmt.Fprintf(c.Out, " - %s\n", id)
	if result.Details != "" {
		fmt.Fprintf(c.Out, "   Details: %s\n", result.Details)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.Out, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		skippedLabel.Fprintf(c.Out, "SKIPPED - %s\n", id)
	} else {
		skippedLabel.Fprintf(c.Out, "SKIPPED - %s (%s)\n", id, reason)
	}
}

func (c *ConsoleTestLogger) RunAborted(reason string) {
	failedLabel.Fprintln(c.Out, reason)
}
