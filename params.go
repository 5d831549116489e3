package main

import (
	"github.com/launchdarkly/analyzer-contract-tests/framework"

	"github.com/spf13/cobra"
)

type commandParams struct {
	serviceURL string
	reportPath string
	configPath string
	filters    framework.RegexFilters
	debug      bool
	debugAll   bool
}

func (c *commandParams) addFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&c.serviceURL, "url", "", "base URL of the file analyzer service (overrides config and "+
		"environment)")
	fs.StringVar(&c.reportPath, "output", "", "path of the JSON report file (overrides config and environment)")
	fs.StringVar(&c.configPath, "config", "", "optional YAML file with timeouts, thresholds, and other settings")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")
}
