// Package config holds the settings for a test run against the file analyzer service.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all settings for a test run.
type Config struct {
	BaseURL    string
	ReportPath string
	// ScratchDir is where fixture files are created. Empty means the system temp directory.
	ScratchDir string
	BatchName  string
	Timeouts   Timeouts
	Thresholds Thresholds
}

// Timeouts are the per-request time limits for each analyzer endpoint.
type Timeouts struct {
	Health  time.Duration
	Single  time.Duration
	Batch   time.Duration
	History time.Duration
	Export  time.Duration
}

// Thresholds control how strict the result verification is. A threshold of 0 turns that check
// off.
type Thresholds struct {
	MinSinglePIIItems     int
	MinAccuracyCategories int
	ExpectedCategories    []string
}

// DefaultConfig returns a Config with every setting at its default.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:    DefaultBaseURL,
		ReportPath: DefaultReportPath,
		BatchName:  DefaultBatchName,
		Timeouts: Timeouts{
			Health:  DefaultHealthTimeout,
			Single:  DefaultSingleTimeout,
			Batch:   DefaultBatchTimeout,
			History: DefaultHistoryTimeout,
			Export:  DefaultExportTimeout,
		},
		Thresholds: Thresholds{
			MinSinglePIIItems:     DefaultMinSinglePIIItems,
			MinAccuracyCategories: DefaultMinAccuracyCategories,
			ExpectedCategories:    append([]string(nil), DefaultExpectedPIICategories...),
		},
	}
}

type yamlConfig struct {
	BaseURL    string `yaml:"base_url"`
	ReportPath string `yaml:"report_path"`
	ScratchDir string `yaml:"scratch_dir"`
	BatchName  string `yaml:"batch_name"`
	Timeouts   struct {
		Health  string `yaml:"health"`
		Single  string `yaml:"single"`
		Batch   string `yaml:"batch"`
		History string `yaml:"history"`
		Export  string `yaml:"export"`
	} `yaml:"timeouts"`
	Thresholds struct {
		MinSinglePIIItems     *int     `yaml:"min_single_pii_items"`
		MinAccuracyCategories *int     `yaml:"min_accuracy_categories"`
		ExpectedCategories    []string `yaml:"expected_categories"`
	} `yaml:"thresholds"`
}

// LoadConfig builds the configuration in order of increasing precedence: defaults, the YAML file
// at path (if path is non-empty), a .env file in the working directory, and then environment
// variables. A missing .env file is not an error; a missing config file that was explicitly
// requested is.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := cfg.applyYAML(data); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyYAML(data []byte) error {
	var y yamlConfig
	if err := yaml.Unmarshal(data, &y); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	setString(&c.BaseURL, y.BaseURL)
	setString(&c.ReportPath, y.ReportPath)
	setString(&c.ScratchDir, y.ScratchDir)
	setString(&c.BatchName, y.BatchName)

	for _, d := range []struct {
		name   string
		value  string
		target *time.Duration
	}{
		{"health", y.Timeouts.Health, &c.Timeouts.Health},
		{"single", y.Timeouts.Single, &c.Timeouts.Single},
		{"batch", y.Timeouts.Batch, &c.Timeouts.Batch},
		{"history", y.Timeouts.History, &c.Timeouts.History},
		{"export", y.Timeouts.Export, &c.Timeouts.Export},
	} {
		if d.value == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.value)
		if err != nil {
			return fmt.Errorf("invalid %s timeout %q: %w", d.name, d.value, err)
		}
		*d.target = parsed
	}

	if y.Thresholds.MinSinglePIIItems != nil {
		c.Thresholds.MinSinglePIIItems = *y.Thresholds.MinSinglePIIItems
	}
	if y.Thresholds.MinAccuracyCategories != nil {
		c.Thresholds.MinAccuracyCategories = *y.Thresholds.MinAccuracyCategories
	}
	if len(y.Thresholds.ExpectedCategories) != 0 {
		c.Thresholds.ExpectedCategories = y.Thresholds.ExpectedCategories
	}
	return nil
}

func (c *Config) applyEnv() {
	setString(&c.BaseURL, os.Getenv(EnvBaseURL))
	setString(&c.ReportPath, os.Getenv(EnvReportPath))
	setString(&c.ScratchDir, os.Getenv(EnvScratchDir))
}

// Validate reports settings that would make the test run meaningless.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL must not be empty")
	}
	if c.ReportPath == "" {
		return fmt.Errorf("report path must not be empty")
	}
	if c.Thresholds.MinSinglePIIItems < 0 || c.Thresholds.MinAccuracyCategories < 0 {
		return fmt.Errorf("thresholds must not be negative")
	}
	if c.Thresholds.MinAccuracyCategories > len(c.Thresholds.ExpectedCategories) {
		return fmt.Errorf("min_accuracy_categories (%d) is more than the number of expected categories (%d)",
			c.Thresholds.MinAccuracyCategories, len(c.Thresholds.ExpectedCategories))
	}
	return nil
}

func setString(target *string, value string) {
	if value != "" {
		*target = value
	}
}
