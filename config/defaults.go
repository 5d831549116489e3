package config

import "time"

const (
	// DefaultBaseURL is the analyzer deployment that the tests run against if nothing else is
	// configured.
	DefaultBaseURL = "https://cleanpii.preview.emergentagent.com"
	// DefaultReportPath is where the JSON report is written.
	DefaultReportPath = "backend_test_results.json"
	// DefaultBatchName is sent as the batch_name form field of the batch upload.
	DefaultBatchName = "test_batch_analysis"

	DefaultHealthTimeout  = 10 * time.Second
	DefaultSingleTimeout  = 30 * time.Second
	DefaultBatchTimeout   = 45 * time.Second
	DefaultHistoryTimeout = 15 * time.Second
	DefaultExportTimeout  = 20 * time.Second

	// DefaultMinSinglePIIItems is how many PII items the single-file upload must report. A
	// document with one each of several categories should produce at least this many.
	DefaultMinSinglePIIItems = 5
	// DefaultMinAccuracyCategories is how many of the expected categories the accuracy test
	// must find.
	DefaultMinAccuracyCategories = 5

	// Environment variables that override the defaults and the config file.
	EnvBaseURL    = "TARGET_API_BASE_URL"
	EnvReportPath = "TARGET_API_REPORT_PATH"
	EnvScratchDir = "TARGET_API_SCRATCH_DIR"
)

// DefaultExpectedPIICategories are the PII types that the accuracy fixture contains one of each.
var DefaultExpectedPIICategories = []string{
	"name",
	"ssn",
	"email",
	"phone",
	"credit_card",
	"address",
	"zip_code",
}
