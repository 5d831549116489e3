package analyzertests

import (
	"github.com/launchdarkly/analyzer-contract-tests/config"
	"github.com/launchdarkly/analyzer-contract-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	TestHealthCheck     = "API Health Check"
	TestSingleUpload    = "Single File Upload & Analysis"
	TestBatchUpload     = "Batch File Upload & Analysis"
	TestAnalysisHistory = "Analysis History Retrieval"
	TestExport          = "Excel Export"
	TestPIIAccuracy     = "PII Detection Accuracy"
)

// RunTestSuite runs every test case in order and returns the results. If the health check fails,
// the service is assumed to be unreachable and nothing else is run.
func RunTestSuite(
	harness *framework.TestHarness,
	cfg *config.Config,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, harness, cfg)

		if !t.Run(TestHealthCheck, DoHealthCheckTest) {
			t.Abort("API is not accessible. Stopping tests.")
			return
		}

		t.Run(TestSingleUpload, DoSingleUploadTest)

		var batchID ldvalue.OptionalString
		t.Run(TestBatchUpload, func(t *T) {
			batchID = DoBatchUploadTest(t)
		})

		t.Run(TestAnalysisHistory, DoAnalysisHistoryTest)

		t.Run(TestExport, func(t *T) {
			DoExportTest(t, batchID)
		})

		t.Run(TestPIIAccuracy, DoPIIAccuracyTest)
	})
}
