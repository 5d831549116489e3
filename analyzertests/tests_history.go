package analyzertests

import (
	"github.com/launchdarkly/analyzer-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func DoAnalysisHistoryTest(t *T) {
	resp, err := t.API().AnalysisHistory(t.DebugLogger())
	requireOKResponse(t, resp, err)

	history := servicedef.ParseHistoryResponse(resp.Body)
	t.Detailf("Status: %d, Single files: %d, Batches: %d",
		resp.StatusCode, history.SingleFileCount(), history.BatchCount())
}

// DoExportTest downloads the export for the batch created earlier in the run. Without a batch ID
// there is nothing to export, so the test case is skipped, which counts as a failure.
func DoExportTest(t *T, batchID ldvalue.OptionalString) {
	if !batchID.IsDefined() {
		t.SkipWithReason("No batch ID available for testing")
	}

	resp, err := t.API().ExportResults(batchID.StringValue(), t.DebugLogger())
	requireOKResponse(t, resp, err)

	contentType := resp.Header.Get("Content-Type")
	t.Detailf("Status: %d, Content-Type: %s, Size: %d bytes, Is Excel: %t",
		resp.StatusCode, contentType, len(resp.Body), isSpreadsheetContentType(contentType))
}
