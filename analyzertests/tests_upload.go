package analyzertests

import (
	"github.com/launchdarkly/analyzer-contract-tests/framework"
	"github.com/launchdarkly/analyzer-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// requireOKResponse fails the test case immediately if the request could not be made or did not
// return a 200 status.
func requireOKResponse(t *T, resp *framework.ServiceResponse, err error) {
	if err != nil {
		t.Errorf("Error: %s", err)
		t.FailNow()
	}
	if resp.StatusCode != 200 {
		t.Errorf("Status: %d, Error: %s", resp.StatusCode, resp.BodyString())
		t.FailNow()
	}
}

func DoSingleUploadTest(t *T) {
	WithFixtures(t, []FixtureSpec{singleUploadDocument}, func(fixtures []Fixture) {
		resp, err := t.API().UploadSingle(fixtures[0], t.DebugLogger())
		requireOKResponse(t, resp, err)

		result := servicedef.ParseUploadResponse(resp.Body)
		count := len(result.PIIDetected())
		t.Detailf("Status: %d, PII detected: %d, File type: %s", resp.StatusCode, count, result.FileType())

		minItems := t.Thresholds().MinSinglePIIItems
		if hasEnoughPIIItems(count, minItems) {
			t.Detailf("PII detection working correctly")
		} else {
			t.Errorf("Expected at least %d PII items, only found %d", minItems, count)
		}
	})
}

// DoBatchUploadTest returns the batch ID assigned by the analyzer, if any.
func DoBatchUploadTest(t *T) ldvalue.OptionalString {
	var batchID ldvalue.OptionalString
	WithFixtures(t, batchDocuments, func(fixtures []Fixture) {
		resp, err := t.API().UploadBatch(fixtures, t.BatchName(), t.DebugLogger())
		requireOKResponse(t, resp, err)

		result := servicedef.ParseBatchResponse(resp.Body)
		batchID = result.ID()
		t.Detailf("Status: %d, Files processed: %d, Batch ID: %s",
			resp.StatusCode, result.FilesProcessed(), batchID.OrElse("<none>"))
	})
	return batchID
}

func DoPIIAccuracyTest(t *T) {
	WithFixtures(t, []FixtureSpec{accuracyDocument}, func(fixtures []Fixture) {
		resp, err := t.API().UploadSingle(fixtures[0], t.DebugLogger())
		requireOKResponse(t, resp, err)

		result := servicedef.ParseUploadResponse(resp.Body)
		types := result.PIITypes()
		thresholds := t.Thresholds()
		found := detectedCategories(thresholds.ExpectedCategories, types)
		t.Detailf("PII detected: %d, Types found: %v, All types: %v", len(result.PIIDetected()), found, types)

		if !hasEnoughCategories(found, thresholds.MinAccuracyCategories) {
			t.Errorf("Expected at least %d of %d PII categories, found %d",
				thresholds.MinAccuracyCategories, len(thresholds.ExpectedCategories), len(found))
		}
	})
}
