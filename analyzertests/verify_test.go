package analyzertests

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHasEnoughPIIItems(t *testing.T) {
	assert.True(t, hasEnoughPIIItems(5, 5))
	assert.True(t, hasEnoughPIIItems(9, 5))
	assert.False(t, hasEnoughPIIItems(4, 5))
	assert.False(t, hasEnoughPIIItems(0, 5))
}

func TestDetectedCategories(t *testing.T) {
	assert.Equal(t, []string{"name", "ssn", "email", "phone", "address"},
		detectedCategories(allCategories, []string{"address", "phone", "email", "ssn", "name", "name"}))
	assert.Equal(t, []string{"email", "phone"},
		detectedCategories(allCategories, []string{"email", "phone", "drivers_license", "bank_account"}))
	assert.Equal(t, []string{}, detectedCategories(allCategories, nil))
}

func TestCategoryCoverage(t *testing.T) {
	fiveTypes := detectedCategories(allCategories, []string{"name", "ssn", "email", "phone", "address"})
	assert.True(t, hasEnoughCategories(fiveTypes, 5))

	twoTypes := detectedCategories(allCategories, []string{"email", "phone"})
	assert.False(t, hasEnoughCategories(twoTypes, 5))

	repeated := detectedCategories(allCategories, []string{"email", "email", "email", "email", "email"})
	assert.False(t, hasEnoughCategories(repeated, 5))
}

func TestIsSpreadsheetContentType(t *testing.T) {
	assert.True(t, isSpreadsheetContentType(spreadsheetContentType))
	assert.True(t, isSpreadsheetContentType("application/vnd.ms-excel"))
	assert.True(t, isSpreadsheetContentType("Application/Vnd.MS-Excel; charset=binary"))
	assert.False(t, isSpreadsheetContentType("application/json"))
	assert.False(t, isSpreadsheetContentType(""))
}

func TestSingleUploadThreshold(t *testing.T) {
	cfg := testConfig(t)

	mock := newMockAnalyzer()
	mock.single = jsonHandler(200, piiResponse("name", "ssn", "email", "phone", "credit_card"))
	result := runSingleTest(t, cfg, mock, DoSingleUploadTest)
	assert.True(t, result.Success(), result.Details)

	mock.single = jsonHandler(200, piiResponse("ssn", "email", "phone", "credit_card"))
	result = runSingleTest(t, cfg, mock, DoSingleUploadTest)
	assert.False(t, result.Success())
	assert.Equal(t, "Status: 200, PII detected: 4, File type: txt - Expected at least 5 PII items, only found 4",
		result.Details)

	mock.single = jsonHandler(200, map[string]interface{}{"file_type": "txt"})
	result = runSingleTest(t, cfg, mock, DoSingleUploadTest)
	assert.False(t, result.Success())
	assert.Contains(t, result.Details, "PII detected: 0")

	cfg.Thresholds.MinSinglePIIItems = 4
	mock.single = jsonHandler(200, piiResponse("ssn", "email", "phone", "credit_card"))
	result = runSingleTest(t, cfg, mock, DoSingleUploadTest)
	assert.True(t, result.Success(), result.Details)
}

func TestPIIAccuracyThreshold(t *testing.T) {
	cfg := testConfig(t)
	mock := newMockAnalyzer()

	mock.single = jsonHandler(200, piiResponse("name", "ssn", "email", "phone", "address"))
	result := runSingleTest(t, cfg, mock, DoPIIAccuracyTest)
	assert.True(t, result.Success(), result.Details)
	assert.Equal(t, "PII detected: 5, Types found: [name ssn email phone address], "+
		"All types: [name ssn email phone address]", result.Details)

	mock.single = jsonHandler(200, piiResponse("email", "phone"))
	result = runSingleTest(t, cfg, mock, DoPIIAccuracyTest)
	assert.False(t, result.Success())
	assert.Contains(t, result.Details, "Expected at least 5 of 7 PII categories, found 2")

	mock.single = jsonHandler(200, piiResponse("email", "phone", "drivers_license", "bank_account", "email"))
	result = runSingleTest(t, cfg, mock, DoPIIAccuracyTest)
	assert.False(t, result.Success())

	requireNoFilesLeft(t, cfg.ScratchDir)
}

func TestSingleUploadAndAccuracyUseDifferentDocuments(t *testing.T) {
	cfg := testConfig(t)
	mock := newMockAnalyzer()
	mock.single = handlerByUploadedFilename(map[string]http.Handler{
		singleUploadDocument.Filename: jsonHandler(200, piiResponse("name", "ssn", "email", "phone", "credit_card", "address")),
		accuracyDocument.Filename:     jsonHandler(200, piiResponse("email", "phone")),
	})

	results := runSuite(t, cfg, mock, nil)

	assert.True(t, resultNamed(t, results, TestSingleUpload).Success())
	assert.False(t, resultNamed(t, results, TestPIIAccuracy).Success())
}

func TestRequestTimeoutIsATestFailure(t *testing.T) {
	cfg := testConfig(t)
	cfg.Timeouts.History = 50 * time.Millisecond
	mock := newMockAnalyzer()
	mock.history = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	})

	results := runSuite(t, cfg, mock, nil)

	assert.Equal(t, 6, results.Run())
	history := resultNamed(t, results, TestAnalysisHistory)
	assert.False(t, history.Success())
	assert.Contains(t, history.Details, "Error: ")
	assert.Contains(t, history.Details, "deadline exceeded")
	assert.True(t, resultNamed(t, results, TestPIIAccuracy).Success())
}
