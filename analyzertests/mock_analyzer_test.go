package analyzertests

import (
	"encoding/json"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/launchdarkly/analyzer-contract-tests/config"
	"github.com/launchdarkly/analyzer-contract-tests/framework"
	"github.com/launchdarkly/analyzer-contract-tests/servicedef"

	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"

	"github.com/stretchr/testify/require"
)

const spreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// mockAnalyzer routes requests to one handler per analyzer endpoint. By default every endpoint
// succeeds with a response that satisfies every test case.
type mockAnalyzer struct {
	health  http.Handler
	single  http.Handler
	batch   http.Handler
	history http.Handler
	export  http.Handler
}

func jsonHandler(status int, body interface{}) http.Handler {
	data, err := json.Marshal(body)
	if err != nil {
		panic(err)
	}
	headers := make(http.Header)
	headers.Set("Content-Type", "application/json")
	return httphelpers.HandlerWithResponse(status, headers, data)
}

func piiResponse(types ...string) map[string]interface{} {
	items := []interface{}{}
	for _, t := range types {
		items = append(items, map[string]interface{}{"type": t, "value": "value of " + t})
	}
	return map[string]interface{}{"file_type": "txt", "pii_detected": items}
}

var allCategories = []string{"name", "ssn", "email", "phone", "credit_card", "address", "zip_code"}

func newMockAnalyzer() *mockAnalyzer {
	exportHeaders := make(http.Header)
	exportHeaders.Set("Content-Type", spreadsheetContentType)
	return &mockAnalyzer{
		health:  jsonHandler(200, map[string]interface{}{"message": "Security File Analyzer API"}),
		single:  jsonHandler(200, piiResponse(allCategories...)),
		batch:   jsonHandler(200, map[string]interface{}{"id": "batch-1", "files_processed": 2}),
		history: jsonHandler(200, map[string]interface{}{"single_files": []interface{}{1, 2}, "batches": []interface{}{1}}),
		export:  httphelpers.HandlerWithResponse(200, exportHeaders, []byte("PK\x03\x04 fake spreadsheet")),
	}
}

func (m *mockAnalyzer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var h http.Handler
	switch path := r.URL.Path; {
	case path == servicedef.PathHealth && r.Method == "GET":
		h = m.health
	case path == servicedef.PathUploadSingle && r.Method == "POST":
		h = m.single
	case path == servicedef.PathUploadBatch && r.Method == "POST":
		h = m.batch
	case path == servicedef.PathAnalysisHistory && r.Method == "GET":
		h = m.history
	case strings.HasPrefix(path, servicedef.PathExportResults) && r.Method == "GET":
		h = m.export
	default:
		h = httphelpers.HandlerWithStatus(404)
	}
	h.ServeHTTP(w, r)
}

// handlerByUploadedFilename picks a response for the single upload endpoint based on the name
// of the uploaded file, so the single-upload and accuracy test cases can get different answers.
func handlerByUploadedFilename(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			w.WriteHeader(400)
			return
		}
		_, header, err := r.FormFile(servicedef.FieldFile)
		if err != nil || handlers[header.Filename] == nil {
			w.WriteHeader(400)
			return
		}
		handlers[header.Filename].ServeHTTP(w, r)
	})
}

type uploadedFile struct {
	fieldName   string
	filename    string
	contentType string
	content     string
}

type uploadedForm struct {
	files  []uploadedFile
	fields map[string]string
}

func parseUploadedForm(t *testing.T, info httphelpers.HTTPRequestInfo) uploadedForm {
	mediaType, params, err := mime.ParseMediaType(info.Request.Header.Get("Content-Type"))
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	form := uploadedForm{fields: make(map[string]string)}
	reader := multipart.NewReader(strings.NewReader(string(info.Body)), params["boundary"])
	for {
		part, err := reader.NextPart()
		if err != nil {
			break
		}
		data, err := io.ReadAll(part)
		require.NoError(t, err)
		if part.FileName() == "" {
			form.fields[part.FormName()] = string(data)
			continue
		}
		form.files = append(form.files, uploadedFile{
			fieldName:   part.FormName(),
			filename:    part.FileName(),
			contentType: part.Header.Get("Content-Type"),
			content:     string(data),
		})
	}
	return form
}

func testConfig(t *testing.T) *config.Config {
	cfg := config.DefaultConfig()
	cfg.ScratchDir = t.TempDir()
	return cfg
}

// runSuite runs the whole test suite against the handler and returns the results.
func runSuite(t *testing.T, cfg *config.Config, handler http.Handler, filter framework.Filter) framework.Results {
	var results framework.Results
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		harness := framework.NewTestHarness(server.URL, nil, nil)
		results = RunTestSuite(harness, cfg, filter, nil)
	})
	return results
}

// runSingleTest runs one test case against the handler and returns its result.
func runSingleTest(t *testing.T, cfg *config.Config, handler http.Handler, action func(*T)) framework.TestResult {
	var results framework.Results
	httphelpers.WithServer(handler, func(server *httptest.Server) {
		harness := framework.NewTestHarness(server.URL, nil, nil)
		results = framework.Run(nil, nil, func(c *framework.Context) {
			newTestScope(c, harness, cfg).Run("test", action)
		})
	})
	require.Len(t, results.Tests, 1)
	return results.Tests[0]
}

func requireNoFilesLeft(t *testing.T, dir string) {
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.Empty(t, names, "fixture files were left in the scratch directory")
}
