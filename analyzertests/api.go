package analyzertests

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/launchdarkly/analyzer-contract-tests/config"
	"github.com/launchdarkly/analyzer-contract-tests/framework"
	"github.com/launchdarkly/analyzer-contract-tests/servicedef"

	"github.com/alessio/shellescape"
)

const fixtureContentType = "text/plain"

// AnalyzerAPI makes requests to the endpoints of the file analyzer service. Every request has
// its own time limit; a timeout is reported as an error like any other transport failure.
//
// A non-2xx status is not an error at this level: the response is returned so that the test
// case can report the status and body.
type AnalyzerAPI struct {
	harness  *framework.TestHarness
	timeouts config.Timeouts
}

func NewAnalyzerAPI(harness *framework.TestHarness, timeouts config.Timeouts) *AnalyzerAPI {
	return &AnalyzerAPI{harness: harness, timeouts: timeouts}
}

// HealthCheck queries the API root.
func (a *AnalyzerAPI) HealthCheck(logger framework.Logger) (*framework.ServiceResponse, error) {
	return a.get(servicedef.PathHealth, a.timeouts.Health, logger)
}

// UploadSingle uploads one file for analysis.
func (a *AnalyzerAPI) UploadSingle(f Fixture, logger framework.Logger) (*framework.ServiceResponse, error) {
	var cmd commandBuilder
	cmd.add("curl", "-sS", "-X", "POST")
	body, contentType, err := buildMultipartBody(func(w *multipart.Writer) error {
		cmd.add("-F", filePartArg(servicedef.FieldFile, f))
		return writeFilePart(w, servicedef.FieldFile, f)
	})
	if err != nil {
		return nil, err
	}
	cmd.add(a.harness.URL(servicedef.PathUploadSingle))
	return a.post(servicedef.PathUploadSingle, a.timeouts.Single, contentType, body, cmd, logger)
}

// UploadBatch uploads several files as one named batch.
func (a *AnalyzerAPI) UploadBatch(files []Fixture, batchName string, logger framework.Logger) (*framework.ServiceResponse, error) {
	var cmd commandBuilder
	cmd.add("curl", "-sS", "-X", "POST")
	body, contentType, err := buildMultipartBody(func(w *multipart.Writer) error {
		for _, f := range files {
			cmd.add("-F", filePartArg(servicedef.FieldFiles, f))
			if err := writeFilePart(w, servicedef.FieldFiles, f); err != nil {
				return err
			}
		}
		cmd.add("-F", servicedef.FieldBatchName+"="+batchName)
		return w.WriteField(servicedef.FieldBatchName, batchName)
	})
	if err != nil {
		return nil, err
	}
	cmd.add(a.harness.URL(servicedef.PathUploadBatch))
	return a.post(servicedef.PathUploadBatch, a.timeouts.Batch, contentType, body, cmd, logger)
}

// AnalysisHistory lists previously analyzed files and batches.
func (a *AnalyzerAPI) AnalysisHistory(logger framework.Logger) (*framework.ServiceResponse, error) {
	return a.get(servicedef.PathAnalysisHistory, a.timeouts.History, logger)
}

// ExportResults downloads the exported results of a batch.
func (a *AnalyzerAPI) ExportResults(batchID string, logger framework.Logger) (*framework.ServiceResponse, error) {
	return a.get(servicedef.PathExportResults+url.PathEscape(batchID), a.timeouts.Export, logger)
}

func (a *AnalyzerAPI) get(path string, timeout time.Duration, logger framework.Logger) (*framework.ServiceResponse, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	resp, err := a.harness.Get(ctx, path, logger)
	if err != nil || resp.StatusCode != 200 {
		var cmd commandBuilder
		cmd.add("curl", "-sS", "-i", a.harness.URL(path))
		logger.Printf("To reproduce: %s", cmd)
	}
	return resp, err
}

func (a *AnalyzerAPI) post(
	path string,
	timeout time.Duration,
	contentType string,
	body []byte,
	cmd commandBuilder,
	logger framework.Logger,
) (*framework.ServiceResponse, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	resp, err := a.harness.Post(ctx, path, contentType, body, logger)
	if err != nil || resp.StatusCode != 200 {
		logger.Printf("To reproduce: %s", cmd)
	}
	return resp, err
}

func buildMultipartBody(writeParts func(*multipart.Writer) error) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := writeParts(w); err != nil {
		return nil, "", err
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}

// writeFilePart streams the fixture from disk, so that what is uploaded is exactly what was
// written to the file.
func writeFilePart(w *multipart.Writer, fieldName string, f Fixture) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		escapeQuotes(fieldName), escapeQuotes(f.Filename)))
	h.Set("Content-Type", fixtureContentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	file, err := os.Open(f.Path)
	if err != nil {
		return fmt.Errorf("error opening fixture file: %w", err)
	}
	defer file.Close()
	_, err = io.Copy(part, file)
	return err
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}

func filePartArg(fieldName string, f Fixture) string {
	return fmt.Sprintf("%s=@%s;filename=%s;type=%s", fieldName, f.Path, f.Filename, fixtureContentType)
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
