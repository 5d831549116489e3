package framework

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"
)

// TestHarness holds what every test case needs in order to talk to the service under test: its
// base URL and an HTTP client. It does not interpret responses; that is up to the domain-specific
// test code.
type TestHarness struct {
	serviceBaseURL string
	httpClient     *http.Client
	logger         Logger
}

// ServiceResponse is a fully read HTTP response from the service under test.
type ServiceResponse struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// NewTestHarness creates a TestHarness for the service at the specified base URL. If httpClient
// is nil, http.DefaultClient is used.
func NewTestHarness(serviceBaseURL string, httpClient *http.Client, debugLogger Logger) *TestHarness {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if debugLogger == nil {
		debugLogger = NullLogger()
	}
	return &TestHarness{
		serviceBaseURL: strings.TrimSuffix(serviceBaseURL, "/"),
		httpClient:     httpClient,
		logger:         debugLogger,
	}
}

func (h *TestHarness) ServiceBaseURL() string {
	return h.serviceBaseURL
}

// URL returns the absolute URL for a path on the service under test.
func (h *TestHarness) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return h.serviceBaseURL + path
}

// Get sends a GET request to a path on the service under test.
func (h *TestHarness) Get(ctx context.Context, path string, logger Logger) (*ServiceResponse, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", h.URL(path), nil)
	if err != nil {
		return nil, err
	}
	return h.Do(req, logger)
}

// Post sends a POST request with the given body to a path on the service under test.
func (h *TestHarness) Post(
	ctx context.Context,
	path string,
	contentType string,
	body []byte,
	logger Logger,
) (*ServiceResponse, error) {
	req, err := http.NewRequestWithContext(ctx, "POST", h.URL(path), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)
	return h.Do(req, logger)
}

// Do sends a request and reads the whole response body. A non-2xx status is not an error here;
// the caller decides what status it expects.
func (h *TestHarness) Do(req *http.Request, logger Logger) (*ServiceResponse, error) {
	if logger == nil {
		logger = h.logger
	}
	logger.Printf("Sending %s request to %s", req.Method, req.URL)
	resp, err := h.httpClient.Do(req)
	if err != nil {
		logger.Printf("Request failed: %s", err)
		return nil, err
	}
	var body []byte
	if resp.Body != nil {
		body, err = io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("error reading response body: %w", err)
		}
	}
	r := &ServiceResponse{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}
	logger.Printf("Received status %d (%d bytes, %s): %s",
		resp.StatusCode, len(body), resp.Header.Get("Content-Type"), r.abbreviatedBody())
	return r, nil
}

// BodyString returns the whole response body as a string.
func (r *ServiceResponse) BodyString() string {
	return string(r.Body)
}

// abbreviatedBody shortens a long body for the debug log without splitting a UTF-8 sequence.
func (r *ServiceResponse) abbreviatedBody() string {
	const maxLength = 1000
	if len(r.Body) <= maxLength {
		return string(r.Body)
	}
	cut := maxLength
	for cut > 0 && !utf8.RuneStart(r.Body[cut]) {
		cut--
	}
	return string(r.Body[:cut]) + "..."
}
