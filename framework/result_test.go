package framework

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultsCounts(t *testing.T) {
	var r Results
	assert.False(t, r.OK())
	assert.Equal(t, 0.0, r.SuccessRate())

	r.record(TestResult{TestID: TestID{Path: []string{"a"}}})
	assert.True(t, r.OK())
	assert.Equal(t, 100.0, r.SuccessRate())

	r.record(TestResult{TestID: TestID{Path: []string{"b"}}, Skipped: true})
	assert.False(t, r.OK())
	assert.Equal(t, 2, r.Run())
	assert.Equal(t, 1, r.Passed())
	assert.Equal(t, 50.0, r.SuccessRate())
}

func TestPrintResults(t *testing.T) {
	var r Results
	r.record(TestResult{TestID: TestID{Path: []string{"Health"}}})
	var buf bytes.Buffer
	PrintResults(&buf, r)
	assert.Equal(t, "Test Summary: 1/1 tests passed\nSuccess Rate: 100.0%\nAll tests passed!\n", buf.String())

	r.record(TestResult{TestID: TestID{Path: []string{"Upload"}}, Skipped: true})
	buf.Reset()
	PrintResults(&buf, r)
	assert.Equal(t, "Test Summary: 1/2 tests passed\nSuccess Rate: 50.0%\nSome tests failed:\n  Upload\n", buf.String())
}
