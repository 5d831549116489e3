package framework

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegexFilters(t *testing.T) {
	id := func(name string) TestID { return TestID{Path: []string{name}} }

	var none RegexFilters
	assert.True(t, none.AsFilter(id("API Health Check")))

	var f RegexFilters
	require.NoError(t, f.MustMatch.Set("Upload"))
	require.NoError(t, f.MustNotMatch.Set("^Batch"))
	assert.True(t, f.AsFilter(id("Single File Upload & Analysis")))
	assert.False(t, f.AsFilter(id("Batch File Upload & Analysis")))
	assert.False(t, f.AsFilter(id("Excel Export")))
}

func TestRegexListRejectsInvalidPattern(t *testing.T) {
	var r RegexList
	assert.Error(t, r.Set("("))
	assert.False(t, r.IsDefined())
}

func TestPrintFilterDescription(t *testing.T) {
	var buf bytes.Buffer
	PrintFilterDescription(&buf, RegexFilters{})
	assert.Empty(t, buf.String())

	var f RegexFilters
	require.NoError(t, f.MustNotMatch.Set("Export"))
	PrintFilterDescription(&buf, f)
	assert.Contains(t, buf.String(), `skip any matching "Export"`)
}
