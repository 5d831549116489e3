package analyzertests

import "strings"

// hasEnoughPIIItems is the single-upload check: a document with several kinds of PII should
// produce at least minItems items, not just any detection at all.
func hasEnoughPIIItems(count, minItems int) bool {
	return count >= minItems
}

// detectedCategories returns the members of expected that appear in detectedTypes, in the order
// of expected. Each category is counted once however many items of that type were found.
func detectedCategories(expected, detectedTypes []string) []string {
	seen := make(map[string]bool, len(detectedTypes))
	for _, t := range detectedTypes {
		seen[t] = true
	}
	ret := []string{}
	for _, e := range expected {
		if seen[e] {
			ret = append(ret, e)
		}
	}
	return ret
}

// hasEnoughCategories is the accuracy check. It requires coverage of most categories rather
// than all of them, so one missed category does not fail the test.
func hasEnoughCategories(found []string, minCategories int) bool {
	return len(found) >= minCategories
}

// isSpreadsheetContentType reports whether an export looks like an Excel file.
func isSpreadsheetContentType(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "spreadsheet") || strings.Contains(ct, "excel")
}
