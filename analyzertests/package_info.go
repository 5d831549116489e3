// Package analyzertests contains the test cases for the file analyzer service and the
// domain-specific helpers they use: creating fixture documents, calling the analyzer's
// endpoints, and checking what it detected.
package analyzertests
