// Package framework contains the low-level implementation of test harness infrastructure
// that can be reused for different kinds of tests.
//
// The general model is:
//
// 1. The test harness communicates with a service under test over HTTP. TestHarness knows the
// service's base URL and how to send requests to it and read the responses.
//
// 2. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results. Each test case produces exactly one TestResult, in order.
//
// 3. A TestLogger reports progress as test cases start and finish.
//
// The domain-specific code that knows what is being tested is responsible for building the
// requests, deciding what a correct response looks like, and sequencing the test cases.
package framework
