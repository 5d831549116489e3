package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

const detailsSeparator = " - "

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
	aborted    bool
	now        func() time.Time
}

// Context is used similarly to *testing.T. It implements require.TestingT so that standard
// assertions from assert/require can be used inside a test case.
type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	details     []string
	failed      bool
	skipped     bool
	errors      []error
}

// Run executes the top-level action, which is expected to call Context.Run once per test case,
// and returns the accumulated results. Only named test cases are recorded.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
		now:        time.Now,
	}
	c := &Context{env: env}
	c.run(action)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	defer func() {
		if r := recover(); r != nil {
			if !c.skipped {
				c.failed = true
				var addError error
				if _, ok := r.(*Context); ok {
					if len(c.errors) == 0 {
						addError = errors.New("test failed with no failure message")
					}
				} else {
					addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
				}
				if addError != nil {
					c.errors = append(c.errors, addError)
					c.details = append(c.details, addError.Error())
					c.env.testLogger.TestError(c.id, addError)
				}
			}
		}
		if len(c.id.Path) == 0 && !c.failed {
			return // the root context is not a test case
		}
		result := TestResult{
			TestID:    c.id,
			Details:   strings.Join(c.details, detailsSeparator),
			Timestamp: c.env.now(),
			Errors:    c.errors,
			Skipped:   c.skipped,
		}
		c.env.results.record(result)
	}()

	action(c)
}

func (c *Context) ID() TestID {
	return c.id
}

// Run executes a test case as a child of this context and records exactly one result for it,
// unless the filter excludes it or the run has been aborted. Like testing.T.Run, it returns
// false only if the test case did not succeed; a test case excluded by the filter has not
// failed, but one that was prevented by Abort has not succeeded either.
func (c *Context) Run(name string, action func(*Context)) bool {
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}

	if c.env.aborted {
		return false
	}
	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.env.testLogger.TestSkipped(id, "excluded by filter parameters")
		return true
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	results := c.env.results.Tests
	result := results[len(results)-1]
	c.env.testLogger.TestFinished(id, result, c1.debugLogger.Output())
	return result.Success()
}

// Abort prevents any further test cases from running. Results recorded so far are kept.
func (c *Context) Abort(reason string) {
	c.env.aborted = true
	c.env.testLogger.RunAborted(reason)
}

// Detailf adds a line of diagnostic information to the test result, whether or not the test
// case fails.
func (c *Context) Detailf(format string, args ...interface{}) {
	c.details = append(c.details, fmt.Sprintf(format, args...))
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := reformatError(fmt.Errorf(format, args...))
	c.errors = append(c.errors, err)
	c.details = append(c.details, err.Error())
	c.env.testLogger.TestError(c.id, err)
}

func (c *Context) FailNow() {
	panic(c)
}

// Skip ends the test case without running the rest of it. A skipped test case still counts as
// a recorded result, and it is not a success.
func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.details = append(c.details, reason)
	c.Skip()
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
