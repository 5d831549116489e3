package analyzertests

import (
	"github.com/launchdarkly/analyzer-contract-tests/config"
	"github.com/launchdarkly/analyzer-contract-tests/framework"
)

// T is the test context passed to every test case in this package. It implements
// require.TestingT, so it can be used with assert and require.
type T struct {
	context *framework.Context
	env     *environment
}

type environment struct {
	api      *AnalyzerAPI
	fixtures *FixtureGenerator
	config   *config.Config
}

func newTestScope(c *framework.Context, harness *framework.TestHarness, cfg *config.Config) *T {
	return &T{
		context: c,
		env: &environment{
			api:      NewAnalyzerAPI(harness, cfg.Timeouts),
			fixtures: NewFixtureGenerator(cfg.ScratchDir),
			config:   cfg,
		},
	}
}

// Run runs a test case. See framework.Context.Run.
func (t *T) Run(name string, action func(*T)) bool {
	return t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

func (t *T) ID() framework.TestID {
	return t.context.ID()
}

func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

func (t *T) FailNow() {
	t.context.FailNow()
}

func (t *T) Detailf(format string, args ...interface{}) {
	t.context.Detailf(format, args...)
}

func (t *T) SkipWithReason(reason string) {
	t.context.SkipWithReason(reason)
}

func (t *T) Abort(reason string) {
	t.context.Abort(reason)
}

func (t *T) Debug(message string, args ...interface{}) {
	t.context.Debug(message, args...)
}

func (t *T) DebugLogger() framework.Logger {
	return t.context.DebugLogger()
}

func (t *T) API() *AnalyzerAPI {
	return t.env.api
}

func (t *T) Fixtures() *FixtureGenerator {
	return t.env.fixtures
}

func (t *T) Thresholds() config.Thresholds {
	return t.env.config.Thresholds
}

func (t *T) BatchName() string {
	return t.env.config.BatchName
}
