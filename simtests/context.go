package simtests

import (
	"context"

	"github.com/evoworld/sim-test-harness/framework/harness"
	"github.com/evoworld/sim-test-harness/framework/simtest"
	"github.com/evoworld/sim-test-harness/simws"
)

// SimTestContext is the application-defined context value carried by every test scope
// in the suite. It gives test logic access to the harness without any global state.
type SimTestContext struct {
	harness *harness.TestHarness
}

func requireContext(t *simtest.T) SimTestContext {
	if ctx, ok := t.Context().(SimTestContext); ok {
		return ctx
	}
	t.Errorf("test scope has no SimTestContext; the suite was not started through RunSimTestSuite")
	t.FailNow()
	return SimTestContext{} // not reached
}

// connectSession opens the suite's single session to the simulation server. A
// connection failure is fatal to the run; the session is always closed when the
// owning scope exits, whatever happens in the subtests.
func connectSession(t *simtest.T) *simws.Session {
	ctx := requireContext(t)
	session, err := ctx.harness.Connect(context.Background(), t.DebugLogger())
	if err != nil {
		t.Errorf("%s\nmake sure the simulation server is running and listening at %s",
			err, ctx.harness.Params().Endpoint)
		t.FailNow()
	}
	t.Defer(func() { _ = session.Close() })
	return session
}
