package simtests

import (
	"github.com/evoworld/sim-test-harness/framework/harness"
	"github.com/evoworld/sim-test-harness/framework/simtest"
)

// RunSimTestSuite runs the full conformance suite against the simulation server the
// harness was configured for, and returns the accumulated results.
func RunSimTestSuite(
	h *harness.TestHarness,
	filters simtest.RegexFilters,
	testLogger simtest.TestLogger,
) simtest.Results {
	simtest.PrintFilterDescription(filters)

	config := simtest.TestConfiguration{
		Filter:     filters,
		TestLogger: testLogger,
		Context:    SimTestContext{harness: h},
	}

	return simtest.Run(config, doAllConformanceTests)
}

func doAllConformanceTests(t *simtest.T) {
	session := connectSession(t)

	t.Run("scripted requests", func(t *simtest.T) {
		runScriptedSequence(t, session)
	})
	t.Run("event stream", func(t *simtest.T) {
		runEventStreamTest(t, session)
	})
}
