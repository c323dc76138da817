package simtests

import (
	"github.com/evoworld/sim-test-harness/framework/helpers"
	"github.com/evoworld/sim-test-harness/framework/simtest"
	"github.com/evoworld/sim-test-harness/protocol"
	"github.com/evoworld/sim-test-harness/simws"
)

// simulationSpeedSetting is the speed multiplier the script asks the server to apply.
const simulationSpeedSetting = 1.5

type scriptedStep struct {
	name    string
	request protocol.Request
}

// conformanceScript is the fixed ordered sequence of request/response exchanges.
func conformanceScript() []scriptedStep {
	return []scriptedStep{
		{"get world state", protocol.GetWorldState()},
		{"subscribe to events", protocol.SubscribeToEvents()},
		{"get population stats", protocol.GetPopulationStats()},
		{"set simulation speed", protocol.SetSimulationSpeed(simulationSpeedSetting)},
	}
}

// runScriptedSequence runs every step of the script as its own subtest, so a failed
// or timed-out step never prevents the later steps from running.
func runScriptedSequence(t *simtest.T, session *simws.Session) {
	for _, step := range conformanceScript() {
		step := step
		t.Run(step.name, func(t *simtest.T) {
			runStep(t, session, step)
		})
	}
}

func runStep(t *simtest.T, session *simws.Session, step scriptedStep) {
	params := requireContext(t).harness.Params()

	if err := session.Send(protocol.Encode(step.request)); err != nil {
		// a broken connection is fatal to this run; every remaining step will
		// fail the same way, but the suite still runs to completion and closes
		t.Errorf("%s", err)
		t.FailNow()
	}

	maybeReply, err := session.ReceiveWithTimeout(params.ResponseTimeout)
	if err != nil {
		t.Errorf("connection failed while awaiting reply: %s", err)
		t.FailNow()
	}
	if !maybeReply.IsDefined() {
		t.Errorf("no reply to %s within %s", step.request.Type, params.ResponseTimeout)
		return
	}

	resp, err := protocol.Decode(maybeReply.Value())
	if err != nil {
		t.Errorf("%s", err)
		return
	}

	switch resp.Kind {
	case protocol.KindWorldState:
		t.Debug("received world state")
		validateWorldState(t, resp)
	case protocol.KindEvent:
		t.Debug("received event %q: %s", resp.Event.Type, resp.Event.Description)
	default:
		// a reply the harness doesn't recognize is reported, not failed, so newer
		// server message kinds don't break the script
		t.Debug("unknown response type: %s", helpers.IfElse(resp.Type == "", "(none)", resp.Type))
	}
}

// validateWorldState checks the structural expectations on a world-state payload:
// all four entity collections are present (possibly empty). Counts are reported for
// every collection, and the first element of any non-empty collection is dumped as a
// representative sample for manual inspection.
func validateWorldState(t *simtest.T, resp protocol.Response) {
	WorldStatePayload().Assert(t, resp)
	for _, name := range protocol.EntityCollections {
		coll := resp.Entities(name)
		t.Debug("%s: %d", name, coll.Count())
		if coll.Count() > 0 {
			t.Debug("sample from %s: %s", name, helpers.CanonicalizedJSONString(coll.GetByIndex(0)))
		}
	}
}
