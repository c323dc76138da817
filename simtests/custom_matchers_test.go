package simtests

import (
	"testing"

	"github.com/launchdarkly/go-test-helpers/v2/jsonhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/evoworld/sim-test-harness/framework/matchers"
	"github.com/evoworld/sim-test-harness/framework/helpers"
	"github.com/evoworld/sim-test-harness/mocksim"
	"github.com/evoworld/sim-test-harness/protocol"
)

func decodeWorldState(t *testing.T, data interface{}) protocol.Response {
	t.Helper()
	resp, err := protocol.Decode(jsonhelpers.ToJSON(mocksim.WorldStateMessage(helpers.AsJSONValue(data))))
	require.NoError(t, err)
	return resp
}

func TestWorldStatePayloadMatcher(t *testing.T) {
	complete := decodeWorldState(t, mocksim.SampleWorldData())
	pass, _ := WorldStatePayload().Test(complete)
	assert.True(t, pass)

	incomplete := decodeWorldState(t, map[string]interface{}{
		"humanoids": []interface{}{},
		"resources": []interface{}{},
	})
	pass, desc := WorldStatePayload().Test(incomplete)
	assert.False(t, pass)
	assert.Contains(t, desc, `world state with "buildings" collection`)
	assert.Contains(t, desc, `world state with "tribes" collection`)
	assert.NotContains(t, desc, `world state with "humanoids" collection`)
}

func TestHasEntityCollectionMatcher(t *testing.T) {
	resp := decodeWorldState(t, map[string]interface{}{
		"humanoids": []interface{}{},
		"tribes":    "not an array",
	})
	pass, _ := HasEntityCollection("humanoids").Test(resp)
	assert.True(t, pass)
	pass, _ = HasEntityCollection("tribes").Test(resp)
	assert.False(t, pass, "a non-array value should not count as a collection")
	pass, _ = HasEntityCollection("buildings").Test(resp)
	assert.False(t, pass)

	pass, desc := HasEntityCollection("humanoids").Test("not a response")
	assert.False(t, pass)
	assert.Contains(t, desc, "value of type protocol.Response")
}

func TestEntityCountMatcher(t *testing.T) {
	resp := decodeWorldState(t, mocksim.SampleWorldData())

	EntityCount("humanoids").Should(m.Equal(1)).Require(t, resp)
	EntityCount("buildings").Should(m.Equal(0)).Require(t, resp)

	pass, desc := EntityCount("resources").Should(m.Equal(3)).Test(resp)
	assert.False(t, pass)
	assert.Contains(t, desc, `count of "resources"`)
}
