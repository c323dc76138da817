package protocol

import (
	"testing"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRoundTripsTypeDiscriminator(t *testing.T) {
	for _, req := range []Request{
		GetWorldState(),
		SubscribeToEvents(),
		GetPopulationStats(),
		SetSimulationSpeed(1.5),
	} {
		t.Run(req.Type, func(t *testing.T) {
			parsed := ldvalue.Parse(Encode(req))
			require.Equal(t, ldvalue.ObjectType, parsed.Type())
			assert.Equal(t, req.Type, parsed.GetByKey("type").StringValue())
		})
	}
}

func TestEncodeSetSimulationSpeedIncludesSpeed(t *testing.T) {
	parsed := ldvalue.Parse(Encode(SetSimulationSpeed(1.5)))
	assert.Equal(t, 1.5, parsed.GetByKey("speed").Float64Value())
}

func TestEncodeOmitsSpeedForOtherRequests(t *testing.T) {
	parsed := ldvalue.Parse(Encode(GetWorldState()))
	assert.Equal(t, ldvalue.NullType, parsed.GetByKey("speed").Type())
}

func TestDecodeWorldState(t *testing.T) {
	resp, err := Decode([]byte(`{
		"type": "WorldState",
		"data": {
			"humanoids": [{"id": 1, "name": "Asha"}],
			"resources": [],
			"buildings": [],
			"tribes": []
		}
	}`))
	require.NoError(t, err)
	assert.Equal(t, KindWorldState, resp.Kind)
	assert.Equal(t, "WorldState", resp.Type)
	assert.Equal(t, 1, resp.Entities("humanoids").Count())
	assert.Equal(t, 0, resp.Entities("resources").Count())
	assert.Equal(t, "Asha", resp.Entities("humanoids").GetByIndex(0).GetByKey("name").StringValue())
}

func TestDecodeWorldStateWithMissingCollectionsReadsEmpty(t *testing.T) {
	resp, err := Decode([]byte(`{"type": "WorldState", "data": {}}`))
	require.NoError(t, err)
	for _, name := range EntityCollections {
		assert.Equal(t, 0, resp.Entities(name).Count(), name)
		assert.False(t, resp.HasEntityCollection(name), name)
	}
}

func TestDecodeWorldStateWithMissingDataReadsEmpty(t *testing.T) {
	resp, err := Decode([]byte(`{"type": "WorldState"}`))
	require.NoError(t, err)
	assert.Equal(t, KindWorldState, resp.Kind)
	assert.Equal(t, 0, resp.Entities("humanoids").Count())
}

func TestHasEntityCollection(t *testing.T) {
	resp, err := Decode([]byte(`{"type": "WorldState", "data": {"humanoids": [], "tribes": 3}}`))
	require.NoError(t, err)
	assert.True(t, resp.HasEntityCollection("humanoids"))
	assert.False(t, resp.HasEntityCollection("tribes"))  // present but not an array
	assert.False(t, resp.HasEntityCollection("weather")) // not a known collection
}

func TestDecodeEvent(t *testing.T) {
	resp, err := Decode([]byte(`{
		"type": "Event",
		"event": {"type": "Birth", "description": "a humanoid was born"}
	}`))
	require.NoError(t, err)
	assert.Equal(t, KindEvent, resp.Kind)
	assert.Equal(t, "Birth", resp.Event.Type)
	assert.Equal(t, "a humanoid was born", resp.Event.Description)
}

func TestDecodeEventWithMissingFieldsFailsClosed(t *testing.T) {
	resp, err := Decode([]byte(`{"type": "Event"}`))
	require.NoError(t, err)
	assert.Equal(t, KindEvent, resp.Kind)
	assert.Equal(t, "", resp.Event.Type)
	assert.Equal(t, "", resp.Event.Description)
}

func TestDecodeUnrecognizedTypeIsTolerated(t *testing.T) {
	resp, err := Decode([]byte(`{"type": "Ack"}`))
	require.NoError(t, err)
	assert.Equal(t, KindUnknown, resp.Kind)
	assert.Equal(t, "Ack", resp.Type)
}

func TestDecodeMissingTypeIsTolerated(t *testing.T) {
	resp, err := Decode([]byte(`{"data": {}}`))
	require.NoError(t, err)
	assert.Equal(t, KindUnknown, resp.Kind)
	assert.Equal(t, "", resp.Type)
}

func TestDecodeMalformedJSONReturnsDecodeError(t *testing.T) {
	_, err := Decode([]byte(`{not json`))
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestDecodeNonObjectReturnsDecodeError(t *testing.T) {
	for _, data := range []string{`42`, `"hello"`, `[1,2,3]`, `null`} {
		_, err := Decode([]byte(data))
		var decodeErr *DecodeError
		assert.ErrorAs(t, err, &decodeErr, data)
	}
}
