package mocksim

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/evoworld/sim-test-harness/protocol"
)

// EmptyWorldData returns a world-state payload in which all four entity collections
// exist but hold nothing.
func EmptyWorldData() ldvalue.Value {
	b := ldvalue.ObjectBuild()
	for _, name := range protocol.EntityCollections {
		b.Set(name, ldvalue.ArrayBuild().Build())
	}
	return b.Build()
}

// SampleWorldData returns a small populated world-state payload.
func SampleWorldData() ldvalue.Value {
	humanoid := ldvalue.ObjectBuild().
		SetInt("id", 1).
		SetString("name", "Asha").
		SetInt("age", 23).
		Build()
	resource := ldvalue.ObjectBuild().
		SetInt("id", 7).
		SetString("kind", "berries").
		SetInt("quantity", 40).
		Build()
	return ldvalue.ObjectBuild().
		Set("humanoids", ldvalue.ArrayOf(humanoid)).
		Set("resources", ldvalue.ArrayOf(resource)).
		Set("buildings", ldvalue.ArrayBuild().Build()).
		Set("tribes", ldvalue.ArrayBuild().Build()).
		Build()
}

// WorldStateMessage builds a WorldState server message around the given payload.
func WorldStateMessage(data ldvalue.Value) ldvalue.Value {
	return ldvalue.ObjectBuild().
		SetString("type", protocol.TypeWorldState).
		Set("data", data).
		Build()
}

// EventMessage builds an Event server message.
func EventMessage(eventType, description string) ldvalue.Value {
	return ldvalue.ObjectBuild().
		SetString("type", protocol.TypeEvent).
		Set("event", ldvalue.ObjectBuild().
			SetString("type", eventType).
			SetString("description", description).
			Build()).
		Build()
}

// AckMessage builds a message whose type the harness does not recognize, for
// exercising forward compatibility.
func AckMessage() ldvalue.Value {
	return ldvalue.ObjectBuild().SetString("type", "Ack").Build()
}

// ConformingHandler scripts a server that answers every known request the way a
// well-behaved simulation server would: world state for GetWorldState, an Event for
// SubscribeToEvents, and an Ack for everything else.
func ConformingHandler(worldData ldvalue.Value) MessageHandler {
	return func(request ldvalue.Value, client *Client) {
		switch request.GetByKey("type").StringValue() {
		case protocol.TypeGetWorldState:
			client.Send(WorldStateMessage(worldData))
		case protocol.TypeSubscribeToEvents:
			client.Send(EventMessage("Subscribed", "event subscription active"))
		default:
			client.Send(AckMessage())
		}
	}
}
