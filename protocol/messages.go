package protocol

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/evoworld/sim-test-harness/framework/helpers"
)

// Request type discriminators understood by the simulation server.
const (
	TypeGetWorldState      = "GetWorldState"
	TypeSubscribeToEvents  = "SubscribeToEvents"
	TypeGetPopulationStats = "GetPopulationStats"
	TypeSetSimulationSpeed = "SetSimulationSpeed"
)

// Response type discriminators the server is known to send. Anything else is
// tolerated and classified as KindUnknown.
const (
	TypeWorldState = "WorldState"
	TypeEvent      = "Event"
)

// EntityCollections are the groups of simulation objects embedded in a world-state
// payload under "data". A conforming server sends all four, possibly empty.
var EntityCollections = []string{"humanoids", "resources", "buildings", "tribes"} //nolint:gochecknoglobals

// Request is one outgoing message. Requests are built with the constructor functions
// below and are immutable once created.
type Request struct {
	Type  string   `json:"type"`
	Speed *float64 `json:"speed,omitempty"`
}

func GetWorldState() Request      { return Request{Type: TypeGetWorldState} }
func SubscribeToEvents() Request  { return Request{Type: TypeSubscribeToEvents} }
func GetPopulationStats() Request { return Request{Type: TypeGetPopulationStats} }

func SetSimulationSpeed(speed float64) Request {
	return Request{Type: TypeSetSimulationSpeed, Speed: &speed}
}

// ResponseKind classifies a decoded response.
type ResponseKind string

const (
	KindWorldState ResponseKind = "world-state"
	KindEvent      ResponseKind = "event"
	KindUnknown    ResponseKind = "unknown"
)

// Response is one decoded incoming message.
//
// Type is the raw discriminator exactly as it appeared on the wire, or "" if the
// message had none. For KindWorldState, Data holds the payload object under "data";
// for KindEvent, Event holds the parsed event. All payload access is fail-closed:
// missing fields read as empty values, never as errors.
type Response struct {
	Kind  ResponseKind
	Type  string
	Data  ldvalue.Value
	Event Event
}

// Event is the payload of an Event response.
type Event struct {
	Type        string
	Description string
}

// Entities returns the named entity collection from a world-state payload. A missing
// or non-array collection reads as an empty array.
func (r Response) Entities(name string) ldvalue.Value {
	coll := r.Data.GetByKey(name)
	if coll.Type() != ldvalue.ArrayType {
		return ldvalue.ArrayBuild().Build()
	}
	return coll
}

// HasEntityCollection reports whether the world-state payload carries the named
// collection as an array. Valid collection names are listed in EntityCollections.
func (r Response) HasEntityCollection(name string) bool {
	if !helpers.SliceContains(name, EntityCollections) {
		return false
	}
	return r.Data.GetByKey(name).Type() == ldvalue.ArrayType
}
