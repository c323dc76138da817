package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

// DecodeError indicates that an incoming message was not a well-formed protocol
// message. The harness reports these and keeps going; they are never fatal.
type DecodeError struct {
	Data []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed message %q: %s", truncateForError(e.Data), e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func truncateForError(data []byte) string {
	const limit = 120
	if len(data) > limit {
		return string(data[:limit]) + "..."
	}
	return string(data)
}

// Encode serializes a request to its wire form. It cannot fail for requests built
// with the constructors in this package.
func Encode(req Request) []byte {
	data, _ := json.Marshal(req)
	return data
}

// Decode parses one incoming message.
//
// Messages that are not JSON objects produce a DecodeError. Messages that are objects
// are always decoded to something: a "type" of "WorldState" or "Event" yields the
// corresponding kind, and any other value - including a missing "type" - yields
// KindUnknown, so that newer server message kinds do not break the harness.
func Decode(data []byte) (Response, error) {
	var v ldvalue.Value
	if err := json.Unmarshal(data, &v); err != nil {
		return Response{}, &DecodeError{Data: data, Err: err}
	}
	if v.Type() != ldvalue.ObjectType {
		return Response{}, &DecodeError{Data: data, Err: fmt.Errorf("expected a JSON object, got %s", v.Type())}
	}

	msgType := v.GetByKey("type").StringValue()
	switch msgType {
	case TypeWorldState:
		return Response{Kind: KindWorldState, Type: msgType, Data: v.GetByKey("data")}, nil
	case TypeEvent:
		ev := v.GetByKey("event")
		return Response{
			Kind: KindEvent,
			Type: msgType,
			Event: Event{
				Type:        ev.GetByKey("type").StringValue(),
				Description: ev.GetByKey("description").StringValue(),
			},
		}, nil
	default:
		return Response{Kind: KindUnknown, Type: msgType}, nil
	}
}
