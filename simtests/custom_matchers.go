package simtests

import (
	"fmt"

	m "github.com/evoworld/sim-test-harness/framework/matchers"
	"github.com/evoworld/sim-test-harness/protocol"
)

func describeResponse(value interface{}) string {
	resp, ok := value.(protocol.Response)
	if !ok {
		return m.DefaultDescription(value)
	}
	return fmt.Sprintf("%s response with data %s", resp.Type, resp.Data.JSONString())
}

// WorldStatePayload matches a world-state response that carries every entity
// collection. Empty collections are acceptable; missing ones are not.
func WorldStatePayload() m.Matcher {
	all := make([]m.Matcher, 0, len(protocol.EntityCollections))
	for _, name := range protocol.EntityCollections {
		all = append(all, HasEntityCollection(name))
	}
	return m.AllOf(all...)
}

// HasEntityCollection matches a response whose world-state payload contains the named
// entity collection as an array.
func HasEntityCollection(name string) m.Matcher {
	return m.New(
		func(value interface{}) bool {
			return value.(protocol.Response).HasEntityCollection(name)
		},
		func(interface{}, m.DescribeValueFunc) string {
			return fmt.Sprintf("world state with %q collection", name)
		},
	).EnsureType(protocol.Response{}).WithValueDescription(describeResponse)
}

// EntityCount extracts the size of the named entity collection so that numeric
// matchers can be applied to it, as in EntityCount("humanoids").Should(m.Equal(2)).
func EntityCount(name string) m.MatcherTransform {
	return m.Transform(
		fmt.Sprintf("count of %q", name),
		func(value interface{}) interface{} {
			return value.(protocol.Response).Entities(name).Count()
		},
	).EnsureInputValueType(protocol.Response{}).
		WithInputValueDescription(describeResponse)
}
