package matchers

import (
	"fmt"
	"reflect"
	"strings"
)

// Equal is a matcher that tests whether the input value matches the expected value according
// to reflect.DeepEqual.
func Equal(expectedValue interface{}) Matcher {
	return New(
		func(value interface{}) bool {
			return reflect.DeepEqual(value, expectedValue)
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return fmt.Sprintf("equal to %s", desc(expectedValue))
		},
	)
}

// StringContains is a matcher for a string value that tests for the presence of a substring.
func StringContains(substring string) Matcher {
	return New(
		func(value interface{}) bool {
			s, ok := value.(string)
			return ok && strings.Contains(s, substring)
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return fmt.Sprintf("contains %q", substring)
		},
	)
}
