package helpers

import (
	"testing"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	"github.com/stretchr/testify/assert"
)

func TestNonBlockingSend(t *testing.T) {
	ch := make(chan int, 1)
	assert.True(t, NonBlockingSend(ch, 1))
	assert.False(t, NonBlockingSend(ch, 2))
	assert.Equal(t, 1, <-ch)
}

func TestTryReceive(t *testing.T) {
	ch := make(chan string, 1)
	ch <- "hello"
	assert.Equal(t, "hello", TryReceive(ch, time.Second).Value())
	assert.False(t, TryReceive(ch, time.Millisecond*10).IsDefined())
}

func TestTryReceiveReturnsNoLaterThanTimeout(t *testing.T) {
	ch := make(chan string)
	start := time.Now()
	maybe := TryReceive(ch, time.Millisecond*50)
	assert.False(t, maybe.IsDefined())
	assert.Less(t, time.Since(start), time.Millisecond*500)
}

func TestCanonicalizedJSONString(t *testing.T) {
	value := ldvalue.Parse([]byte(`{"b":2,"a":[{"z":true,"y":null}],"c":"x"}`))
	assert.Equal(t, `{"a":[{"y":null,"z":true}],"b":2,"c":"x"}`, CanonicalizedJSONString(value))
}

func TestAsJSONValue(t *testing.T) {
	v := AsJSONValue(map[string]int{"count": 3})
	assert.Equal(t, 3, v.GetByKey("count").IntValue())
}

func TestIfElse(t *testing.T) {
	assert.Equal(t, "a", IfElse(true, "a", "b"))
	assert.Equal(t, "b", IfElse(false, "a", "b"))
}

func TestSliceContains(t *testing.T) {
	assert.True(t, SliceContains("humanoids", []string{"humanoids", "tribes"}))
	assert.False(t, SliceContains("ghosts", []string{"humanoids", "tribes"}))
}
