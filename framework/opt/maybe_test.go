package opt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNone(t *testing.T) {
	assert.False(t, None[string]().IsDefined())
	assert.Equal(t, 0, None[int]().Value())
	assert.Equal(t, "", None[string]().Value())
	assert.Nil(t, None[[]byte]().Value())
}

func TestSome(t *testing.T) {
	assert.True(t, Some("x").IsDefined())
	assert.Equal(t, "x", Some("x").Value())
	assert.Equal(t, []byte("data"), Some([]byte("data")).Value())
}

func TestOrElse(t *testing.T) {
	assert.Equal(t, 3, Some(3).OrElse(4))
	assert.Equal(t, 4, None[int]().OrElse(4))
}

func TestString(t *testing.T) {
	assert.Equal(t, "3", Some(3).String())
	assert.Equal(t, "[none]", None[int]().String())
}
