package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "abc", ToString([]byte("abc")))
	assert.Equal(t, "42", ToString(42))
	assert.Equal(t, "", ToString(nil))
}

func TestToFloat(t *testing.T) {
	if got := ToFloat("2.8"); assert.NotNil(t, got) {
		assert.Equal(t, 2.8, *got)
	}
	if got := ToFloat(4); assert.NotNil(t, got) {
		assert.Equal(t, 4.0, *got)
	}
	assert.Nil(t, ToFloat("f/2.8"))
	assert.Nil(t, ToFloat(nil))
}

func TestToIntPtr(t *testing.T) {
	if got := ToIntPtr("100"); assert.NotNil(t, got) {
		assert.Equal(t, 100, *got)
	}
	if got := ToIntPtr(100.0); assert.NotNil(t, got) {
		assert.Equal(t, 100, *got)
	}
	if got := ToIntPtr("100.0"); assert.NotNil(t, got) {
		assert.Equal(t, 100, *got)
	}
	assert.Nil(t, ToIntPtr("ISO100"))
	assert.Nil(t, ToIntPtr(nil))
}
