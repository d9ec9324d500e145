package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("STARWAVE_TEST_STR", "value")
	assert.Equal(t, "value", GetEnv("STARWAVE_TEST_STR", "fallback"))
	assert.Equal(t, "fallback", GetEnv("STARWAVE_TEST_UNSET", "fallback"))

	t.Setenv("STARWAVE_TEST_EMPTY", "")
	assert.Equal(t, "", GetEnv("STARWAVE_TEST_EMPTY", "fallback"), "set but empty is not a fallback")
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("STARWAVE_TEST_INT", "-42")
	assert.Equal(t, int64(-42), GetEnvInt("STARWAVE_TEST_INT", 7))

	t.Setenv("STARWAVE_TEST_INT", "forty")
	assert.Equal(t, int64(7), GetEnvInt("STARWAVE_TEST_INT", 7))
	assert.Equal(t, int64(7), GetEnvInt("STARWAVE_TEST_UNSET", 7))
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("STARWAVE_TEST_BOOL", "false")
	assert.False(t, GetEnvBool("STARWAVE_TEST_BOOL", true))

	t.Setenv("STARWAVE_TEST_BOOL", "1")
	assert.True(t, GetEnvBool("STARWAVE_TEST_BOOL", false))

	t.Setenv("STARWAVE_TEST_BOOL", "maybe")
	assert.True(t, GetEnvBool("STARWAVE_TEST_BOOL", true))
	assert.False(t, GetEnvBool("STARWAVE_TEST_UNSET", false))
}
