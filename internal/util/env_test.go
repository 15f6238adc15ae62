package util

import (
	"os"
	"testing"

	"github.com/bmizerany/assert"
)

func TestSetEnv(t *testing.T) {
	_, found := os.LookupEnv("test_foo")
	assert.Equal(t, false, found)

	unset1 := SetEnv("test_foo", "bar")
	assert.Equal(t, "bar", os.Getenv("test_foo"))

	unset2 := SetEnv("test_foo", "bar2")
	assert.Equal(t, "bar2", os.Getenv("test_foo"))
	unset2()
	assert.Equal(t, "bar", os.Getenv("test_foo"))
	unset1()

	_, found = os.LookupEnv("test_foo")
	assert.Equal(t, false, found)
}

func TestGetenv(t *testing.T) {
	assert.Equal(t, "default", Getenv("test_getenv", "default"))

	defer SetEnv("test_getenv", "set")()
	assert.Equal(t, "set", Getenv("test_getenv", "default"))
}
