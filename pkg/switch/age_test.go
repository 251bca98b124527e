package cswitch

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseAge(t *testing.T) {
	d, err := ParseAge("0s")
	assert.Nil(t, err)
	assert.Equal(t, time.Duration(0), d, "be the same.")

	d, err = ParseAge("45s")
	assert.Nil(t, err)
	assert.Equal(t, 45*time.Second, d, "be the same.")

	d, err = ParseAge("2min")
	assert.Nil(t, err)
	assert.Equal(t, 2*time.Minute, d, "be the same.")

	d, err = ParseAge("007s")
	assert.Nil(t, err)
	assert.Equal(t, 7*time.Second, d, "be the same.")

	for _, v := range []string{"abc", "5", "5hr", "5S", "5MIN", "1.5s", "s", "99999999999999999999s", "9999999999999999min"} {
		_, err := ParseAge(v)
		assert.True(t, errors.Is(err, ErrInvalidAge), "%q rejected.", v)
	}
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "broadcast", ActBroadcast.String(), "be the same.")
	assert.Equal(t, "flood", ActFlood.String(), "be the same.")
	assert.Equal(t, "filter", ActFilter.String(), "be the same.")
	assert.Equal(t, "forward", ActForward.String(), "be the same.")
	assert.Equal(t, "unknown", Action(0).String(), "be the same.")
}
