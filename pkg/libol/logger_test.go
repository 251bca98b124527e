package libol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubLogger(t *testing.T) {
	out := NewSubLogger("test")
	old := Logger.Level
	defer SetLevel(old)

	SetLevel(INFO)
	assert.False(t, out.Has(DEBUG), "be the same.")
	assert.True(t, out.Has(WARN), "be the same.")

	out.Event("learn %d on %d", 10, 1)
	items := Logger.List()
	assert.NotEmpty(t, items)
	assert.Equal(t, "EVENT", items[0].Level, "be the same.")
	assert.Equal(t, "test", items[0].Module, "be the same.")
	assert.Equal(t, "learn 10 on 1", items[0].Message, "be the same.")

	out.Debug("not saved")
	assert.Equal(t, "learn 10 on 1", Logger.List()[0].Message, "debug is not saved.")
}
