package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	assert.False(t, f.Has(ActionRotate))

	f.Set(ActionRotate)
	f.Set(ActionLeft)
	assert.True(t, f.Has(ActionRotate))
	assert.True(t, f.Has(ActionLeft))
	assert.False(t, f.Has(ActionDrop))

	f.Clear()
	assert.False(t, f.Has(ActionRotate))
	assert.False(t, f.Has(ActionLeft))
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	assert.False(t, f.Has(ActionDrop))

	f.Set(ActionDrop)
	assert.True(t, f.Has(ActionDrop))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Drop", ActionDrop.String())
	assert.Equal(t, "Rotate", ActionRotate.String())
	assert.Equal(t, "Unknown", Action(99).String())
}

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("bright_green")
	assert.True(t, ok)
	assert.Equal(t, ColorBrightGreen, c)
	assert.Equal(t, "bright_green", c.String())

	_, ok = ParseColor("chartreuse")
	assert.False(t, ok)
}
