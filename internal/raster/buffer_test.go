package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColorAttachmentSetGetRoundTrip(t *testing.T) {
	c := NewColorAttachment(4, 3)
	c.Set(1, 2, Color{1, 0.5, 0, 1})
	got := c.Get(1, 2)
	assert.InDelta(t, 1, got[0], 1.0/255)
	assert.InDelta(t, 0.5, got[1], 1.0/255)
	assert.InDelta(t, 0, got[2], 1.0/255)
}

func TestColorAttachmentClearFillsEveryPixel(t *testing.T) {
	c := NewColorAttachment(2, 2)
	c.Clear(Color{0, 1, 0, 1})
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			got := c.Get(x, y)
			require.InDelta(t, 1, got[1], 1.0/255)
		}
	}
}

func TestDepthAttachmentStartsAtMostNegativeFloat(t *testing.T) {
	d := NewDepthAttachment(2, 2)
	assert.Equal(t, -math.MaxFloat64, d.Get(0, 0))
}

func TestDepthAttachmentTestNearerWins(t *testing.T) {
	d := NewDepthAttachment(1, 1)
	assert.True(t, d.Test(0, 0, -5))
	d.Set(0, 0, -5)

	assert.True(t, d.Test(0, 0, -1)) // nearer (less negative) passes
	assert.False(t, d.Test(0, 0, -10)) // farther fails
	assert.False(t, d.Test(0, 0, -5)) // tie fails
}
