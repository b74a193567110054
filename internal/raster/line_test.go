package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drsaluml/gorasterizer/internal/raster/mathx"
)

func TestCohenSutherlandClipFullyInsideUnchanged(t *testing.T) {
	min, max := mathx.V2(0, 0), mathx.V2(10, 10)
	p1, p2, ok := CohenSutherlandClip(mathx.V2(2, 2), mathx.V2(8, 8), min, max)
	require.True(t, ok)
	assert.Equal(t, mathx.V2(2, 2), p1)
	assert.Equal(t, mathx.V2(8, 8), p2)
}

func TestCohenSutherlandClipFullyOutsideRejected(t *testing.T) {
	min, max := mathx.V2(0, 0), mathx.V2(10, 10)
	_, _, ok := CohenSutherlandClip(mathx.V2(20, 20), mathx.V2(30, 30), min, max)
	assert.False(t, ok)
}

func TestCohenSutherlandClipTruncatesAtBoundary(t *testing.T) {
	min, max := mathx.V2(0, 0), mathx.V2(10, 10)
	p1, p2, ok := CohenSutherlandClip(mathx.V2(-5, 5), mathx.V2(5, 5), min, max)
	require.True(t, ok)
	assert.InDelta(t, 0, p1[0], 1e-9)
	assert.InDelta(t, 5, p1[1], 1e-9)
	assert.Equal(t, mathx.V2(5, 5), p2)
}

func TestBresenhamWalksEveryIntegerStepOnDiagonal(t *testing.T) {
	bres, ok := NewBresenham(mathx.V2(0, 0), mathx.V2(3, 3), mathx.V2(0, 0), mathx.V2(10, 10))
	require.True(t, ok)

	var pts [][2]int
	for {
		x, y, ok := bres.Step()
		if !ok {
			break
		}
		pts = append(pts, [2]int{x, y})
	}
	assert.Equal(t, [][2]int{{0, 0}, {1, 1}, {2, 2}}, pts)
}

func TestBresenhamHandlesSteepLine(t *testing.T) {
	bres, ok := NewBresenham(mathx.V2(0, 0), mathx.V2(1, 4), mathx.V2(0, 0), mathx.V2(10, 10))
	require.True(t, ok)

	count := 0
	for {
		_, _, ok := bres.Step()
		if !ok {
			break
		}
		count++
	}
	assert.Equal(t, 4, count)
}
