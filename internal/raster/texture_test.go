package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drsaluml/gorasterizer/internal/raster/mathx"
)

func checkerPixels() (w, h int, pix []uint8) {
	// 2x2: red, green / blue, white
	return 2, 2, []uint8{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}
}

func TestTextureStoreLoadAssignsMonotonicIDs(t *testing.T) {
	store := NewTextureStore()
	w, h, pix := checkerPixels()

	id1 := store.Load("a", w, h, pix)
	id2 := store.Load("b", w, h, pix)
	assert.Equal(t, TextureID(0), id1)
	assert.Equal(t, TextureID(1), id2)

	gotID, ok := store.GetID("a")
	require.True(t, ok)
	assert.Equal(t, id1, gotID)
}

func TestTextureStoreReloadKeepsID(t *testing.T) {
	store := NewTextureStore()
	w, h, pix := checkerPixels()

	id1 := store.Load("a", w, h, pix)
	id2 := store.Load("a", w, h, pix)
	assert.Equal(t, id1, id2)
}

func TestTextureSampleClampsOutOfRangeUV(t *testing.T) {
	store := NewTextureStore()
	w, h, pix := checkerPixels()
	id := store.Load("a", w, h, pix)
	tex, ok := store.GetByID(id)
	require.True(t, ok)

	below := TextureSample(tex, mathx.V2(-1, -1))
	above := TextureSample(tex, mathx.V2(2, 2))

	assert.Equal(t, Color{1, 0, 0, 1}, below)           // (0,0) -> red
	assert.Equal(t, Color{1, 1, 1, 1}, above)           // (1,1) -> white
}

func TestTextureSampleNearestNeighborNoBlending(t *testing.T) {
	// 4x1 strip: red, green, blue, white.
	store := NewTextureStore()
	pix := []uint8{
		255, 0, 0, 255,
		0, 255, 0, 255,
		0, 0, 255, 255,
		255, 255, 255, 255,
	}
	id := store.Load("strip", 4, 1, pix)
	tex, _ := store.GetByID(id)

	got := TextureSample(tex, mathx.V2(0.4, 0))
	assert.Equal(t, Color{0, 1, 0, 1}, got) // u=0.4 -> x=int(0.4*3)=1 -> green
}
