package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drsaluml/gorasterizer/internal/raster/mathx"
)

func TestFrustumContainsPointOnAxis(t *testing.T) {
	f := NewFrustum(1, 100, 1, mathx.Radians(60))
	assert.True(t, f.Contain(mathx.V3(0, 0, -10)))
}

func TestFrustumRejectsPointBehindNear(t *testing.T) {
	f := NewFrustum(1, 100, 1, mathx.Radians(60))
	assert.False(t, f.Contain(mathx.V3(0, 0, -0.5)))
}

func TestFrustumRejectsPointBeyondFar(t *testing.T) {
	f := NewFrustum(1, 100, 1, mathx.Radians(60))
	assert.False(t, f.Contain(mathx.V3(0, 0, -200)))
}

func TestFrustumRejectsPointOutsideSidePlanes(t *testing.T) {
	f := NewFrustum(1, 100, 1, mathx.Radians(60))
	assert.False(t, f.Contain(mathx.V3(1000, 0, -10)))
}

func TestCameraMoveToUpdatesViewMatTranslation(t *testing.T) {
	cam := NewCamera(1, 100, 1, mathx.Radians(60))
	cam.MoveTo(mathx.V3(5, 0, 0))

	p := cam.ViewMat.MulVec4(mathx.V4(5, 0, 0, 1))
	assert.InDelta(t, 0, p[0], 1e-9)
}

func TestCameraViewDirLooksDownNegativeZByDefault(t *testing.T) {
	cam := NewCamera(1, 100, 1, mathx.Radians(60))
	assert.InDelta(t, -1, cam.ViewDir[2], 1e-9)
}
