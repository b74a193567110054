package raster

import (
	"math"

	"github.com/drsaluml/gorasterizer/internal/raster/mathx"
)

// LightConfig holds precomputed lighting parameters for the demo's
// Blinn-Phong pixel shader. Ambient+hemisphere fill, a main directional
// light, a rim light, and a specular term; all scalars combine into one
// shading multiplier consumed by a PixelStage closure.
type LightConfig struct {
	LightDir mathx.Vec3
	RimDir   mathx.Vec3
	ViewDir  mathx.Vec3
	HalfMain mathx.Vec3

	Ambient float64
	Hemi    float64
	Direct  float64
	Rim     float64
	SpecInt float64
	SpecPow float64
}

// DefaultLightConfig returns a three-point studio-style lighting setup.
func DefaultLightConfig() LightConfig {
	lightDir := mathx.V3(180, 260, 140).Normalize()
	rimDir := mathx.V3(-160, 130, -210).Normalize()
	viewDir := mathx.V3(0, -110, -400).Normalize()
	halfMain := lightDir.Sub(viewDir).Normalize()

	return LightConfig{
		LightDir: lightDir,
		RimDir:   rimDir,
		ViewDir:  viewDir,
		HalfMain: halfMain,
		Ambient:  0.55,
		Hemi:     0.50,
		Direct:   1.50,
		Rim:      0.60,
		SpecInt:  0.45,
		SpecPow:  12.0,
	}
}

// ComputeShade returns the combined lighting scalar for a surface normal.
func (lc LightConfig) ComputeShade(normal mathx.Vec3) float64 {
	ndlMain := math.Abs(normal.Dot(lc.LightDir))
	ndlRim := math.Abs(normal.Dot(lc.RimDir))

	hemi := (1.0-math.Abs(normal[1]))*0.5 + 0.5
	hemiLight := hemi * lc.Hemi

	ndh := normal.Dot(lc.HalfMain)
	if ndh < 0 {
		ndh = 0
	}
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemiLight + ndlMain*lc.Direct + ndlRim*lc.Rim + spec
}

// ACESTonemap applies ACES filmic tone mapping to a linear color value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

// NormalSlot, TexcoordSlot and ColorSlot are the attribute slot
// conventions LitPixelStage and internal/batch's mesh vertex setup agree on.
const (
	NormalSlot   = 0 // Vec3 slot: surface normal
	TexcoordSlot = 0 // Vec2 slot: uv
	ColorSlot    = 0 // Vec4 slot: vertex color
)

// LitPixelStage returns a PixelStage that shades a textured, lit surface
// using lc and samples baseColorTex from the bound TextureStore, if any.
func LitPixelStage(lc LightConfig, baseColorTex TextureID, hasTexture bool) PixelStage {
	return func(a Attributes, u Uniforms, tex *TextureStore) Color {
		base := a.Vec4[ColorSlot]
		if hasTexture {
			if t, ok := tex.GetByID(baseColorTex); ok {
				sampled := TextureSample(t, a.Vec2[TexcoordSlot])
				base = base.Mul(sampled)
			}
		}
		shade := lc.ComputeShade(a.Vec3[NormalSlot])
		return Color{
			mathx.Clamp(base[0]*shade, 0, 1),
			mathx.Clamp(base[1]*shade, 0, 1),
			mathx.Clamp(base[2]*shade, 0, 1),
			base[3],
		}
	}
}
