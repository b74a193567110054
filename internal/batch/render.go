package batch

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"

	"github.com/drsaluml/gorasterizer/internal/config"
	"github.com/drsaluml/gorasterizer/internal/model"
	"github.com/drsaluml/gorasterizer/internal/postprocess"
	"github.com/drsaluml/gorasterizer/internal/raster"
	"github.com/drsaluml/gorasterizer/internal/raster/mathx"
	"github.com/drsaluml/gorasterizer/internal/texture"
)

// RenderScene loads one OBJ scene, draws every mesh through a lit
// pixel shader, and writes the result to outputPath (.png or .webp
// inferred from the extension). It is the single rendering path shared
// by the single-scene CLI path and the batch worker pool.
func RenderScene(cfg config.Config, modelPath, outputPath string, cache *texture.Cache) error {
	scene, err := model.LoadFromFile(modelPath, model.PreOpRecalcNormal)
	if err != nil {
		return fmt.Errorf("batch: load %s: %w", modelPath, err)
	}

	store := raster.NewTextureStore()
	texIDs := make(map[string]raster.TextureID)
	for name, mat := range scene.Materials {
		if mat.Maps.Diffuse == "" {
			continue
		}
		img := cache.Resolve(mat.Maps.Diffuse)
		if img == nil {
			fmt.Fprintf(os.Stderr, "batch: texture %q for material %q not found, skipping\n", mat.Maps.Diffuse, name)
			continue
		}
		w, h, pix := flattenNRGBA(img)
		texIDs[name] = store.Load(mat.Maps.Diffuse, w, h, pix)
	}

	superW := cfg.Width * cfg.Supersample
	superH := cfg.Height * cfg.Supersample

	cam := raster.NewCamera(0.1, 100, float64(superW)/float64(superH), mathx.Radians(60))
	cam.MoveTo(mathx.V3(0, 0, 5))
	for _, kf := range cfg.CameraPath {
		cam.MoveOffset(kf.Offset)
		cam.SetRotation(cam.Rotation().Add(kf.Rotation))
	}

	r := raster.NewRasterizer(raster.Viewport{W: superW, H: superH}, cam, store)
	r.Wireframe = cfg.Wireframe
	if cfg.Backend == "aabb" {
		r.Backend = raster.BackendAABB
	}
	r.Clear(raster.Color{0, 0, 0, 1})
	r.ClearDepth()

	lc := raster.DefaultLightConfig()
	for _, mesh := range scene.Meshes {
		texID, hasTex := texIDs[mesh.Material]
		r.Shader.PixelShading = raster.LitPixelStage(lc, texID, hasTex)
		r.DrawTriangle(mathx.Mat44Identity(), meshVertices(mesh))
	}

	img := colorAttachmentToImage(r.Color)
	if cfg.Supersample > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	return writeImage(outputPath, img, cfg.WebPQuality)
}

func meshVertices(m model.Mesh) []raster.Vertex {
	verts := make([]raster.Vertex, len(m.Vertices))
	for i, v := range m.Vertices {
		var attrs raster.Attributes
		attrs.Vec3[raster.NormalSlot] = v.Normal
		attrs.Vec2[raster.TexcoordSlot] = v.Texcoord
		attrs.Vec4[raster.ColorSlot] = v.Color
		verts[i] = raster.NewVertex(v.Position, attrs)
	}
	return verts
}

func flattenNRGBA(img *image.NRGBA) (w, h int, pix []uint8) {
	b := img.Bounds()
	w, h = b.Dx(), b.Dy()
	if img.Stride == w*4 && b.Min.X == 0 && b.Min.Y == 0 {
		return w, h, img.Pix
	}
	pix = make([]uint8, w*h*4)
	for y := 0; y < h; y++ {
		srcOff := img.PixOffset(b.Min.X, b.Min.Y+y)
		copy(pix[y*w*4:(y+1)*w*4], img.Pix[srcOff:srcOff+w*4])
	}
	return w, h, pix
}

func colorAttachmentToImage(c *raster.ColorAttachment) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	copy(img.Pix, c.Pixels)
	return img
}

func writeImage(path string, img *image.NRGBA, quality int) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("batch: mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: create %s: %w", path, err)
	}
	defer f.Close()

	switch filepath.Ext(path) {
	case ".webp":
		return nativewebp.Encode(f, img, nil)
	default:
		return png.Encode(f, img)
	}
}
