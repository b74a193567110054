package raster

import "github.com/drsaluml/gorasterizer/internal/raster/mathx"

// TextureID identifies a loaded texture within a TextureStore. Assigned
// monotonically starting at 0.
type TextureID int

// Texture is an immutable RGBA8 image, owned by a TextureStore.
type Texture struct {
	ID     TextureID
	Name   string
	Width  int
	Height int
	Pixels []uint8 // RGBA interleaved, len = Width*Height*4
}

// GetPixel returns the RGBA color at (x, y), components in [0,1].
func (t *Texture) GetPixel(x, y int) Color {
	if x < 0 {
		x = 0
	} else if x >= t.Width {
		x = t.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= t.Height {
		y = t.Height - 1
	}
	i := (y*t.Width + x) * 4
	return Color{
		float64(t.Pixels[i+0]) / 255,
		float64(t.Pixels[i+1]) / 255,
		float64(t.Pixels[i+2]) / 255,
		float64(t.Pixels[i+3]) / 255,
	}
}

// TextureStore owns every loaded Texture, addressable by monotonic id or
// by the name it was registered under.
type TextureStore struct {
	nextID    TextureID
	byID      map[TextureID]*Texture
	nameToID  map[string]TextureID
}

// NewTextureStore returns an empty store.
func NewTextureStore() *TextureStore {
	return &TextureStore{
		byID:     make(map[TextureID]*Texture),
		nameToID: make(map[string]TextureID),
	}
}

// Load registers pixels under name and assigns a fresh monotonic id.
// If name is already registered, its existing texture is replaced but
// keeps its original id.
func (s *TextureStore) Load(name string, width, height int, pixels []uint8) TextureID {
	if existing, ok := s.nameToID[name]; ok {
		s.byID[existing] = &Texture{ID: existing, Name: name, Width: width, Height: height, Pixels: pixels}
		return existing
	}
	id := s.nextID
	s.nextID++
	s.byID[id] = &Texture{ID: id, Name: name, Width: width, Height: height, Pixels: pixels}
	s.nameToID[name] = id
	return id
}

// GetByID returns the texture registered under id.
func (s *TextureStore) GetByID(id TextureID) (*Texture, bool) {
	t, ok := s.byID[id]
	return t, ok
}

// GetByName returns the texture registered under name.
func (s *TextureStore) GetByName(name string) (*Texture, bool) {
	id, ok := s.nameToID[name]
	if !ok {
		return nil, false
	}
	return s.GetByID(id)
}

// GetID returns the id a name was registered under.
func (s *TextureStore) GetID(name string) (TextureID, bool) {
	id, ok := s.nameToID[name]
	return id, ok
}

// TextureSample clamps uv to [0,1]^2 and returns the nearest-neighbor
// pixel — no filtering, no wrapping, per SPEC_FULL.md §4.8.
func TextureSample(t *Texture, uv mathx.Vec2) Color {
	u := mathx.Clamp(uv[0], 0, 1)
	v := mathx.Clamp(uv[1], 0, 1)
	x := int(u * float64(t.Width-1))
	y := int(v * float64(t.Height-1))
	return t.GetPixel(x, y)
}
