package model

import "github.com/drsaluml/gorasterizer/internal/raster/mathx"

// Vertex is one corner of a triangle as loaded from an OBJ face, before
// any shader has touched it.
type Vertex struct {
	Position mathx.Vec3
	Normal   mathx.Vec3
	Texcoord mathx.Vec2
	Color    mathx.Vec4
}

// PreOp is a bitmask of transforms LoadFromFile applies to a scene right
// after parsing, mirroring the original loader's PreOperation flags.
type PreOp uint8

const (
	PreOpNone        PreOp = 0
	PreOpRecalcNormal PreOp = 1 << 0
)

// Mesh is one `o`/`g` group: a flat, already-triangulated vertex list (no
// index buffer — each face's fan is expanded at load time) plus the name
// of the material it was tagged with via `usemtl`.
type Mesh struct {
	Name     string
	Vertices []Vertex
	Material string
	HasMaterial bool
}

// TextureMaps holds the filenames referenced by a material's map_* lines,
// relative to the mtllib file they were declared in. An empty string
// means the map is absent.
type TextureMaps struct {
	Ambient           string
	Diffuse           string
	Specular          string
	SpecularHighlight string
	Alpha             string
	Reflection        string
	Bump              string
}

// Material is one `newmtl` block. Scalar fields default to the values a
// renderer should assume when the corresponding line is absent: opaque
// (Dissolve=1), illum model 2 (color+highlight).
type Material struct {
	Name string

	Ambient  mathx.Vec3
	Diffuse  mathx.Vec3
	Specular mathx.Vec3
	Emissive mathx.Vec3

	SpecularExponent  float64
	Dissolve          float64
	OpticalDensity    float64
	TransmissionFilter mathx.Vec3
	Illum             int

	Maps TextureMaps
}

func newMaterial(name string) *Material {
	return &Material{
		Name:              name,
		Dissolve:          1,
		OpticalDensity:    1,
		Illum:             2,
		TransmissionFilter: mathx.Vec3One,
	}
}

// Mtllib is one `mtllib` file an OBJ referenced, resolved relative to the
// OBJ's own directory, plus the names of the materials it declared. This
// mirrors model.hpp's LoadFromFile return tuple, which carries the mtllib
// list alongside the meshes rather than discarding it once materials are
// merged into one name-keyed map.
type Mtllib struct {
	Path      string
	Materials []string
}

// LoadResult is everything LoadFromFile extracts from an OBJ scene: its
// meshes in file order, every material declared by any mtllib the OBJ
// referenced (keyed by name for usemtl lookup), and the mtllib files
// themselves.
type LoadResult struct {
	Meshes    []Mesh
	Materials map[string]*Material
	Mtllibs   []Mtllib
}
