package model

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/drsaluml/gorasterizer/internal/raster/mathx"
)

type faceCorner struct {
	vertex   int
	texcoord int // -1 if absent
	normal   int // -1 if absent
}

type objModel struct {
	name     string
	faces    [][]faceCorner
	material string
	hasMtl   bool
}

type objScene struct {
	vertices  []mathx.Vec3
	normals   []mathx.Vec3
	texcoords []mathx.Vec2
	models    []objModel
	mtllibs   []string // filenames referenced by `mtllib`, relative to the obj's directory
}

// LoadFromFile parses the Wavefront OBJ file at path, resolves every
// `mtllib` it references relative to the OBJ's own directory, expands
// each face into a flat triangle list (fan-triangulating polygons with
// more than 3 corners), and applies preOp. It mirrors model::LoadFromFile
// and objloader::LoadFromFile from the original renderer, ported to a
// line-oriented bufio.Scanner rather than a hand-rolled token queue.
func LoadFromFile(path string, preOp PreOp) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("model: open %s: %w", path, err)
	}
	defer f.Close()

	scene, err := parseOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("model: parse %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	materials := make(map[string]*Material)
	mtllibs := make([]Mtllib, 0, len(scene.mtllibs))
	for _, lib := range scene.mtllibs {
		libPath := filepath.Join(dir, lib)
		mats, err := loadMtllib(libPath)
		if err != nil {
			return nil, fmt.Errorf("model: mtllib %s: %w", lib, err)
		}
		names := make([]string, 0, len(mats))
		for name, mat := range mats {
			materials[name] = mat
			names = append(names, name)
		}
		mtllibs = append(mtllibs, Mtllib{Path: libPath, Materials: names})
	}

	meshes := make([]Mesh, 0, len(scene.models))
	for _, m := range scene.models {
		mesh := Mesh{Name: m.name, Material: m.material, HasMaterial: m.hasMtl}
		for _, face := range m.faces {
			mesh.Vertices = append(mesh.Vertices, triangulateFan(scene, face)...)
		}
		meshes = append(meshes, mesh)
	}

	if preOp&PreOpRecalcNormal != 0 {
		recalcNormals(meshes)
	}

	return &LoadResult{Meshes: meshes, Materials: materials, Mtllibs: mtllibs}, nil
}

// triangulateFan expands one polygonal face into (len(face)-2) triangles
// using a fan from its first corner, the conventional OBJ-to-triangle-list
// rule for convex polygons.
func triangulateFan(scene *objScene, face []faceCorner) []Vertex {
	if len(face) < 3 {
		return nil
	}
	resolve := func(c faceCorner) Vertex {
		v := Vertex{Color: mathx.Vec4One}
		if c.vertex >= 0 && c.vertex < len(scene.vertices) {
			v.Position = scene.vertices[c.vertex]
		}
		if c.normal >= 0 && c.normal < len(scene.normals) {
			v.Normal = scene.normals[c.normal]
		}
		if c.texcoord >= 0 && c.texcoord < len(scene.texcoords) {
			v.Texcoord = scene.texcoords[c.texcoord]
		}
		return v
	}
	var out []Vertex
	for i := 1; i+1 < len(face); i++ {
		out = append(out, resolve(face[0]), resolve(face[i]), resolve(face[i+1]))
	}
	return out
}

// recalcNormals overwrites every triangle's three normals with its flat
// face normal, per model::LoadFromFile's RecalcNormal preOp.
func recalcNormals(meshes []Mesh) {
	for m := range meshes {
		verts := meshes[m].Vertices
		for i := 0; i+3 <= len(verts); i += 3 {
			v1, v2, v3 := verts[i], verts[i+1], verts[i+2]
			norm := v3.Position.Sub(v2.Position).Cross(v2.Position.Sub(v1.Position)).Normalize()
			verts[i].Normal = norm
			verts[i+1].Normal = norm
			verts[i+2].Normal = norm
		}
	}
}

// parseOBJ scans f line by line. A malformed v/vn/vt/f line is logged and
// skipped rather than aborting the whole load, matching loadMtllib's
// skip-and-continue policy for bad MTL lines.
func parseOBJ(f *os.File) (*objScene, error) {
	scene := &objScene{}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				fmt.Fprintf(os.Stderr, "model: line %d: skipping malformed v: %v\n", lineNo, err)
				continue
			}
			scene.vertices = append(scene.vertices, v)
		case "vn":
			v, err := parseVec3(fields[1:])
			if err != nil {
				fmt.Fprintf(os.Stderr, "model: line %d: skipping malformed vn: %v\n", lineNo, err)
				continue
			}
			scene.normals = append(scene.normals, v)
		case "vt":
			v, err := parseVec2(fields[1:])
			if err != nil {
				fmt.Fprintf(os.Stderr, "model: line %d: skipping malformed vt: %v\n", lineNo, err)
				continue
			}
			scene.texcoords = append(scene.texcoords, v)
		case "o", "g":
			name := ""
			if len(fields) > 1 {
				name = fields[1]
			}
			scene.models = append(scene.models, objModel{name: name})
		case "f":
			if len(scene.models) == 0 {
				scene.models = append(scene.models, objModel{name: "default"})
			}
			face, err := parseFace(fields[1:], len(scene.vertices), len(scene.texcoords), len(scene.normals))
			if err != nil {
				fmt.Fprintf(os.Stderr, "model: line %d: skipping malformed f: %v\n", lineNo, err)
				continue
			}
			last := len(scene.models) - 1
			scene.models[last].faces = append(scene.models[last].faces, face)
		case "usemtl":
			if len(scene.models) == 0 {
				scene.models = append(scene.models, objModel{name: "default"})
			}
			last := len(scene.models) - 1
			if len(fields) > 1 {
				scene.models[last].material = fields[1]
				scene.models[last].hasMtl = true
			}
		case "mtllib":
			if len(fields) > 1 {
				scene.mtllibs = append(scene.mtllibs, fields[1])
			}
		}
	}
	return scene, sc.Err()
}

func parseVec3(fields []string) (mathx.Vec3, error) {
	if len(fields) < 3 {
		return mathx.Vec3{}, fmt.Errorf("expected 3 components, got %d", len(fields))
	}
	var v mathx.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return mathx.Vec3{}, err
		}
		v[i] = f
	}
	return v, nil
}

func parseVec2(fields []string) (mathx.Vec2, error) {
	if len(fields) < 2 {
		return mathx.Vec2{}, fmt.Errorf("expected 2 components, got %d", len(fields))
	}
	var v mathx.Vec2
	for i := 0; i < 2; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return mathx.Vec2{}, err
		}
		v[i] = f
	}
	return v, nil
}

// parseFace reads "v/vt/vn" triplets (vt and vn optional), resolving
// negative (relative-to-end) indices per the OBJ spec and converting to
// 0-based.
func parseFace(fields []string, nv, nt, nn int) ([]faceCorner, error) {
	resolveIndex := func(s string, count int) (int, error) {
		if s == "" {
			return -1, nil
		}
		i, err := strconv.Atoi(s)
		if err != nil {
			return -1, err
		}
		if i < 0 {
			return count + i, nil
		}
		return i - 1, nil
	}

	corners := make([]faceCorner, 0, len(fields))
	for _, tok := range fields {
		parts := strings.Split(tok, "/")
		vIdx, err := resolveIndex(parts[0], nv)
		if err != nil {
			return nil, fmt.Errorf("face vertex index %q: %w", tok, err)
		}
		c := faceCorner{vertex: vIdx, texcoord: -1, normal: -1}
		if len(parts) > 1 {
			if t, err := resolveIndex(parts[1], nt); err == nil {
				c.texcoord = t
			}
		}
		if len(parts) > 2 {
			if n, err := resolveIndex(parts[2], nn); err == nil {
				c.normal = n
			}
		}
		corners = append(corners, c)
	}
	return corners, nil
}
