package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drsaluml/gorasterizer/internal/raster/mathx"
)

func TestParseFaceResolvesOneBasedAndNegativeIndices(t *testing.T) {
	corners, err := parseFace([]string{"1/1/1", "-1/-2/-1"}, 5, 4, 3)
	require.NoError(t, err)
	require.Len(t, corners, 2)

	assert.Equal(t, faceCorner{vertex: 0, texcoord: 0, normal: 0}, corners[0])
	// -1 -> last of 5 vertices (index 4); -2 on 4 texcoords -> index 2; -1 on 3 normals -> index 2
	assert.Equal(t, faceCorner{vertex: 4, texcoord: 2, normal: 2}, corners[1])
}

func TestParseFaceAllowsMissingTexcoordAndNormal(t *testing.T) {
	corners, err := parseFace([]string{"1", "2", "3"}, 5, 0, 0)
	require.NoError(t, err)
	for _, c := range corners {
		assert.Equal(t, -1, c.texcoord)
		assert.Equal(t, -1, c.normal)
	}
}

func TestTriangulateFanExpandsQuadIntoTwoTriangles(t *testing.T) {
	scene := &objScene{
		vertices: []mathx.Vec3{mathx.V3(0, 0, 0), mathx.V3(1, 0, 0), mathx.V3(1, 1, 0), mathx.V3(0, 1, 0)},
	}
	face := []faceCorner{
		{vertex: 0, texcoord: -1, normal: -1},
		{vertex: 1, texcoord: -1, normal: -1},
		{vertex: 2, texcoord: -1, normal: -1},
		{vertex: 3, texcoord: -1, normal: -1},
	}
	verts := triangulateFan(scene, face)
	require.Len(t, verts, 6)
	// both triangles share the fan origin, corner 0
	assert.Equal(t, scene.vertices[0], verts[0].Position)
	assert.Equal(t, scene.vertices[0], verts[3].Position)
}

func TestRecalcNormalsAssignsFlatFaceNormalToAllThreeCorners(t *testing.T) {
	meshes := []Mesh{{Vertices: []Vertex{
		{Position: mathx.V3(0, 0, 0)},
		{Position: mathx.V3(1, 0, 0)},
		{Position: mathx.V3(0, 1, 0)},
	}}}
	recalcNormals(meshes)
	n0 := meshes[0].Vertices[0].Normal
	assert.Equal(t, n0, meshes[0].Vertices[1].Normal)
	assert.Equal(t, n0, meshes[0].Vertices[2].Normal)
	assert.InDelta(t, 1, n0.Len(), 1e-9)
}

func writeTemp(t *testing.T, dir, name, contents string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFromFileParsesTrianglesAndResolvesMaterial(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "scene.mtl", "newmtl red\nKd 1 0 0\n")
	objPath := writeTemp(t, dir, "scene.obj", ""+
		"mtllib scene.mtl\n"+
		"o tri\n"+
		"v 0 0 0\n"+
		"v 1 0 0\n"+
		"v 0 1 0\n"+
		"usemtl red\n"+
		"f 1 2 3\n")

	result, err := LoadFromFile(objPath, PreOpNone)
	require.NoError(t, err)
	require.Len(t, result.Meshes, 1)
	mesh := result.Meshes[0]
	assert.Equal(t, "tri", mesh.Name)
	assert.Equal(t, "red", mesh.Material)
	assert.True(t, mesh.HasMaterial)
	require.Len(t, mesh.Vertices, 3)

	mat, ok := result.Materials["red"]
	require.True(t, ok)
	assert.Equal(t, mathx.V3(1, 0, 0), mat.Diffuse)

	require.Len(t, result.Mtllibs, 1)
	assert.Equal(t, filepath.Join(dir, "scene.mtl"), result.Mtllibs[0].Path)
	assert.Equal(t, []string{"red"}, result.Mtllibs[0].Materials)
}

func TestLoadFromFileSkipsMalformedLinesAndKeepsParsing(t *testing.T) {
	dir := t.TempDir()
	objPath := writeTemp(t, dir, "scene.obj", ""+
		"o tri\n"+
		"v 0 0 0\n"+
		"v not-a-number 0 0\n"+ // malformed vertex, should be skipped
		"v 1 0 0\n"+
		"v 0 1 0\n"+
		"f 1 2 3\n")

	result, err := LoadFromFile(objPath, PreOpNone)
	require.NoError(t, err)
	require.Len(t, result.Meshes, 1)
	// the malformed "v" line never added a vertex, so indices 1/2/3 in the
	// face resolve to the three well-formed vertices that were parsed.
	verts := result.Meshes[0].Vertices
	require.Len(t, verts, 3)
	assert.Equal(t, mathx.V3(0, 0, 0), verts[0].Position)
	assert.Equal(t, mathx.V3(1, 0, 0), verts[1].Position)
	assert.Equal(t, mathx.V3(0, 1, 0), verts[2].Position)
}

func TestLoadFromFileRecalcNormalOverwritesParsedNormals(t *testing.T) {
	dir := t.TempDir()
	objPath := writeTemp(t, dir, "scene.obj", ""+
		"v 0 0 0\n"+
		"v 1 0 0\n"+
		"v 0 1 0\n"+
		"vn 0 0 1\n"+
		"f 1//1 2//1 3//1\n")

	result, err := LoadFromFile(objPath, PreOpRecalcNormal)
	require.NoError(t, err)
	verts := result.Meshes[0].Vertices
	// the parsed normal points +z; the recomputed flat normal for this
	// winding points -z, so RecalcNormal must have overwritten it.
	assert.Less(t, verts[0].Normal[2], 0.0)
}
