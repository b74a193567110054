package raster

import "sort"

// Edge is one side of a Trapezoid, the two vertices it interpolates
// between as y sweeps from top to bottom.
type Edge struct {
	V1, V2 Vertex
}

// Trapezoid is a horizontal slice of a triangle bounded by two
// non-horizontal edges and two scanlines (top, bottom).
type Trapezoid struct {
	Top, Bottom float64
	Left, Right Edge
}

// TrapezoidsFromTriangle decomposes a triangle into at most two
// Trapezoids. ok1/ok2 report which of trap1/trap2 are valid; a triangle
// degenerate in x or y (collinear) yields ok1=ok2=false.
func TrapezoidsFromTriangle(vertices [3]Vertex) (trap1, trap2 Trapezoid, ok1, ok2 bool) {
	v := vertices
	sort.Slice(v[:], func(i, j int) bool { return v[i].Position[1] < v[j].Position[1] })

	allSameX := v[0].Position[0] == v[1].Position[0] && v[0].Position[0] == v[2].Position[0]
	allSameY := v[0].Position[1] == v[1].Position[1] && v[0].Position[1] == v[2].Position[1]
	if allSameX || allSameY {
		return Trapezoid{}, Trapezoid{}, false, false
	}

	// Top two share y: apex is v[2].
	if v[0].Position[1] == v[1].Position[1] {
		a, b := v[0], v[1]
		if a.Position[0] > b.Position[0] {
			a, b = b, a
		}
		return Trapezoid{
			Top: a.Position[1], Bottom: v[2].Position[1],
			Left:  Edge{a, v[2]},
			Right: Edge{b, v[2]},
		}, Trapezoid{}, true, false
	}

	// Bottom two share y: apex is v[0].
	if v[1].Position[1] == v[2].Position[1] {
		a, b := v[1], v[2]
		if a.Position[0] > b.Position[0] {
			a, b = b, a
		}
		return Trapezoid{
			Top: v[0].Position[1], Bottom: a.Position[1],
			Left:  Edge{v[0], a},
			Right: Edge{v[0], b},
		}, Trapezoid{}, true, false
	}

	// General case: split the long edge (v0,v2) at v1's scanline.
	t := (v[1].Position[1] - v[0].Position[1]) / (v[2].Position[1] - v[0].Position[1])
	xSplit := v[0].Position[0] + t*(v[2].Position[0]-v[0].Position[0])

	if xSplit > v[1].Position[0] {
		trap1 = Trapezoid{
			Top: v[0].Position[1], Bottom: v[1].Position[1],
			Left:  Edge{v[0], v[1]},
			Right: Edge{v[0], v[2]},
		}
		trap2 = Trapezoid{
			Top: v[1].Position[1], Bottom: v[2].Position[1],
			Left:  Edge{v[1], v[2]},
			Right: Edge{v[0], v[2]},
		}
	} else {
		trap1 = Trapezoid{
			Top: v[0].Position[1], Bottom: v[1].Position[1],
			Left:  Edge{v[0], v[2]},
			Right: Edge{v[0], v[1]},
		}
		trap2 = Trapezoid{
			Top: v[1].Position[1], Bottom: v[2].Position[1],
			Left:  Edge{v[0], v[2]},
			Right: Edge{v[1], v[2]},
		}
	}
	return trap1, trap2, true, true
}

// Scanline is one horizontal row of a Trapezoid: a left vertex, a
// per-pixel step, the row's y, and its pixel width.
type Scanline struct {
	Vertex Vertex
	Step   Vertex
	Y      float64
	Width  float64
}

// ScanlineFromTrapezoid interpolates trap's left and right edges at
// initY, yielding the row's left vertex and per-pixel stride.
func ScanlineFromTrapezoid(trap Trapezoid, initY float64) Scanline {
	t1 := (initY - trap.Left.V1.Position[1]) / (trap.Left.V2.Position[1] - trap.Left.V1.Position[1])
	t2 := (initY - trap.Right.V1.Position[1]) / (trap.Right.V2.Position[1] - trap.Right.V1.Position[1])

	left := LerpVertex(trap.Left.V1, trap.Left.V2, t1)
	right := LerpVertex(trap.Right.V1, trap.Right.V2, t2)

	width := right.Position[0] - left.Position[0]
	rhWidth := 1.0 / width

	posStep := right.Position.Sub(left.Position).Scale(rhWidth)
	attrStep := right.Attrs.Sub(left.Attrs).Scale(rhWidth)

	return Scanline{
		Vertex: left,
		Step:   Vertex{Position: posStep, Attrs: attrStep},
		Y:      initY,
		Width:  width,
	}
}

// nearPlaneClipLine interpolates a vertex straddling the near plane: out
// is behind it (z > nearPlaneZ... in this view-space convention, "behind"
// means more positive z than -near), inner is in front.
func nearPlaneClipLine(out, inner Vertex, nearPlaneZ float64) Vertex {
	proportion := (nearPlaneZ - inner.Position[2]) / (out.Position[2] - inner.Position[2])
	position := out.Position.Sub(inner.Position).Scale(proportion).Add(inner.Position)
	attrs := LerpAttributes(inner.Attrs, out.Attrs, proportion)
	return Vertex{Position: position, Attrs: attrs}
}

// NearPlaneClip splits a triangle crossing the near plane z = -near into
// 1 or 2 in-front triangles, per the behind-vertex-count table in
// SPEC_FULL.md §4. tri2Ok reports whether a second triangle was produced.
func NearPlaneClip(vertices [3]Vertex, near float64) (tri1, tri2 [3]Vertex, tri2Ok bool) {
	nz := -near
	v0, v1, v2 := vertices[0], vertices[1], vertices[2]

	behind := func(v Vertex) bool { return v.Position[2] > nz }

	switch {
	case behind(v0) && behind(v1):
		n0 := nearPlaneClipLine(v0, v2, nz)
		n1 := nearPlaneClipLine(v1, v2, nz)
		return [3]Vertex{n0, n1, v2}, [3]Vertex{}, false

	case behind(v0) && behind(v2):
		n0 := nearPlaneClipLine(v0, v1, nz)
		n2 := nearPlaneClipLine(v2, v1, nz)
		return [3]Vertex{n0, v1, n2}, [3]Vertex{}, false

	case behind(v0):
		n1 := nearPlaneClipLine(v0, v1, nz)
		n2 := nearPlaneClipLine(v0, v2, nz)
		return [3]Vertex{v1, n2, n1}, [3]Vertex{v1, v2, n2}, true

	case behind(v1) && behind(v2):
		n1 := nearPlaneClipLine(v1, v0, nz)
		n2 := nearPlaneClipLine(v2, v0, nz)
		return [3]Vertex{v0, n1, n2}, [3]Vertex{}, false

	case behind(v1):
		n1 := nearPlaneClipLine(v2, v1, nz)
		n2 := nearPlaneClipLine(v0, v1, nz)
		return [3]Vertex{v0, n2, n1}, [3]Vertex{v0, n1, v2}, true

	default: // only v2 behind
		n1 := nearPlaneClipLine(v2, v0, nz)
		n2 := nearPlaneClipLine(v2, v1, nz)
		return [3]Vertex{v0, n2, n1}, [3]Vertex{v0, v1, n2}, true
	}
}
