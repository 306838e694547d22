package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Cylinder builds a Y-aligned cylinder centered on the origin. A zero top
// radius produces a cone and six radial segments a hexagonal prism. Vertex
// order and angle convention (x = r*sin(theta), z = r*cos(theta)) match the
// common scene-graph layout so that UVs line up with tiling textures.
func Cylinder(radiusTop, radiusBottom, height float32, radialSegments, heightSegments int, openEnded bool) *Fragment {
	if radialSegments < 3 {
		radialSegments = 3
	}
	if heightSegments < 1 {
		heightSegments = 1
	}
	f := &Fragment{}
	half := height / 2
	slope := float32(0)
	if height != 0 {
		slope = (radiusBottom - radiusTop) / height
	}

	// torso
	grid := make([][]uint32, heightSegments+1)
	for y := 0; y <= heightSegments; y++ {
		v := float32(y) / float32(heightSegments)
		radius := v*(radiusBottom-radiusTop) + radiusTop
		row := make([]uint32, radialSegments+1)
		for x := 0; x <= radialSegments; x++ {
			u := float32(x) / float32(radialSegments)
			sin, cos := sinCos(u * 2 * math.Pi)
			row[x] = uint32(len(f.Positions))
			f.Positions = append(f.Positions, mgl32.Vec3{radius * sin, -v*height + half, radius * cos})
			f.Normals = append(f.Normals, mgl32.Vec3{sin, slope, cos}.Normalize())
			f.UVs = append(f.UVs, mgl32.Vec2{u, 1 - v})
		}
		grid[y] = row
	}
	for x := 0; x < radialSegments; x++ {
		for y := 0; y < heightSegments; y++ {
			a := grid[y][x]
			b := grid[y+1][x]
			c := grid[y+1][x+1]
			d := grid[y][x+1]
			f.Indices = append(f.Indices, a, b, d, b, c, d)
		}
	}

	if !openEnded {
		if radiusTop > 0 {
			cylinderCap(f, radiusTop, half, radialSegments, true)
		}
		if radiusBottom > 0 {
			cylinderCap(f, radiusBottom, half, radialSegments, false)
		}
	}
	return f
}

func cylinderCap(f *Fragment, radius, half float32, radialSegments int, top bool) {
	sign := float32(-1)
	if top {
		sign = 1
	}
	centerStart := uint32(len(f.Positions))
	for x := 1; x <= radialSegments; x++ {
		f.Positions = append(f.Positions, mgl32.Vec3{0, half * sign, 0})
		f.Normals = append(f.Normals, mgl32.Vec3{0, sign, 0})
		f.UVs = append(f.UVs, mgl32.Vec2{0.5, 0.5})
	}
	rimStart := uint32(len(f.Positions))
	for x := 0; x <= radialSegments; x++ {
		u := float32(x) / float32(radialSegments)
		sin, cos := sinCos(u * 2 * math.Pi)
		f.Positions = append(f.Positions, mgl32.Vec3{radius * sin, half * sign, radius * cos})
		f.Normals = append(f.Normals, mgl32.Vec3{0, sign, 0})
		f.UVs = append(f.UVs, mgl32.Vec2{cos*0.5 + 0.5, sin*0.5*sign + 0.5})
	}
	for x := uint32(0); x < uint32(radialSegments); x++ {
		c := centerStart + x
		i := rimStart + x
		if top {
			f.Indices = append(f.Indices, i, i+1, c)
		} else {
			f.Indices = append(f.Indices, i+1, i, c)
		}
	}
}

// Sphere builds a UV sphere centered on the origin. Degenerate triangles at
// the poles are not emitted.
func Sphere(radius float32, widthSegments, heightSegments int) *Fragment {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}
	f := &Fragment{}
	grid := make([][]uint32, heightSegments+1)
	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		var uOffset float32
		switch iy {
		case 0:
			uOffset = 0.5 / float32(widthSegments)
		case heightSegments:
			uOffset = -0.5 / float32(widthSegments)
		}
		sinT, cosT := sinCos(v * math.Pi)
		row := make([]uint32, widthSegments+1)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			sinP, cosP := sinCos(u * 2 * math.Pi)
			p := mgl32.Vec3{-radius * cosP * sinT, radius * cosT, radius * sinP * sinT}
			n := mgl32.Vec3{-cosP * sinT, cosT, sinP * sinT}
			row[ix] = uint32(len(f.Positions))
			f.Positions = append(f.Positions, p)
			f.Normals = append(f.Normals, n.Normalize())
			f.UVs = append(f.UVs, mgl32.Vec2{u + uOffset, 1 - v})
		}
		grid[iy] = row
	}
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := grid[iy][ix+1]
			b := grid[iy][ix]
			c := grid[iy+1][ix]
			d := grid[iy+1][ix+1]
			if iy != 0 {
				f.Indices = append(f.Indices, a, b, d)
			}
			if iy != heightSegments-1 {
				f.Indices = append(f.Indices, b, c, d)
			}
		}
	}
	return f
}

func sinCos(a float32) (float32, float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}
