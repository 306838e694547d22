package mesh

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// FloatsPerVertex is the interleaved layout produced by Interleave:
// Position(3) + UV(2) + Normal(3)
const FloatsPerVertex = 8

// Fragment is an indexed triangle buffer. Hex prisms, rocks, trees and clouds
// are all built as fragments and merged into larger fragments for drawing.
type Fragment struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32
}

// VertexCount returns the number of vertices in the fragment.
func (f *Fragment) VertexCount() int {
	if f == nil {
		return 0
	}
	return len(f.Positions)
}

// TriangleCount returns the number of indexed triangles.
func (f *Fragment) TriangleCount() int {
	if f == nil {
		return 0
	}
	return len(f.Indices) / 3
}

// Empty reports whether the fragment holds no triangles.
func (f *Fragment) Empty() bool {
	return f == nil || len(f.Indices) == 0
}

// Translate moves every vertex by (x, y, z).
func (f *Fragment) Translate(x, y, z float32) *Fragment {
	d := mgl32.Vec3{x, y, z}
	for i := range f.Positions {
		f.Positions[i] = f.Positions[i].Add(d)
	}
	return f
}

// RotateY rotates the fragment about the world Y axis (not its own center).
func (f *Fragment) RotateY(angle float32) *Fragment {
	return f.Transform(mgl32.HomogRotate3DY(angle))
}

// Transform applies a rigid transform to positions and normals.
func (f *Fragment) Transform(m mgl32.Mat4) *Fragment {
	rot := m.Mat3()
	for i, p := range f.Positions {
		f.Positions[i] = m.Mul4x1(p.Vec4(1)).Vec3()
	}
	for i, n := range f.Normals {
		if n.Len() > 0 {
			f.Normals[i] = rot.Mul3x1(n).Normalize()
		}
	}
	return f
}

// Bounds returns the axis-aligned bounding box. An empty fragment returns zero vectors.
func (f *Fragment) Bounds() (lo, hi mgl32.Vec3) {
	if f.VertexCount() == 0 {
		return
	}
	lo, hi = f.Positions[0], f.Positions[0]
	for _, p := range f.Positions[1:] {
		for k := 0; k < 3; k++ {
			if p[k] < lo[k] {
				lo[k] = p[k]
			}
			if p[k] > hi[k] {
				hi[k] = p[k]
			}
		}
	}
	return lo, hi
}

// Interleave flattens the fragment into the vertex layout used by the GPU
// upload path: position, uv, normal.
func (f *Fragment) Interleave() []float32 {
	out := make([]float32, 0, f.VertexCount()*FloatsPerVertex)
	for i, p := range f.Positions {
		var uv mgl32.Vec2
		if i < len(f.UVs) {
			uv = f.UVs[i]
		}
		var n mgl32.Vec3
		if i < len(f.Normals) {
			n = f.Normals[i]
		}
		out = append(out, p[0], p[1], p[2], uv[0], uv[1], n[0], n[1], n[2])
	}
	return out
}

// Fingerprint hashes the vertex and index data. Two fragments with the same
// geometry in the same order have the same fingerprint.
func (f *Fragment) Fingerprint() uint64 {
	h := xxhash.New()
	if f == nil {
		return h.Sum64()
	}
	buf := make([]byte, 0, 64)
	for i, p := range f.Positions {
		buf = buf[:0]
		buf = appendVec(buf, p[:]...)
		if i < len(f.Normals) {
			buf = appendVec(buf, f.Normals[i][:]...)
		}
		if i < len(f.UVs) {
			buf = appendVec(buf, f.UVs[i][:]...)
		}
		_, _ = h.Write(buf)
	}
	for _, idx := range f.Indices {
		buf = binary.LittleEndian.AppendUint32(buf[:0], idx)
		_, _ = h.Write(buf)
	}
	return h.Sum64()
}

func appendVec(buf []byte, vs ...float32) []byte {
	for _, v := range vs {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
	}
	return buf
}

// Merge concatenates fragments into a new fragment in one pass, rebasing
// indices. Nil and empty fragments are skipped. The result is never nil.
func Merge(frags ...*Fragment) *Fragment {
	vertices, indices := 0, 0
	for _, f := range frags {
		if f.Empty() {
			continue
		}
		vertices += len(f.Positions)
		indices += len(f.Indices)
	}
	out := &Fragment{
		Positions: make([]mgl32.Vec3, 0, vertices),
		Normals:   make([]mgl32.Vec3, 0, vertices),
		UVs:       make([]mgl32.Vec2, 0, vertices),
		Indices:   make([]uint32, 0, indices),
	}
	for _, f := range frags {
		if f.Empty() {
			continue
		}
		base := uint32(len(out.Positions))
		out.Positions = append(out.Positions, f.Positions...)
		out.Normals = append(out.Normals, padVec3(f.Normals, len(f.Positions))...)
		out.UVs = append(out.UVs, padVec2(f.UVs, len(f.Positions))...)
		for _, idx := range f.Indices {
			out.Indices = append(out.Indices, base+idx)
		}
	}
	return out
}

func padVec3(v []mgl32.Vec3, n int) []mgl32.Vec3 {
	if len(v) >= n {
		return v[:n]
	}
	return append(append([]mgl32.Vec3(nil), v...), make([]mgl32.Vec3, n-len(v))...)
}

func padVec2(v []mgl32.Vec2, n int) []mgl32.Vec2 {
	if len(v) >= n {
		return v[:n]
	}
	return append(append([]mgl32.Vec2(nil), v...), make([]mgl32.Vec2, n-len(v))...)
}
