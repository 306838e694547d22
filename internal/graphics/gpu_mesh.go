package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"hex-island/internal/mesh"
)

// GPUMesh is an indexed triangle mesh uploaded to the GPU. Attribute layout:
// 0 position, 1 uv, 2 normal.
type GPUMesh struct {
	vao, vbo, ebo uint32
	count         int32
}

// UploadMesh copies f into a new vertex array. The fragment is not retained.
func UploadMesh(f *mesh.Fragment) *GPUMesh {
	m := &GPUMesh{}
	if f.Empty() {
		return m
	}
	m.count = int32(len(f.Indices))
	vertices := f.Interleave()

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(f.Indices)*4, gl.Ptr(f.Indices), gl.STATIC_DRAW)

	stride := int32(mesh.FloatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 3, gl.FLOAT, false, stride, 5*4)

	gl.BindVertexArray(0)
	return m
}

// Draw issues one indexed draw call.
func (m *GPUMesh) Draw() {
	if m.count == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, nil)
}

func (m *GPUMesh) Delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
}
