package main

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Quad corners in clip space, two components each.
var quadVertices = []float32{
	-0.5, -0.5,
	-0.5, 0.5,
	0.5, 0.5,
	0.5, -0.5,
}

// Two triangles covering the quad.
var quadIndices = []uint32{
	0, 1, 2,
	2, 3, 0,
}

// Mesh holds the GPU buffers for the quad.
type Mesh struct {
	vao uint32
	vbo uint32
	ibo uint32
}

// uploadMesh uploads the quad vertices and indices and binds attribute 0
// to the vertex positions.
func uploadMesh() *Mesh {
	var m Mesh

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, gl.PtrOffset(0))

	gl.GenBuffers(1, &m.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(quadIndices)*4, gl.Ptr(quadIndices), gl.STATIC_DRAW)
	return &m
}

// Draw renders the quad with the currently bound program.
func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, int32(len(quadIndices)), gl.UNSIGNED_INT, gl.PtrOffset(0))
}

// Delete releases the GPU buffers.
func (m *Mesh) Delete() {
	gl.DeleteBuffers(1, &m.ibo)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}
