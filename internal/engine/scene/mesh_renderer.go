package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/quatviz/internal/engine/plot"
	"github.com/Faultbox/quatviz/internal/engine/scene/shaders"
	"github.com/Faultbox/quatviz/internal/engine/shader"
	"github.com/Faultbox/quatviz/internal/mesh"
)

// MeshRenderer draws the rotated mesh as a colormapped translucent surface
// with thin dark edges. Vertex data is re-uploaded every frame; the edge
// index buffer is built once since the topology never changes.
type MeshRenderer struct {
	surface *shader.Program
	edges   *shader.Program

	surfaceVAO, surfaceVBO uint32
	edgeVAO, edgeVBO       uint32
	edgeEBO                uint32
	edgeCount              int32
	faceCount              int

	surfaceBuf  []float32
	positionBuf []float32

	Alpha     float32
	EdgeColor [4]float32
}

// NewMeshRenderer compiles the surface and edge programs.
func NewMeshRenderer() (*MeshRenderer, error) {
	mr := &MeshRenderer{
		Alpha:     0.85,
		EdgeColor: [4]float32{0, 0, 0, 0.2},
	}

	var err error
	if mr.surface, err = shader.New("surface", shaders.SurfaceVertexShader, shaders.SurfaceFragmentShader); err != nil {
		return nil, fmt.Errorf("surface shader: %w", err)
	}
	if mr.edges, err = shader.New("edges", shaders.EdgeVertexShader, shaders.EdgeFragmentShader); err != nil {
		mr.Destroy()
		return nil, fmt.Errorf("edge shader: %w", err)
	}

	gl.GenVertexArrays(1, &mr.surfaceVAO)
	gl.BindVertexArray(mr.surfaceVAO)
	gl.GenBuffers(1, &mr.surfaceVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, mr.surfaceVBO)
	stride := int32(plot.SurfaceStride * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.GenVertexArrays(1, &mr.edgeVAO)
	gl.BindVertexArray(mr.edgeVAO)
	gl.GenBuffers(1, &mr.edgeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, mr.edgeVBO)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.GenBuffers(1, &mr.edgeEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mr.edgeEBO)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return mr, nil
}

// SetTopology uploads the unique edges of faces. It must be called before
// Draw with meshes sharing these faces.
func (mr *MeshRenderer) SetTopology(faces [][3]int) {
	indices := plot.Edges(faces)
	mr.edgeCount = int32(len(indices))
	mr.faceCount = len(faces)
	if len(indices) == 0 {
		return
	}

	gl.BindVertexArray(mr.edgeVAO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, mr.edgeEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)
	gl.BindVertexArray(0)
}

// Draw renders m with the given view-projection matrix.
func (mr *MeshRenderer) Draw(m *mesh.Mesh, viewProj [16]float32) {
	if m == nil || len(m.Faces) == 0 {
		return
	}
	if len(m.Faces) != mr.faceCount {
		mr.SetTopology(m.Faces)
	}

	// translucent: test depth against opaque lines but do not occlude
	gl.DepthMask(false)
	defer gl.DepthMask(true)

	mr.surfaceBuf = plot.Surface(mr.surfaceBuf, m.Vertices, m.Faces, mr.Alpha)
	mr.surface.Use()
	mr.surface.SetMat4("uViewProj", viewProj)
	gl.BindVertexArray(mr.surfaceVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, mr.surfaceVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(mr.surfaceBuf)*4, unsafe.Pointer(&mr.surfaceBuf[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(mr.surfaceBuf)/plot.SurfaceStride))

	if mr.edgeCount > 0 {
		mr.positionBuf = plot.Positions(mr.positionBuf, m.Vertices)
		mr.edges.Use()
		mr.edges.SetMat4("uViewProj", viewProj)
		c := mr.EdgeColor
		mr.edges.SetVec4("uColor", c[0], c[1], c[2], c[3])
		gl.BindVertexArray(mr.edgeVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, mr.edgeVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(mr.positionBuf)*4, unsafe.Pointer(&mr.positionBuf[0]), gl.STREAM_DRAW)
		gl.DrawElementsWithOffset(gl.LINES, mr.edgeCount, gl.UNSIGNED_INT, 0)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Destroy releases GL resources.
func (mr *MeshRenderer) Destroy() {
	for _, vao := range []*uint32{&mr.surfaceVAO, &mr.edgeVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
			*vao = 0
		}
	}
	for _, buf := range []*uint32{&mr.surfaceVBO, &mr.edgeVBO, &mr.edgeEBO} {
		if *buf != 0 {
			gl.DeleteBuffers(1, buf)
			*buf = 0
		}
	}
	if mr.surface != nil {
		mr.surface.Delete()
		mr.surface = nil
	}
	if mr.edges != nil {
		mr.edges.Delete()
		mr.edges = nil
	}
}
