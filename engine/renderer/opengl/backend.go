package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/spaghettifunk/studio3d/engine/core"
	"github.com/spaghettifunk/studio3d/engine/renderer/metadata"
)

type OpenGLRenderer struct {
	program  uint32
	uniforms *UniformLocations

	framebufferWidth  int32
	framebufferHeight int32
	clearColor        mgl32.Vec4
}

func New(width, height int) *OpenGLRenderer {
	return &OpenGLRenderer{
		framebufferWidth:  int32(width),
		framebufferHeight: int32(height),
		clearColor:        mgl32.Vec4{0.2, 0.2, 0.2, 1},
	}
}

// Initialize loads the GL function pointers of the current context and
// builds the Phong program. It must run on the thread owning the context.
func (r *OpenGLRenderer) Initialize(vertexSource, fragmentSource string) error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	core.LogInfo("OpenGL version %s", gl.GoStr(gl.GetString(gl.VERSION)))
	core.LogInfo("GLSL version %s", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	program, err := NewProgram(vertexSource, fragmentSource)
	if err != nil {
		return err
	}
	r.program = program
	r.uniforms = NewUniformLocations(program)
	return nil
}

func (r *OpenGLRenderer) Shutdown() error {
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
	return nil
}

func (r *OpenGLRenderer) Resized(width, height int) {
	r.framebufferWidth = int32(width)
	r.framebufferHeight = int32(height)
}

func (r *OpenGLRenderer) BeginFrame() {
	gl.Viewport(0, 0, r.framebufferWidth, r.framebufferHeight)
	gl.ClearColor(r.clearColor.X(), r.clearColor.Y(), r.clearColor.Z(), r.clearColor.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(r.program)
}

func (r *OpenGLRenderer) EndFrame() {
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

func (r *OpenGLRenderer) SetFrameUniforms(frame *metadata.FrameData) {
	gl.UniformMatrix4fv(r.uniforms.Get("V"), 1, false, &frame.View[0])
	gl.UniformMatrix4fv(r.uniforms.Get("P"), 1, false, &frame.Projection[0])
	gl.Uniform3fv(r.uniforms.Get("camPos"), 1, &frame.CameraPosition[0])
	gl.Uniform4fv(r.uniforms.Get("la"), 1, &frame.Ambient[0])
	gl.Uniform4fv(r.uniforms.Get("lsPos"), 1, &frame.LightPosition[0])
	gl.Uniform4fv(r.uniforms.Get("lsColor"), 1, &frame.LightColor[0])
}

func (r *OpenGLRenderer) UploadObject(object *metadata.Object) error {
	if len(object.Vertices) == 0 || len(object.Indices) == 0 {
		return core.ErrEmptyMesh
	}
	createGeometry(object)
	return nil
}

func (r *OpenGLRenderer) UploadTexture(object *metadata.Object, data *metadata.TextureData) error {
	if data == nil || len(data.Pixels) == 0 {
		return core.ErrDecodeTexture
	}
	destroyTexture(&object.GPU.Texture)
	object.GPU.Texture = createTexture(data)
	return nil
}

// DrawObject issues one draw call per material group of object.
func (r *OpenGLRenderer) DrawObject(object *metadata.Object) {
	model := object.Model.Matrix()
	gl.UniformMatrix4fv(r.uniforms.Get("M"), 1, false, &model[0])

	if object.Info.ShowWireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	useTexture := object.Info.HasTexture && object.Info.ShowTexture && object.GPU.Texture != 0
	if useTexture {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, object.GPU.Texture)
		gl.Uniform1i(r.uniforms.Get("tex"), 0)
		gl.Uniform1i(r.uniforms.Get("useTexture"), 1)
	} else {
		gl.Uniform1i(r.uniforms.Get("useTexture"), 0)
	}

	gl.BindVertexArray(object.GPU.VAO)
	groups := object.Groups
	if len(groups) == 0 {
		groups = []metadata.MaterialGroup{{Material: -1, Offset: 0, Count: len(object.Indices)}}
	}
	for _, g := range groups {
		r.applyMaterial(object.MaterialFor(g))
		gl.DrawElementsWithOffset(gl.TRIANGLES, int32(g.Count), gl.UNSIGNED_INT, uintptr(g.Offset*4))
	}
	gl.BindVertexArray(0)

	if useTexture {
		gl.BindTexture(gl.TEXTURE_2D, 0)
	}
}

func (r *OpenGLRenderer) applyMaterial(m metadata.Material) {
	gl.Uniform3fv(r.uniforms.Get("ka"), 1, &m.Ambient[0])
	gl.Uniform3fv(r.uniforms.Get("kd"), 1, &m.Diffuse[0])
	gl.Uniform3fv(r.uniforms.Get("ks"), 1, &m.Specular[0])
	gl.Uniform1f(r.uniforms.Get("alpha"), m.Shininess)
	gl.Uniform1f(r.uniforms.Get("opacity"), m.Opacity)
}

func (r *OpenGLRenderer) DestroyObject(object *metadata.Object) {
	destroyGeometry(object)
	destroyTexture(&object.GPU.Texture)
}
