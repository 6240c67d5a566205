// Package gldriver implements shader.Driver on top of OpenGL 4.6 core.
//
// All calls require a current OpenGL context on the calling thread and
// gl.Init to have been called.
package gldriver

import (
	"strings"

	"github.com/go-gl/gl/v4.6-core/gl"

	"github.com/hexaflex/quad/shader"
)

// Driver issues shader and program calls to the current OpenGL context.
type Driver struct{}

var _ shader.Driver = Driver{}

// New returns a driver for the current context.
func New() Driver {
	return Driver{}
}

// shaderTypes maps stages onto OpenGL shader types.
var shaderTypes = map[shader.Stage]uint32{
	shader.Vertex:   gl.VERTEX_SHADER,
	shader.Fragment: gl.FRAGMENT_SHADER,
}

func (Driver) CreateShader(stage shader.Stage) uint32 {
	return gl.CreateShader(shaderTypes[stage])
}

func (Driver) ShaderSource(id uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csources, nil)
	free()
}

func (Driver) CompileShader(id uint32) {
	gl.CompileShader(id)
}

func (Driver) CompileStatus(id uint32) bool {
	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Driver) ShaderInfoLog(id uint32) string {
	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(id, logLength, nil, gl.Str(log))
	return log
}

func (Driver) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}

func (Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (Driver) AttachShader(program, id uint32) {
	gl.AttachShader(program, id)
}

func (Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (Driver) LinkStatus(program uint32) bool {
	return programStatus(program, gl.LINK_STATUS)
}

func (Driver) ValidateProgram(program uint32) {
	gl.ValidateProgram(program)
}

func (Driver) ValidateStatus(program uint32) bool {
	return programStatus(program, gl.VALIDATE_STATUS)
}

func (Driver) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
	return log
}

func (Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

// programStatus queries a boolean program parameter.
func programStatus(program, pname uint32) bool {
	var status int32
	gl.GetProgramiv(program, pname, &status)
	return status != gl.FALSE
}
