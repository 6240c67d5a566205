package shader

// Driver defines the graphics API calls needed to compile and link programs.
// All object names are plain uint32 handles; 0 is never a valid object.
//
// Implementations are not safe for concurrent use and expect to be called
// from the thread which owns the graphics context.
type Driver interface {
	CreateShader(Stage) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	CompileStatus(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	LinkStatus(program uint32) bool
	ValidateProgram(program uint32)
	ValidateStatus(program uint32) bool
	ProgramInfoLog(program uint32) string
	DeleteProgram(program uint32)
}
