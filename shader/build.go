package shader

import (
	"io"
	"log"
	"strings"
)

// Builder compiles shader stages and links them into programs.
type Builder struct {
	driver Driver
	log    *log.Logger
}

// NewBuilder creates a builder issuing calls to d and writing diagnostics
// to l. A nil logger discards all output.
func NewBuilder(d Driver, l *log.Logger) *Builder {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	return &Builder{driver: d, log: l}
}

// CompileStage compiles src as the given stage. It returns 0 if compilation
// failed. The compiler log is written to the builder's logger either way.
func (b *Builder) CompileStage(stage Stage, src string) uint32 {
	id, _ := b.Compile(stage, src)
	return id
}

// Compile compiles src as the given stage and returns the shader object.
// On failure the shader object is deleted and a *CompileError is returned.
func (b *Builder) Compile(stage Stage, src string) (uint32, error) {
	d := b.driver

	id := d.CreateShader(stage)
	d.ShaderSource(id, src)
	d.CompileShader(id)

	if !d.CompileStatus(id) {
		msg := trimLog(d.ShaderInfoLog(id))
		b.log.Printf("%s shader: %s", stage, msg)
		d.DeleteShader(id)
		return 0, &CompileError{Stage: stage, Log: msg}
	}

	b.log.Println(stage, "shader compilation OK")
	return id, nil
}

// Build compiles and links the given source pair.
func (b *Builder) Build(src Source) (uint32, error) {
	return b.BuildProgram(src.Vertex, src.Fragment)
}

// BuildProgram compiles the vertex and fragment sources and links them into
// a new program.
//
// Both stages are always compiled so all diagnostics are reported. If either
// fails, nothing is linked and an ErrorSet holding the compile errors is
// returned. The individual shader objects are deleted before returning.
func (b *Builder) BuildProgram(vertex, fragment string) (uint32, error) {
	d := b.driver

	var errorset ErrorSet
	var shaders []uint32

	for _, stage := range Stages {
		src := vertex
		if stage == Fragment {
			src = fragment
		}

		id, err := b.Compile(stage, src)
		if err != nil {
			errorset.Append(err)
			continue
		}

		shaders = append(shaders, id)
	}

	defer func() {
		for _, id := range shaders {
			d.DeleteShader(id)
		}
	}()

	if errorset.Len() > 0 {
		return 0, errorset
	}

	program := d.CreateProgram()
	for _, id := range shaders {
		d.AttachShader(program, id)
	}

	d.LinkProgram(program)

	if !d.LinkStatus(program) {
		msg := trimLog(d.ProgramInfoLog(program))
		b.log.Printf("program %d: %s", program, msg)
		d.DeleteProgram(program)
		return 0, &LinkError{Log: msg}
	}

	// Validation depends on the current pipeline state, which need not be
	// complete yet. Report it, but keep the program.
	d.ValidateProgram(program)
	if !d.ValidateStatus(program) {
		b.log.Println("program", program, "failed validation:", trimLog(d.ProgramInfoLog(program)))
	}

	b.log.Println("program", program, "linked")
	return program, nil
}

// Release deletes the given program. Zero is ignored.
func (b *Builder) Release(program uint32) {
	if program != 0 {
		b.driver.DeleteProgram(program)
	}
}

// trimLog strips the NUL terminator and trailing whitespace from an info log.
func trimLog(v string) string {
	return strings.TrimRight(v, "\x00 \t\r\n")
}
