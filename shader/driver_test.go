package shader

import (
	"fmt"
	"strings"
)

// badToken marks source text the fake driver refuses to compile.
const badToken = "syntax error"

// fakeDriver records calls and simulates a shader compiler.
type fakeDriver struct {
	next      uint32
	sources   map[uint32]string
	stages    map[uint32]Stage
	compiled  map[uint32]bool
	attached  map[uint32][]uint32
	shaders   map[uint32]bool // Live shader objects.
	programs  map[uint32]bool // Live program objects.
	linked    []uint32
	validated []uint32
	failLink  bool
	failValid bool
}

var _ Driver = &fakeDriver{}

func newFakeDriver() *fakeDriver {
	return &fakeDriver{
		sources:  make(map[uint32]string),
		stages:   make(map[uint32]Stage),
		compiled: make(map[uint32]bool),
		attached: make(map[uint32][]uint32),
		shaders:  make(map[uint32]bool),
		programs: make(map[uint32]bool),
	}
}

func (d *fakeDriver) CreateShader(stage Stage) uint32 {
	d.next++
	d.shaders[d.next] = true
	d.stages[d.next] = stage
	return d.next
}

func (d *fakeDriver) ShaderSource(id uint32, source string) {
	d.sources[id] = source
}

func (d *fakeDriver) CompileShader(id uint32) {
	src := d.sources[id]
	d.compiled[id] = len(strings.TrimSpace(src)) > 0 && !strings.Contains(src, badToken)
}

func (d *fakeDriver) CompileStatus(id uint32) bool {
	return d.compiled[id]
}

func (d *fakeDriver) ShaderInfoLog(id uint32) string {
	if d.compiled[id] {
		return "\x00"
	}
	if len(strings.TrimSpace(d.sources[id])) == 0 {
		return fmt.Sprintf("0:1(1): error: %s shader has no main function\n\x00", d.stages[id])
	}
	return fmt.Sprintf("0:1(1): error: %s\n\x00", badToken)
}

func (d *fakeDriver) DeleteShader(id uint32) {
	if !d.shaders[id] {
		panic(fmt.Sprintf("delete of unknown shader %d", id))
	}
	delete(d.shaders, id)
}

func (d *fakeDriver) CreateProgram() uint32 {
	d.next++
	d.programs[d.next] = true
	return d.next
}

func (d *fakeDriver) AttachShader(program, id uint32) {
	d.attached[program] = append(d.attached[program], id)
}

func (d *fakeDriver) LinkProgram(program uint32) {
	d.linked = append(d.linked, program)
}

func (d *fakeDriver) LinkStatus(uint32) bool {
	return !d.failLink
}

func (d *fakeDriver) ValidateProgram(program uint32) {
	d.validated = append(d.validated, program)
}

func (d *fakeDriver) ValidateStatus(uint32) bool {
	return !d.failValid
}

func (d *fakeDriver) ProgramInfoLog(uint32) string {
	if d.failLink {
		return "error: unresolved varying\n\x00"
	}
	if d.failValid {
		return "validation: no vertex array bound\n\x00"
	}
	return "\x00"
}

func (d *fakeDriver) DeleteProgram(program uint32) {
	if !d.programs[program] {
		panic(fmt.Sprintf("delete of unknown program %d", program))
	}
	delete(d.programs, program)
}
