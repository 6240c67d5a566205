package shader

import (
	"fmt"
	"strings"
)

// CompileError is returned when a shader stage fails to compile.
type CompileError struct {
	Stage Stage
	Log   string // Compiler info log.
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// LinkError is returned when a program fails to link.
type LinkError struct {
	Log string // Linker info log.
}

func (e *LinkError) Error() string {
	return "failed to link program: " + e.Log
}

// ErrorSet defines a list of one or more errors and is itself an error.
type ErrorSet []error

func (e ErrorSet) Len() int {
	return len(e)
}

func (e *ErrorSet) Append(args ...error) {
	*e = append(*e, args...)
}

func (e ErrorSet) Error() string {
	var sb strings.Builder
	for i, err := range e {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}
