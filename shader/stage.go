// Package shader loads combined vertex/fragment shader source files and
// builds them into linked GPU programs.
package shader

// Stage identifies one half of a shader program.
type Stage int

// Known shader stages.
const (
	Vertex Stage = iota
	Fragment
)

// Stages lists all stages in compile order.
var Stages = [...]Stage{Vertex, Fragment}

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	}
	return "unknown"
}

// Source holds the vertex and fragment text of a single shader file.
type Source struct {
	Vertex   string
	Fragment string
}

// Get returns the source text for the given stage.
func (s Source) Get(stage Stage) string {
	if stage == Fragment {
		return s.Fragment
	}
	return s.Vertex
}
