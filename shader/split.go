package shader

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Marker is the token identifying a section marker line.
const Marker = "#shader"

// maxLineSize bounds the length of a single source line.
const maxLineSize = 1024 * 1024

// Load reads the shader file at the given path and splits it into
// its vertex and fragment sections.
//
// If the file can not be opened, the returned source is empty.
func Load(path string) (Source, error) {
	fd, err := os.Open(path)
	if err != nil {
		return Source{}, errors.Wrapf(err, "failed to open shader %q", path)
	}

	defer fd.Close()

	src, err := Parse(fd)
	if err != nil {
		return src, errors.Wrapf(err, "failed to read shader %q", path)
	}

	return src, nil
}

// Parse splits r into vertex and fragment sections.
//
// A line containing Marker selects the section named by the keyword on that
// same line. Marker lines are not copied. Lines preceding the first marker
// are discarded. Every other line is appended to the current section,
// followed by a newline.
func Parse(r io.Reader) (Source, error) {
	blocks := make(map[Stage]*strings.Builder, len(Stages))
	for _, stage := range Stages {
		blocks[stage] = new(strings.Builder)
	}

	var current *strings.Builder

	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, maxLineSize)

	for scanner.Scan() {
		line := scanner.Text()

		if strings.Contains(line, Marker) {
			if stage, ok := markerStage(line); ok {
				current = blocks[stage]
			}
			continue
		}

		if current == nil {
			continue
		}

		current.WriteString(line)
		current.WriteByte('\n')
	}

	src := Source{
		Vertex:   blocks[Vertex].String(),
		Fragment: blocks[Fragment].String(),
	}

	return src, scanner.Err()
}

// markerStage returns the stage named on a marker line.
// Stages are tested in compile order, so the vertex keyword wins
// if both are present.
func markerStage(line string) (Stage, bool) {
	for _, stage := range Stages {
		if strings.Contains(line, stage.String()) {
			return stage, true
		}
	}
	return 0, false
}
