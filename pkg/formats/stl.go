// STL (stereolithography) format parser for triangulated surface meshes.
package formats

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// STL format errors.
var (
	ErrTruncatedSTLData        = errors.New("truncated STL data")
	ErrInvalidSTLTriangleCount = errors.New("invalid STL triangle count")
	ErrMalformedASCIISTL       = errors.New("malformed ASCII STL")
)

const (
	stlHeaderSize = 80
	stlRecordSize = 50 // normal + 3 vertices (12 float32) + uint16 attribute
)

// STLTriangle is a single facet.
type STLTriangle struct {
	Normal    [3]float32    // Facet normal as stored (may be zero)
	Vertices  [3][3]float32 // Corner positions, counter-clockwise
	Attribute uint16        // Attribute byte count (binary only)
}

// STL represents a parsed STL file.
type STL struct {
	Name      string // Solid name (ASCII) or trimmed header text (binary)
	Binary    bool   // True if parsed from the binary encoding
	Triangles []STLTriangle
}

// LoadSTL reads and parses an STL file from disk.
func LoadSTL(path string) (*STL, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSTL(data)
}

// ParseSTL parses binary or ASCII STL data. The binary encoding is detected by
// its exact size, since binary headers are allowed to start with "solid".
func ParseSTL(data []byte) (*STL, error) {
	if len(data) >= stlHeaderSize+4 {
		count := binary.LittleEndian.Uint32(data[stlHeaderSize:])
		if uint64(len(data)) == stlHeaderSize+4+uint64(count)*stlRecordSize {
			return parseBinarySTL(data, count)
		}
	}

	if isASCIISTL(data) {
		return parseASCIISTL(data)
	}

	if len(data) < stlHeaderSize+4 {
		return nil, ErrTruncatedSTLData
	}
	count := binary.LittleEndian.Uint32(data[stlHeaderSize:])
	return nil, fmt.Errorf("%w: header declares %d triangles, file holds %d bytes",
		ErrInvalidSTLTriangleCount, count, len(data))
}

func isASCIISTL(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return bytes.HasPrefix(trimmed, []byte("solid")) && bytes.Contains(trimmed, []byte("facet"))
}

func parseBinarySTL(data []byte, count uint32) (*STL, error) {
	stl := &STL{
		Name:      cString(data[:stlHeaderSize]),
		Binary:    true,
		Triangles: make([]STLTriangle, count),
	}
	stl.Name = strings.TrimSpace(stl.Name)

	r := bytes.NewReader(data[stlHeaderSize+4:])
	for i := uint32(0); i < count; i++ {
		tri := &stl.Triangles[i]
		if err := binary.Read(r, binary.LittleEndian, &tri.Normal); err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i, ErrTruncatedSTLData)
		}
		if err := binary.Read(r, binary.LittleEndian, &tri.Vertices); err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i, ErrTruncatedSTLData)
		}
		if err := binary.Read(r, binary.LittleEndian, &tri.Attribute); err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i, ErrTruncatedSTLData)
		}
	}

	return stl, nil
}

func parseASCIISTL(data []byte) (*STL, error) {
	stl := &STL{}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var (
		current  STLTriangle
		vertexN  int
		inFacet  bool
		lineNo   int
		sawSolid bool
	)

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			sawSolid = true
			stl.Name = strings.Join(fields[1:], " ")
		case "facet":
			if inFacet {
				return nil, fmt.Errorf("%w: line %d: nested facet", ErrMalformedASCIISTL, lineNo)
			}
			if len(fields) != 5 || fields[1] != "normal" {
				return nil, fmt.Errorf("%w: line %d: expected 'facet normal nx ny nz'", ErrMalformedASCIISTL, lineNo)
			}
			n, err := parseTriple(fields[2:])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedASCIISTL, lineNo, err)
			}
			current = STLTriangle{Normal: n}
			vertexN = 0
			inFacet = true
		case "vertex":
			if !inFacet || vertexN >= 3 || len(fields) != 4 {
				return nil, fmt.Errorf("%w: line %d: unexpected vertex", ErrMalformedASCIISTL, lineNo)
			}
			v, err := parseTriple(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedASCIISTL, lineNo, err)
			}
			current.Vertices[vertexN] = v
			vertexN++
		case "endfacet":
			if !inFacet || vertexN != 3 {
				return nil, fmt.Errorf("%w: line %d: facet with %d vertices", ErrMalformedASCIISTL, lineNo, vertexN)
			}
			stl.Triangles = append(stl.Triangles, current)
			inFacet = false
		case "outer", "endloop", "endsolid":
			// Structural keywords carry no data.
		default:
			return nil, fmt.Errorf("%w: line %d: unknown keyword %q", ErrMalformedASCIISTL, lineNo, fields[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if !sawSolid {
		return nil, fmt.Errorf("%w: missing 'solid'", ErrMalformedASCIISTL)
	}
	if inFacet {
		return nil, fmt.Errorf("%w: unterminated facet", ErrMalformedASCIISTL)
	}

	return stl, nil
}

func parseTriple(fields []string) ([3]float32, error) {
	var out [3]float32
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return out, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

// Indexed welds identical corner positions and returns a shared vertex list
// plus index triples into it, one per triangle in file order.
func (s *STL) Indexed() (vertices [][3]float32, faces [][3]int) {
	lookup := make(map[[3]float32]int, len(s.Triangles))
	faces = make([][3]int, len(s.Triangles))

	for i, tri := range s.Triangles {
		for c, v := range tri.Vertices {
			idx, ok := lookup[v]
			if !ok {
				idx = len(vertices)
				lookup[v] = idx
				vertices = append(vertices, v)
			}
			faces[i][c] = idx
		}
	}

	return vertices, faces
}

// TriangleCount returns the number of facets.
func (s *STL) TriangleCount() int {
	return len(s.Triangles)
}
