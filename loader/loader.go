// Package loader reads and writes undirected weighted graphs in the plain
// edge-list text format:
//
//	n m
//	u1 v1 w1
//	...
//	um vm wm
//
// The header holds the vertex and edge counts. Each edge line holds two
// 1-based vertex ids and an integer weight, separated by whitespace. Blank
// lines are skipped; anything after the m-th edge is ignored. Self-loops
// and parallel edges are accepted.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/primmst/core"
)

// Sentinel errors for graph file parsing. Each is wrapped with the offending
// line number.
var (
	// ErrHeader indicates a missing or malformed "n m" header.
	ErrHeader = errors.New("loader: could not read number of vertices & edges")

	// ErrEdgeCount indicates fewer edge lines than the header declared.
	ErrEdgeCount = errors.New("loader: number of edges does not match header")

	// ErrBadEdge indicates an edge line that is not three integers.
	ErrBadEdge = errors.New("loader: could not read an edge")
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// MaxVertices is the largest vertex count Read accepts in a header.
const MaxVertices = 1 << 24

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Read parses a graph from r.
//
// Errors:
//   - ErrHeader    if the first non-blank line is not two non-negative integers,
//     or n exceeds MaxVertices.
//   - ErrEdgeCount if input ends before m edges were read.
//   - ErrBadEdge   if an edge line is not three integers, or the weight does
//     not fit in an int32.
//   - core.ErrVertexOutOfRange (wrapped) if an id is outside [1, n].
//   - any read error from r.
func Read(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	p := &parser{sc: sc}

	// 1. Header.
	fields, ok := p.next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("loader: %w", err)
		}
		return nil, fmt.Errorf("line %d: %w", p.line, ErrHeader)
	}
	nm, err := ints(fields, 2)
	if err != nil || nm[0] < 0 || nm[1] < 0 {
		return nil, fmt.Errorf("line %d: %q: %w", p.line, strings.Join(fields, " "), ErrHeader)
	}
	if nm[0] > MaxVertices {
		return nil, fmt.Errorf("line %d: %d vertices, at most %d: %w", p.line, nm[0], MaxVertices, ErrHeader)
	}
	n, m := int(nm[0]), nm[1]

	g, err := core.NewGraph(n, core.WithLoops(), core.WithMultiEdges())
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", p.line, err)
	}

	// 2. Exactly m edges.
	for i := int64(0); i < m; i++ {
		fields, ok = p.next()
		if !ok {
			if err = sc.Err(); err != nil {
				return nil, fmt.Errorf("loader: %w", err)
			}
			return nil, fmt.Errorf("line %d: read %d of %d edges: %w", p.line, i, m, ErrEdgeCount)
		}
		uvw, err := ints(fields, 3)
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", p.line, strings.Join(fields, " "), ErrBadEdge)
		}
		if uvw[2] < math.MinInt32 || uvw[2] > math.MaxInt32 {
			return nil, fmt.Errorf("line %d: weight %d outside int32: %w", p.line, uvw[2], ErrBadEdge)
		}
		if uvw[0] < 1 || uvw[0] > nm[0] || uvw[1] < 1 || uvw[1] > nm[0] {
			return nil, fmt.Errorf("line %d: edge %d-%d with n=%d: %w", p.line, uvw[0], uvw[1], n, core.ErrVertexOutOfRange)
		}
		// File ids are 1-based.
		u, v := int(uvw[0])-1, int(uvw[1])-1
		if err = g.AddEdge(u, v, int32(uvw[2])); err != nil {
			return nil, fmt.Errorf("line %d: %w", p.line, err)
		}
	}

	return g, nil
}

// Write emits g in the format accepted by Read.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	edges := g.Edges()
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.VertexCount(), len(edges)); err != nil {
		return fmt.Errorf("loader: %w", err)
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", e.From+1, e.To+1, e.Weight); err != nil {
			return fmt.Errorf("loader: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("loader: %w", err)
	}

	return nil
}

// parser yields whitespace-split fields of non-blank lines and tracks the
// current line number.
type parser struct {
	sc   *bufio.Scanner
	line int
}

func (p *parser) next() ([]string, bool) {
	for p.sc.Scan() {
		p.line++
		if fields := strings.Fields(p.sc.Text()); len(fields) > 0 {
			return fields, true
		}
	}

	return nil, false
}

// ints parses the first k fields as int64. Extra fields are ignored.
func ints(fields []string, k int) ([]int64, error) {
	if len(fields) < k {
		return nil, fmt.Errorf("want %d fields, got %d", k, len(fields))
	}
	out := make([]int64, k)
	for i := 0; i < k; i++ {
		v, err := strconv.ParseInt(fields[i], 10, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
