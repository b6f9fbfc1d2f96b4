package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeGraph(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestRun_Connected(t *testing.T) {
	file := writeGraph(t, "4 4\n1 2 1\n2 3 2\n3 4 3\n1 4 10\n")

	for _, method := range []string{"prim", "kruskal"} {
		var out, errOut bytes.Buffer
		code := run([]string{"--method", method, "--start", "0", "--print-tree", file}, &out, &errOut)
		require.Equal(t, exitOK, code, errOut.String())
		assert.Contains(t, out.String(), "Overall cost of minimum spanning tree is: 6\n")
		assert.Contains(t, out.String(), "1-2 (1)\n")
		assert.Contains(t, out.String(), "3-4 (3)\n")
		assert.Contains(t, errOut.String(), "msg=\"graph loaded\"")
	}
}

func TestRun_LargeTotalFormatting(t *testing.T) {
	file := writeGraph(t, "3 2\n1 2 1000000\n2 3 234567\n")
	var out, errOut bytes.Buffer
	code := run([]string{"--log-level", "error", file}, &out, &errOut)
	require.Equal(t, exitOK, code, errOut.String())
	assert.Equal(t, "Overall cost of minimum spanning tree is: 1,234,567\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestRun_Disconnected(t *testing.T) {
	file := writeGraph(t, "4 2\n1 2 4\n3 4 5\n")

	t.Run("prim", func(t *testing.T) {
		var out, errOut bytes.Buffer
		code := run([]string{"--start", "0", "--print-tree", file}, &out, &errOut)
		assert.Equal(t, exitDisconnected, code)
		assert.Equal(t, "Graph is disconnected: 2 vertices unreached from vertex 1, no spanning tree exists.\n"+
			"Overall cost of the tree spanning vertex 1's component is: 4\n"+
			"1-2 (4)\n", out.String())
	})

	t.Run("prim decrease-key", func(t *testing.T) {
		var out, errOut bytes.Buffer
		code := run([]string{"--start", "2", "--strategy", "decrease-key", "--validate", file}, &out, &errOut)
		assert.Equal(t, exitDisconnected, code)
		assert.Contains(t, out.String(), "2 vertices unreached from vertex 3")
		assert.Contains(t, out.String(), "component is: 5\n")
		assert.Contains(t, errOut.String(), "start=2")
	})

	t.Run("prim random start", func(t *testing.T) {
		var out, errOut bytes.Buffer
		code := run([]string{"--seed", "11", file}, &out, &errOut)
		assert.Equal(t, exitDisconnected, code)
		assert.Contains(t, out.String(), "Graph is disconnected: 2 vertices unreached from vertex ")
		assert.Contains(t, errOut.String(), "start=")
		assert.NotContains(t, errOut.String(), "start=-1")
	})

	t.Run("kruskal", func(t *testing.T) {
		var out, errOut bytes.Buffer
		code := run([]string{"--method", "kruskal", "--print-tree", file}, &out, &errOut)
		assert.Equal(t, exitDisconnected, code)
		assert.Equal(t, "Graph is disconnected: 2 components, no spanning tree exists.\n"+
			"Overall cost of the minimum spanning forest is: 9\n"+
			"1-2 (4)\n3-4 (5)\n", out.String())
		assert.NotContains(t, errOut.String(), "start=")
	})
}

func TestRun_PrintGraph(t *testing.T) {
	file := writeGraph(t, "3 1\n1 2 7\n")
	var out, errOut bytes.Buffer
	run([]string{"--print-graph", "--log-level", "error", file}, &out, &errOut)
	assert.Contains(t, out.String(), "Graph has 3 vertices and 1 edge(s).\n")
	assert.Contains(t, out.String(), "Vertex 1 has edge(s) with: 2(7)\n")
	assert.Contains(t, out.String(), "Vertex 3 has edge(s) with: nobody\n")
}

func TestRun_ConfigFile(t *testing.T) {
	file := writeGraph(t, "3 3\n1 2 1\n2 3 1\n1 3 1\n")
	conf := filepath.Join(t.TempDir(), "primmst.toml")
	require.NoError(t, os.WriteFile(conf, []byte("method = \"kruskal\"\nlog_level = \"error\"\n"), 0o600))

	var out, errOut bytes.Buffer
	code := run([]string{"--config", conf, file}, &out, &errOut)
	require.Equal(t, exitOK, code, errOut.String())
	assert.Contains(t, out.String(), "is: 2\n")
	assert.Empty(t, errOut.String())

	// Flags override the file.
	out.Reset()
	errOut.Reset()
	code = run([]string{"-c", conf, "--log-level", "info", file}, &out, &errOut)
	require.Equal(t, exitOK, code)
	assert.Contains(t, errOut.String(), "method=kruskal")
}

func TestRun_Errors(t *testing.T) {
	var out, errOut bytes.Buffer

	assert.Equal(t, exitError, run(nil, &out, &errOut))
	assert.Contains(t, errOut.String(), "input file must be given")

	errOut.Reset()
	assert.Equal(t, exitError, run([]string{"--method", "boruvka", "x"}, &out, &errOut))

	errOut.Reset()
	assert.Equal(t, exitError, run([]string{filepath.Join(t.TempDir(), "missing")}, &out, &errOut))
	assert.Contains(t, errOut.String(), "failed to read graph")

	errOut.Reset()
	bad := writeGraph(t, "3 2\n1 2 1\n")
	assert.Equal(t, exitError, run([]string{bad}, &out, &errOut))

	errOut.Reset()
	assert.Equal(t, exitError, run([]string{"--start", "9", writeGraph(t, "2 1\n1 2 1\n")}, &out, &errOut))
	assert.Contains(t, errOut.String(), "computation failed")
}
