// Command primmst reads an undirected weighted graph from a file and prints
// the cost of its minimum spanning tree.
//
// Usage:
//
//	primmst [flags] FILE
//
// The file holds "n m" on the first line and m lines "u v w" with 1-based
// vertex ids. Exit status is 0 on success, 1 on error and 2 when the graph
// has no spanning tree (it is disconnected).
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/primmst/core"
	"github.com/katalvlaran/primmst/internal/config"
	"github.com/katalvlaran/primmst/loader"
	"github.com/katalvlaran/primmst/mst"
)

const (
	exitOK           = 0
	exitError        = 1
	exitDisconnected = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process globals.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(stderr))

	cfg, file, err := parseArgs(args, stderr)
	if err != nil {
		level.Error(logger).Log("msg", "invalid arguments", "err", err)
		return exitError
	}
	logger = level.NewFilter(log.With(logger, "ts", log.DefaultTimestampUTC), levelFilter(cfg.LogLevel))

	// Read the graph.
	begin := time.Now()
	g, err := loader.ReadFile(file)
	if err != nil {
		level.Error(logger).Log("msg", "failed to read graph", "file", file, "err", err)
		return exitError
	}
	readTime := time.Since(begin)
	level.Info(logger).Log("msg", "graph loaded", "file", file,
		"vertices", g.VertexCount(), "edges", g.EdgeCount(), "read_time", readTime)

	if cfg.PrintGraph {
		if err = printGraph(stdout, g); err != nil {
			level.Error(logger).Log("msg", "failed to print graph", "err", err)
			return exitError
		}
	}

	// Compute.
	opts, err := cfg.PrimOptions(func() int64 { return time.Now().UnixNano() })
	if err != nil {
		level.Error(logger).Log("msg", "invalid options", "err", err)
		return exitError
	}
	begin = time.Now()
	sum, err := mst.Compute(g, cfg.Method, opts...)
	if err != nil {
		level.Error(logger).Log("msg", "computation failed", "method", cfg.Method, "err", err)
		return exitError
	}
	algoTime := time.Since(begin)
	keyvals := []interface{}{"msg", "spanning tree computed", "method", sum.Method}
	if sum.Method == mst.MethodPrim {
		keyvals = append(keyvals, "start", sum.Start)
	}
	keyvals = append(keyvals, "total", sum.Total, "tree_edges", len(sum.Edges), "algo_time", algoTime)
	level.Info(logger).Log(keyvals...)

	// Report.
	code := exitOK
	if sum.Connected {
		fmt.Fprintf(stdout, "Overall cost of minimum spanning tree is: %s\n", humanize.Comma(sum.Total))
	} else {
		code = exitDisconnected
		reportDisconnected(stdout, sum)
	}
	if cfg.PrintTree {
		for _, e := range sum.Edges {
			fmt.Fprintf(stdout, "%d-%d (%d)\n", e.From+1, e.To+1, e.Weight)
		}
	}

	return code
}

// reportDisconnected explains why no spanning tree exists. Prim spans only
// the start's component; Kruskal spans every component.
func reportDisconnected(w io.Writer, sum *mst.Summary) {
	switch sum.Method {
	case mst.MethodKruskal:
		fmt.Fprintf(w, "Graph is disconnected: %s components, no spanning tree exists.\n", humanize.Comma(int64(sum.Components)))
		fmt.Fprintf(w, "Overall cost of the minimum spanning forest is: %s\n", humanize.Comma(sum.Total))
	default:
		fmt.Fprintf(w, "Graph is disconnected: %s vertices unreached from vertex %d, no spanning tree exists.\n",
			humanize.Comma(int64(sum.Unreached)), sum.Start+1)
		fmt.Fprintf(w, "Overall cost of the tree spanning vertex %d's component is: %s\n", sum.Start+1, humanize.Comma(sum.Total))
	}
}

// parseArgs resolves the configuration: defaults, then --config file, then
// flags. It returns the single positional FILE argument.
func parseArgs(args []string, stderr io.Writer) (*config.Config, string, error) {
	var path string
	newFlagSet := func(c *config.Config) *pflag.FlagSet {
		fs := pflag.NewFlagSet("primmst", pflag.ContinueOnError)
		fs.SetOutput(stderr)
		fs.StringVarP(&path, "config", "c", path, "TOML configuration file")
		c.RegisterFlags(fs)
		fs.Usage = func() {
			fmt.Fprintf(stderr, "Usage: primmst [flags] FILE\n\n%s", fs.FlagUsages())
		}
		return fs
	}

	cfg := config.Default()
	fs := newFlagSet(cfg)
	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}
	if path != "" {
		// Re-parse over the file so flags win.
		cfg = config.Default()
		if err := cfg.Load(path); err != nil {
			return nil, "", err
		}
		fs = newFlagSet(cfg)
		if err := fs.Parse(args); err != nil {
			return nil, "", err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return nil, "", fmt.Errorf("the input file must be given as an argument")
	}

	return cfg, fs.Arg(0), nil
}

// printGraph lists each vertex's neighbours with 1-based ids.
func printGraph(w io.Writer, g *core.Graph) error {
	fmt.Fprintf(w, "Graph has %d vertices and %d edge(s).\n", g.VertexCount(), g.EdgeCount())
	for v := 0; v < g.VertexCount(); v++ {
		nbs, err := g.Neighbors(v)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Vertex %d has edge(s) with:", v+1)
		if len(nbs) == 0 {
			fmt.Fprint(w, " nobody")
		}
		for _, nb := range nbs {
			fmt.Fprintf(w, " %d(%d)", nb.Vertex+1, nb.Weight)
		}
		fmt.Fprintln(w)
	}

	return nil
}

func levelFilter(l string) level.Option {
	switch l {
	case "debug":
		return level.AllowDebug()
	case "info":
		return level.AllowInfo()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	default:
		return level.AllowAll()
	}
}
