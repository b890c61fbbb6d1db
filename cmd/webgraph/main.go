// Command webgraph builds the link graph of a crawled domain and writes
// its in/out degree statistics, BFS distances from the domain root, and
// PageRank scores.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"

	"github.com/alecthomas/kong"

	"github.com/sitecrawl/sitecrawl/internal/urlutil"
	"github.com/sitecrawl/sitecrawl/internal/webgraph"
)

var htmlFileRegexp = regexp.MustCompile(`.*\.html$`)

type CLI struct {
	Threads int    `short:"t" name:"threads" default:"3" help:"Number of worker goroutines."`
	Path    string `name:"path" required:"" help:"Directory with downloaded pages."`
	Domain  string `name:"domain" required:"" help:"Domain URL the crawl was rooted at."`
	Verbose bool   `short:"v" help:"Turn on verbose output."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("webgraph"),
		kong.Description("Build the link graph of a crawled domain and compute its signals."),
		kong.UsageOnError(),
	)

	if cli.Threads <= 0 {
		fmt.Fprintln(os.Stderr, "webgraph: wrong number of threads")
		os.Exit(1)
	}

	out := io.Writer(os.Stderr)
	if !cli.Verbose {
		out = io.Discard
	}
	logger := log.New(out, "webgraph: ", log.LstdFlags)

	logger.Printf("building webgraph from %q for domain %q using %d threads", cli.Path, cli.Domain, cli.Threads)
	graph := webgraph.Build([]string{cli.Path}, cli.Domain, htmlFileRegexp, cli.Threads)

	logger.Printf("webgraph sites: %d", graph.Vertices())
	logger.Printf("webgraph links: %d", graph.Edges())

	if err := writeInOutStats(graph); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	root := urlutil.AddHTMLExtension(cli.Domain)
	source, err := graph.VertexOf(root)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := writeDistances(graph, source); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := writePageranks(graph); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writeInOutStats(graph *webgraph.Webgraph) error {
	f, err := os.Create("in_out_stats")
	if err != nil {
		return err
	}
	defer f.Close()

	inDegrees := make([]int, graph.Vertices())
	outDegrees := make([]int, graph.Vertices())
	for v := 0; v < graph.Vertices(); v++ {
		links, _ := graph.GetLinks(webgraph.Vertex(v))
		outDegrees[v] = len(links)
		for _, dest := range links {
			inDegrees[dest]++
		}
	}

	w := bufio.NewWriter(f)
	for v := 0; v < graph.Vertices(); v++ {
		url, _ := graph.URLOf(webgraph.Vertex(v))
		if _, err := fmt.Fprintf(w, "%s %d %d\n", url, inDegrees[v], outDegrees[v]); err != nil {
			return err
		}
	}
	return w.Flush()
}

func writeDistances(graph *webgraph.Webgraph, source webgraph.Vertex) error {
	f, err := os.Create("distances")
	if err != nil {
		return err
	}
	defer f.Close()

	distances := webgraph.Distances(source, graph)
	w := bufio.NewWriter(f)
	for v := 0; v < graph.Vertices(); v++ {
		url, _ := graph.URLOf(webgraph.Vertex(v))
		if _, err := fmt.Fprintf(w, "%s %d\n", url, distances[v]); err != nil {
			return err
		}
	}
	return w.Flush()
}

func writePageranks(graph *webgraph.Webgraph) error {
	f, err := os.Create("pagerank")
	if err != nil {
		return err
	}
	defer f.Close()

	ranks := webgraph.PageRanks(graph)
	w := bufio.NewWriter(f)
	for v := 0; v < graph.Vertices(); v++ {
		url, _ := graph.URLOf(webgraph.Vertex(v))
		if _, err := fmt.Fprintf(w, "%s %g\n", url, ranks[v]); err != nil {
			return err
		}
	}
	return w.Flush()
}
