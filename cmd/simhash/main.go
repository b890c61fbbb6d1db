// Command simhash fingerprints a directory tree of HTML pages and, in a
// separate pass, clusters near-duplicate pages by Hamming distance over
// their fingerprints.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/sitecrawl/sitecrawl/internal/clusters"
	"github.com/sitecrawl/sitecrawl/internal/extract"
	"github.com/sitecrawl/sitecrawl/internal/simhash"
)

var htmlFileRegexp = regexp.MustCompile(`.*\.html$`)

type CLI struct {
	Threads int    `short:"t" name:"threads" default:"3" help:"Number of worker goroutines."`
	Path    string `name:"path" help:"Directory of downloaded pages to fingerprint (required with --build)."`
	Build   bool   `short:"b" help:"Build mode: fingerprint Path and write the simhashes file."`
	Find    bool   `short:"f" help:"Find mode: cluster the simhashes file's entries."`
	Bits    int    `short:"s" name:"bits" default:"5" help:"Maximum Hamming distance for two pages to be considered similar."`
	Verbose bool   `short:"v" help:"Turn on verbose output."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("simhash"),
		kong.Description("Fingerprint and cluster near-duplicate pages."),
		kong.UsageOnError(),
	)

	if cli.Threads <= 0 {
		fmt.Fprintln(os.Stderr, "simhash: wrong number of threads")
		os.Exit(1)
	}

	out := io.Writer(os.Stderr)
	if !cli.Verbose {
		out = io.Discard
	}
	logger := log.New(out, "simhash: ", log.LstdFlags)

	var infos []simhash.DocumentSimilarityInfo
	if cli.Build {
		if cli.Path == "" {
			fmt.Println("Usage: simhash --build --path PATH")
			fmt.Fprintln(os.Stderr, "Try 'simhash --help' for more information")
			os.Exit(1)
		}
		infos = simhash.Build(cli.Path, htmlFileRegexp, cli.Threads, extract.NewReadabilityExtractor(), logger)
		if err := writeSimhashes(infos); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else {
		var err error
		infos, err = readSimhashes()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	if cli.Find {
		docs := simhash.WithIDs(infos)
		result := clusters.Build(docs, cli.Bits)
		if err := writeClusters(result, docs, cli.Bits); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := writeDistanceHistogram(result); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func writeDistanceHistogram(result clusters.Result) error {
	f, err := os.Create("distances_histogram")
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for i := 0; i < 64; i++ {
		if _, err := fmt.Fprintf(w, "%d %d\n", i, result.DistanceHistogram[i]); err != nil {
			return err
		}
	}
	return w.Flush()
}

func writeSimhashes(infos []simhash.DocumentSimilarityInfo) error {
	f, err := os.Create("simhashes")
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, info := range infos {
		if _, err := fmt.Fprintf(w, "%s %d %d\n", info.Path, info.Size, uint64(info.Simhash)); err != nil {
			return err
		}
	}
	return w.Flush()
}

func readSimhashes() ([]simhash.DocumentSimilarityInfo, error) {
	f, err := os.Open("simhashes")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var infos []simhash.DocumentSimilarityInfo
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var path string
		var size int
		var hash uint64
		if _, err := fmt.Sscan(scanner.Text(), &path, &size, &hash); err != nil {
			continue
		}
		infos = append(infos, simhash.DocumentSimilarityInfo{Path: path, Simhash: simhash.Simhash(hash), Size: size})
	}
	return infos, scanner.Err()
}

func writeClusters(result clusters.Result, docs []simhash.DocumentInfo, bits int) error {
	idToPath := make(map[int]string, len(docs))
	for _, doc := range docs {
		idToPath[doc.ID] = doc.Path
	}

	clustersFile, err := os.Create("clusters_" + strconv.Itoa(bits))
	if err != nil {
		return err
	}
	defer clustersFile.Close()

	sizesFile, err := os.Create("clusters_" + strconv.Itoa(bits) + "_sizes")
	if err != nil {
		return err
	}
	defer sizesFile.Close()

	for i, cluster := range result.Clusters {
		fmt.Fprintf(clustersFile, "Cluster number: %d\n", i)
		for _, documentID := range cluster {
			fmt.Fprintln(clustersFile, idToPath[documentID])
		}
		fmt.Fprintf(sizesFile, "%d %d\n", i, len(cluster))
	}
	return nil
}
