// Command extract reduces a flattened crawl's HTML files to plain inner
// text, accumulates a corpus-wide raw token/frequency table, and builds
// the Dictionary and InvertedIndex files cmd/search reads.
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/sitecrawl/sitecrawl/internal/concurrent"
	"github.com/sitecrawl/sitecrawl/internal/extract"
	"github.com/sitecrawl/sitecrawl/internal/index"
)

type CLI struct {
	URLsDir     string `name:"urlsDir" default:"./flat_site" help:"Directory holding the flattened web pages."`
	OutDir      string `name:"outDir" default:"./text_site" help:"Directory to write extracted plain-text files under."`
	URLsMapping string `name:"urlsMapping" default:"urls" help:"Path to the filename-to-URL mapping file written by flatten."`
	Dictionary  string `name:"dictionary" default:"dictionary" help:"Path to write the word dictionary file."`
	Index       string `name:"index" default:"index" help:"Path to write the inverted index file."`
	Extractor   string `name:"extractor" enum:"readability,trafilatura" default:"readability" help:"Inner-text extraction backend."`
	Threads     int    `short:"t" name:"threads" default:"3" help:"Number of worker goroutines."`
	Verbose     bool   `short:"v" help:"Turn on verbose output."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("extract"),
		kong.Description("Extract inner text and build the search index from a flattened crawl."),
		kong.UsageOnError(),
	)

	if cli.Threads <= 0 {
		fmt.Fprintln(os.Stderr, "extract: wrong number of threads")
		os.Exit(1)
	}

	filter, err := filenameFilter(cli.URLsMapping)
	if err != nil {
		fmt.Println("Failed to read url mappings list")
		return
	}

	if err := os.MkdirAll(cli.OutDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	var extractor extract.TextExtractor
	switch cli.Extractor {
	case "trafilatura":
		extractor = extract.NewTrafilaturaExtractor()
	default:
		extractor = extract.NewReadabilityExtractor()
	}

	tokenFrequency := concurrent.NewCounterMap()
	processed := 0

	dict, idx := index.Build(cli.URLsDir, filter, cli.Threads, extractor, func(path, text string) {
		for _, token := range strings.Fields(text) {
			tokenFrequency.Add(token, 1)
		}

		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".txt"
		if err := os.WriteFile(filepath.Join(cli.OutDir, name), []byte(text+"\n"), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}

		processed++
		if cli.Verbose && processed%10000 == 0 {
			fmt.Fprintf(os.Stderr, "Urls processed: %d\n", processed)
		}
	})

	writeTokenFrequency(tokenFrequency.Snapshot())
	writeSearchFiles(dict, idx, cli.Dictionary, cli.Index)
}

// filenameFilter reads a flatten-produced mapping file ("filename\turl" per
// line) and compiles a regex matching exactly the filenames it names, so
// the fileproc walk over urlsDir processes precisely the set the mapping
// lists rather than every file the directory happens to contain.
func filenameFilter(mappingPath string) (*regexp.Regexp, error) {
	f, err := os.Open(mappingPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			continue
		}
		names = append(names, regexp.QuoteMeta(fields[0]))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return regexp.MustCompile(`$^`), nil
	}
	return regexp.MustCompile(`(?:^|/)(` + strings.Join(names, "|") + `)$`), nil
}

func writeTokenFrequency(tokenFrequency map[string]int) {
	f, err := os.Create("token_frequency")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer f.Close()

	tokens := make([]string, 0, len(tokenFrequency))
	for token := range tokenFrequency {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	w := bufio.NewWriter(f)
	for _, token := range tokens {
		fmt.Fprintf(w, "%s\t%d\n", token, tokenFrequency[token])
	}
	w.Flush()
}

func writeSearchFiles(dict *index.Dictionary, idx *index.InvertedIndex, dictionaryPath, indexPath string) {
	dictFile, err := os.Create(dictionaryPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer dictFile.Close()
	if err := dict.WriteTo(dictFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	indexFile, err := os.Create(indexPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	defer indexFile.Close()
	if err := idx.WriteTo(indexFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
