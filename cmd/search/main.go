// Command search (the original implementation's "irindexer") answers
// ranked phrase queries read from standard input against a Dictionary and
// InvertedIndex built by cmd/extract, printing the top-10 results under
// both TF-IDF and BM25 scoring for each query.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/sitecrawl/sitecrawl/internal/index"
	"github.com/sitecrawl/sitecrawl/internal/search"
)

const topNumber = 10

type CLI struct {
	Dictionary string `arg:"" help:"Path to the dictionary file."`
	Index      string `arg:"" help:"Path to the inverted index file."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("search"),
		kong.Description("Answer ranked phrase queries over a dictionary and inverted index."),
		kong.UsageOnError(),
	)

	dict, idx, err := load(cli.Dictionary, cli.Index)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	engine := search.New(dict, idx)
	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("Search query: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		fmt.Println()

		printTop(engine.Search(trimNewline(line), search.TFIDFEvaluator{}))
		printTop(engine.Search(trimNewline(line), search.BM25Evaluator{}))

		fmt.Println("--------------------------------")
	}
}

func load(dictionaryPath, indexPath string) (*index.Dictionary, *index.InvertedIndex, error) {
	dictFile, err := os.Open(dictionaryPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer dictFile.Close()

	dict, err := index.ReadDictionary(dictFile)
	if err != nil {
		return nil, nil, fmt.Errorf("reading dictionary: %w", err)
	}

	indexFile, err := os.Open(indexPath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening index: %w", err)
	}
	defer indexFile.Close()

	idx, err := index.ReadInvertedIndex(indexFile)
	if err != nil {
		return nil, nil, fmt.Errorf("reading index: %w", err)
	}

	return dict, idx, nil
}

func printTop(results []search.DocumentScore) {
	n := topNumber
	if len(results) < n {
		n = len(results)
	}
	for i := 0; i < n; i++ {
		fmt.Printf("id: %5d  score: %v\n", results[i].DocumentID, results[i].Score)
	}
	fmt.Println()
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
