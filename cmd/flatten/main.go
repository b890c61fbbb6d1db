// Command flatten copies a crawl's mirrored page tree into a flat,
// sequentially numbered directory and records a urls mapping file, so
// later pipeline stages can walk plain "N.html" paths instead of the
// mirrored URL tree.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/sitecrawl/sitecrawl/internal/urlutil"
)

type CLI struct {
	URLsDir     string `name:"urlsDir" default:"./site" help:"Directory holding the mirrored web pages."`
	URLsList    string `name:"urlsList" default:"ready_urls.txt" help:"File listing the downloaded URLs, one per line."`
	OutDir      string `name:"outDir" default:"./flat_site" help:"Directory to write the flattened, numbered files under."`
	URLsMapping string `name:"urlsMapping" default:"urls" help:"Path to write the filename-to-URL mapping file."`
	Verbose     bool   `short:"v" help:"Turn on verbose output."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("flatten"),
		kong.Description("Flatten a crawl's mirrored page tree into numbered files."),
		kong.UsageOnError(),
	)

	urlsListFile, err := os.Open(cli.URLsList)
	if err != nil {
		fmt.Println("Failed to read urls list")
		return
	}
	defer urlsListFile.Close()

	if err := os.MkdirAll(cli.OutDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}

	mappingFile, err := os.Create(cli.URLsMapping)
	if err != nil {
		fmt.Println("Failed to write to urls list")
		return
	}
	defer mappingFile.Close()

	urlsProcessed := 0
	scanner := bufio.NewScanner(urlsListFile)
	for scanner.Scan() {
		url := scanner.Text()
		if url == "" {
			continue
		}

		srcPath := filepath.Join(cli.URLsDir, urlutil.AddHTMLExtension(urlutil.Preprocess(url)))
		name := fmt.Sprintf("%d.html", urlsProcessed+1)
		destPath := filepath.Join(cli.OutDir, name)

		if err := copyFile(srcPath, destPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Fprintf(mappingFile, "%s\t%s\n", name, url)
		urlsProcessed++

		if cli.Verbose && urlsProcessed%10000 == 0 {
			fmt.Fprintf(os.Stderr, "Urls processed: %d\n", urlsProcessed)
		}
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}
