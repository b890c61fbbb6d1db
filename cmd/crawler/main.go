// Command crawler performs a bounded concurrent crawl of a single web
// domain starting from a seed URL, mirroring downloaded pages to disk.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math"
	"os"

	"github.com/alecthomas/kong"

	"github.com/sitecrawl/sitecrawl/internal/crawler"
)

// CLI mirrors the original crawler's boost::program_options flags:
// crawler <url> [--threads N] [--depth D] [--pages P] [--dest DIR]
// [--continue] [--verbose].
type CLI struct {
	URL       string `arg:"" help:"Seed URL to crawl."`
	Threads   int    `short:"t" name:"threads" default:"3" help:"Number of worker goroutines."`
	Depth     int    `short:"d" name:"depth" help:"Maximum crawl depth (default: unlimited)."`
	Pages     int    `short:"p" name:"pages" help:"Maximum number of pages to download (default: unlimited)."`
	Dest      string `short:"o" name:"dest" default:"./site" help:"Directory mirrored pages are written under."`
	Continue  bool   `short:"c" help:"Resume a previous crawl from new_urls.txt/ready_urls.txt."`
	UserAgent string `name:"user-agent" help:"Override the default User-Agent header sent with every request."`
	Verbose   bool   `short:"v" help:"Turn on verbose logging."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("crawler"),
		kong.Description("Crawl a single web domain under bounded concurrency."),
		kong.UsageOnError(),
	)

	if cli.Threads <= 0 {
		fmt.Fprintln(os.Stderr, "crawler: wrong number of threads")
		os.Exit(1)
	}

	maxDepth := cli.Depth
	if maxDepth <= 0 {
		maxDepth = math.MaxInt32
	}
	maxPages := cli.Pages
	if maxPages <= 0 {
		maxPages = math.MaxInt32
	}

	out := io.Writer(os.Stderr)
	if !cli.Verbose {
		out = io.Discard
	}
	logger := log.New(out, "crawler: ", log.LstdFlags)

	var opts []crawler.Opt
	if cli.UserAgent != "" {
		opts = append(opts, crawler.WithUserAgent(cli.UserAgent))
	}
	c := crawler.New(cli.URL, maxDepth, maxPages, cli.Dest, cli.Threads, logger, opts...)

	if cli.Continue {
		if err := c.Restore(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	c.Start(context.Background())
}
