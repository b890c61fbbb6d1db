// Package crawler implements the bounded concurrent crawl of a single web
// domain: N cooperative worker goroutines draining a shared frontier queue,
// downloading pages and mirroring them to disk. The worker loop, its
// termination condition and its resume/interrupt file format are ported
// from the original implementation's Crawler::threadFunction and
// Crawler::stop/restore; the HTTP plumbing and options pattern follow the
// teacher's crawler.WebCrawler.
package crawler

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/sitecrawl/sitecrawl/internal/concurrent"
	"github.com/sitecrawl/sitecrawl/internal/fetcher"
	"github.com/sitecrawl/sitecrawl/internal/logging"
	"github.com/sitecrawl/sitecrawl/internal/messaging"
	"github.com/sitecrawl/sitecrawl/internal/urlutil"
)

const (
	defaultUserAgent = "Mozilla/5.0 (compatible; sitecrawl/1.0)"
	idleSleep        = 100 * time.Millisecond
	iterationSleep   = 200 * time.Millisecond

	newURLsFile   = "new_urls.txt"
	readyURLsFile = "ready_urls.txt"
)

// FrontierItem is a URL paired with the depth at which it was discovered.
type FrontierItem struct {
	URL   string
	Depth int
}

// Settings configures a WebCrawler. The zero value is not usable; build one
// with New.
type Settings struct {
	Seed        string
	MaxDepth    int
	MaxPages    int
	DownloadDir string
	Workers     int
	UserAgent   string
}

// Opt mutates Settings, following the teacher's functional-options pattern.
type Opt func(*Settings)

// WithUserAgent overrides the default user agent.
func WithUserAgent(ua string) Opt {
	return func(s *Settings) { s.UserAgent = ua }
}

// DiscoveryEvent reports the outbound links found on a single fetched
// page. The crawler publishes one per processed page onto its internal
// queue instead of logging it inline, following the teacher's split
// between fetching and reporting results through a messaging.Producer.
type DiscoveryEvent struct {
	URL   string   `json:"url"`
	Links []string `json:"links"`
}

// WebCrawler drives a bounded-concurrency crawl of a single domain.
type WebCrawler struct {
	logger   logging.Logger
	fetch    *fetcher.Fetcher
	settings Settings
	queue    messaging.ChannelQueue

	frontier *concurrent.Queue[FrontierItem]
	seen     *concurrent.Set

	pagesDownloaded     concurrent.Counter
	pagesDownloadingNow concurrent.Counter
	finishedThreads     concurrent.Counter
	totalBytes          concurrent.Counter
}

// New creates a WebCrawler. seed is the start URL, maxDepth bounds link
// recursion, maxPages bounds the total number of pages fetched,
// downloadDir is where mirrored pages are written and workers is the number
// of cooperative goroutines draining the frontier.
func New(seed string, maxDepth, maxPages int, downloadDir string, workers int, logger logging.Logger, opts ...Opt) *WebCrawler {
	settings := Settings{
		Seed:        seed,
		MaxDepth:    maxDepth,
		MaxPages:    maxPages,
		DownloadDir: downloadDir,
		Workers:     workers,
		UserAgent:   defaultUserAgent,
	}
	for _, opt := range opts {
		opt(&settings)
	}

	return &WebCrawler{
		logger:   logger,
		fetch:    fetcher.New(settings.UserAgent),
		settings: settings,
		queue:    messaging.NewChannelQueue(),
		frontier: concurrent.NewQueue[FrontierItem](),
		seen:     concurrent.NewSet(),
	}
}

// AddNewURL enqueues url at depth 0, as a crawl root.
func (c *WebCrawler) AddNewURL(url string) {
	c.addToFrontier(url, 0)
}

// AddOldURL marks url as already discovered without enqueuing it, used to
// restore state for URLs a prior run had already finished processing.
func (c *WebCrawler) AddOldURL(url string) {
	c.seen.TryInsert(url)
}

func (c *WebCrawler) addToFrontier(url string, depth int) bool {
	if !c.seen.TryInsert(url) {
		return false
	}
	c.frontier.Push(FrontierItem{URL: url, Depth: depth})
	return true
}

// Start spawns Workers goroutines and blocks until either the page budget
// is reached or the frontier drains with every worker idle. It installs a
// SIGINT/SIGTERM handler that persists frontier state to disk and returns
// early on interrupt.
func (c *WebCrawler) Start(ctx context.Context) {
	c.addToFrontier(c.settings.Seed, 0)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signalCh)
	go func() {
		select {
		case <-signalCh:
			c.logger.Println("interrupt received, persisting frontier state")
			c.persistState()
			cancel()
		case <-ctx.Done():
		}
	}()

	events := make(chan []byte)
	go func() {
		defer close(events)
		c.queue.Consume(events)
	}()
	done := make(chan struct{})
	go func() {
		defer close(done)
		for payload := range events {
			var event DiscoveryEvent
			if err := json.Unmarshal(payload, &event); err != nil {
				continue
			}
			c.logger.Printf("%s: %d links discovered", event.URL, len(event.Links))
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < c.settings.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.worker(ctx)
		}()
	}
	wg.Wait()

	c.queue.Close()
	<-done

	c.logger.Printf("crawl done: %d pages, %s downloaded",
		c.pagesDownloaded.Load(), humanize.Bytes(uint64(c.totalBytes.Load())))
}

// worker runs the cooperative termination loop each goroutine follows,
// ported directly from the original's threadFunction: a thread is "idle"
// once it finds nothing to pop, and the crawl ends once every thread is
// idle and the frontier is empty, or the page budget is exhausted.
func (c *WebCrawler) worker(ctx context.Context) {
	isIdle := false
	n := int64(c.settings.Workers)
	maxPages := int64(c.settings.MaxPages)

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if c.pagesDownloaded.Load() >= maxPages {
			return
		}
		if c.finishedThreads.Load() >= n && c.frontier.Empty() {
			return
		}

		if c.pagesDownloaded.Load()+c.pagesDownloadingNow.Load() < maxPages {
			if item, ok := c.frontier.TryPop(); ok {
				if isIdle {
					isIdle = false
					c.finishedThreads.Add(-1)
				}
				c.pagesDownloadingNow.Add(1)
				c.fetchAndProcess(item)
				c.pagesDownloadingNow.Add(-1)
				time.Sleep(iterationSleep)
				continue
			}
		}

		if !isIdle {
			isIdle = true
			c.finishedThreads.Add(1)
		} else {
			time.Sleep(idleSleep)
		}
		time.Sleep(iterationSleep)
	}
}

// fetchAndProcess fetches a single frontier item, mirrors it to disk on
// success and, within the depth budget, extracts and enqueues its links.
func (c *WebCrawler) fetchAndProcess(item FrontierItem) {
	if !urlutil.IsAllowed(c.settings.Seed, item.URL) {
		return
	}

	target := item.URL
	if !strings.Contains(target, "://") {
		target = "http://" + target
	}

	body, _, err := c.fetch.Fetch(target)
	if err != nil {
		c.logger.Println(err)
		return
	}

	c.pagesDownloaded.Add(1)
	c.totalBytes.Add(int64(len(body)))
	if err := c.persistPage(item.URL, body); err != nil {
		c.logger.Println(err)
	}

	if item.Depth+1 > c.settings.MaxDepth {
		return
	}

	var allowedLinks []string
	for _, link := range urlutil.ExtractLinks(item.URL, string(body)) {
		if urlutil.IsAllowed(c.settings.Seed, link) {
			allowedLinks = append(allowedLinks, link)
		}
	}
	c.reportDiscovery(item.URL, allowedLinks)

	for _, link := range allowedLinks {
		c.addToFrontier(link, item.Depth+1)
	}
}

// reportDiscovery publishes a DiscoveryEvent for a fetched page's allowed
// outbound links onto the crawler's queue, following the teacher's
// enqueueResults: fetching stays decoupled from reporting what was found.
func (c *WebCrawler) reportDiscovery(url string, links []string) {
	payload, err := json.Marshal(DiscoveryEvent{URL: url, Links: links})
	if err != nil {
		c.logger.Println(err)
		return
	}
	if err := c.queue.Produce(payload); err != nil {
		c.logger.Println("unable to communicate with message queue:", err)
	}
}

// persistPage mirrors a page's body under DownloadDir, following the
// original's writePageToFile: the URL becomes a relative directory path
// plus an ".html"-suffixed file name.
func (c *WebCrawler) persistPage(url string, body []byte) error {
	clean := urlutil.Preprocess(url)
	dir := strings.TrimRight(c.settings.DownloadDir, "/")
	filePath := filepath.Join(dir, urlutil.AddHTMLExtension(clean))
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return fmt.Errorf("persisting %s: %w", url, err)
	}
	if err := os.WriteFile(filePath, body, 0o644); err != nil {
		return fmt.Errorf("persisting %s: %w", url, err)
	}
	return nil
}

// persistState drains the remaining frontier items to newURLsFile and the
// already-discovered-but-not-yet-fetched set to readyURLsFile, so a later
// run can call Restore to pick up where this one left off.
func (c *WebCrawler) persistState() {
	var pending []string
	notReady := make(map[string]struct{})
	for {
		item, ok := c.frontier.TryPop()
		if !ok {
			break
		}
		pending = append(pending, item.URL)
		notReady[item.URL] = struct{}{}
	}

	if err := writeLines(newURLsFile, pending); err != nil {
		c.logger.Println(err)
	}

	var ready []string
	for _, url := range c.seen.Snapshot() {
		if _, found := notReady[url]; !found {
			ready = append(ready, url)
		}
	}
	if err := writeLines(readyURLsFile, ready); err != nil {
		c.logger.Println(err)
	}
}

func writeLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return w.Flush()
}

// Restore reloads frontier state persisted by a prior interrupted run:
// newURLsFile's entries are re-queued at depth 0, readyURLsFile's entries
// are marked seen without being re-fetched.
func (c *WebCrawler) Restore() error {
	if err := c.restoreNewURLs(); err != nil {
		return err
	}
	return c.restoreReadyURLs()
}

func (c *WebCrawler) restoreNewURLs() error {
	lines, err := readLines(newURLsFile)
	if err != nil {
		return err
	}
	for _, url := range lines {
		c.AddNewURL(url)
	}
	return nil
}

func (c *WebCrawler) restoreReadyURLs() error {
	lines, err := readLines(readyURLsFile)
	if err != nil {
		return err
	}
	for _, url := range lines {
		c.AddOldURL(url)
	}
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return lines, nil
}
