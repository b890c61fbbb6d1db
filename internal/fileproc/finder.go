// Package fileproc is the parallel file-processing framework reused by the
// web graph, SimHash and index builders: a FileFinder walking root
// directories into a shared queue, and a generic Worker pool draining it.
// It realizes the original implementation's FileFinder/FileProcessor pair
// as a trait-style abstraction — a struct parameterized by process/merge
// callables — rather than the original's virtual-method inheritance, since
// Go has no class hierarchy to mirror it with.
package fileproc

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/sitecrawl/sitecrawl/internal/concurrent"
)

// FileFinder performs iterative directory traversal over a set of root
// paths, pushing every non-directory entry whose path (the root joined with
// the entry names, not canonicalized) matches the filter onto a shared queue
// for workers to consume. Symbolic links are not followed into; a link is
// matched and queued like a file.
type FileFinder struct {
	roots   []string
	filter  *regexp.Regexp
	visited map[string]struct{}
	queue   *concurrent.Queue[string]
	done    chan struct{}

	ProcessedPaths int
	FoundFiles     int
}

// NewFileFinder creates a FileFinder pushing matches onto queue.
func NewFileFinder(queue *concurrent.Queue[string], filterRegexp *regexp.Regexp) *FileFinder {
	return &FileFinder{
		filter:  filterRegexp,
		visited: make(map[string]struct{}),
		queue:   queue,
		done:    make(chan struct{}),
	}
}

// AddPath registers a root path to traverse.
func (f *FileFinder) AddPath(path string) {
	f.roots = append(f.roots, path)
}

// Start begins traversal on its own goroutine.
func (f *FileFinder) Start() {
	go f.run()
}

// Wait blocks until traversal has completed.
func (f *FileFinder) Wait() {
	<-f.done
}

func (f *FileFinder) run() {
	defer close(f.done)

	pending := append([]string(nil), f.roots...)
	for len(pending) > 0 {
		path := pending[0]
		pending = pending[1:]

		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		abs, err := filepath.Abs(path)
		if err != nil {
			continue
		}
		abs = filepath.Clean(abs)
		if _, seen := f.visited[abs]; seen {
			continue
		}
		f.visited[abs] = struct{}{}
		f.ProcessedPaths++

		if !info.IsDir() {
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			child := filepath.Join(path, entry.Name())
			if entry.IsDir() {
				pending = append(pending, child)
				continue
			}
			if f.filter.MatchString(child) {
				f.FoundFiles++
				f.queue.Push(child)
			}
		}
	}
}
