package fileproc

import (
	"regexp"
	"sync"

	"github.com/sitecrawl/sitecrawl/internal/concurrent"
)

// Pool wires a FileFinder and a fixed number of Workers over a shared
// queue, following the lifecycle every builder in the pipeline reuses:
// start the finder, start the workers, wait for the finder, then wait for
// the workers.
type Pool[S any] struct {
	Finder  *FileFinder
	Workers []*Worker[S]
}

// NewPool creates a Pool. roots are the directories the finder walks,
// filterRegexp selects which regular files are queued, n is the worker
// count, newState builds each worker's initial local state, process is
// applied to every queued path and merge folds each worker's final state
// into the shared aggregate under a common mutex.
func NewPool[S any](roots []string, filterRegexp *regexp.Regexp, n int, newState func() S, process func(string, *S) bool, merge func(S)) *Pool[S] {
	queue := concurrent.NewQueue[string]()
	finder := NewFileFinder(queue, filterRegexp)
	for _, r := range roots {
		finder.AddPath(r)
	}

	var mu sync.Mutex
	workers := make([]*Worker[S], n)
	for i := range workers {
		workers[i] = NewWorker(queue, newState(), process, &mu, merge)
	}

	return &Pool[S]{Finder: finder, Workers: workers}
}

// Run executes the full lifecycle synchronously, returning once every
// worker has merged its final state.
func (p *Pool[S]) Run() {
	p.Finder.Start()
	for _, w := range p.Workers {
		w.Start()
	}
	p.Finder.Wait()
	for _, w := range p.Workers {
		w.Wait()
	}
}
