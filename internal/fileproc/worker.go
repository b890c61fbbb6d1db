package fileproc

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/sitecrawl/sitecrawl/internal/concurrent"
)

const pollTimeout = 100 * time.Millisecond

// Worker drains a shared path queue, applying Process to each path against
// its own local state S, and folds that state into a shared aggregate via
// Merge exactly once, after its loop exits. This is the trait realization
// of the original's FileProcessor base class: callers supply process/merge
// as plain functions instead of overriding virtual methods.
type Worker[S any] struct {
	queue   *concurrent.Queue[string]
	state   S
	process func(path string, state *S) bool
	mergeMu *sync.Mutex
	merge   func(state S)

	waitingForInput atomic.Bool
	running         atomic.Bool
	done            chan struct{}

	ProcessedCount int
}

// NewWorker creates a Worker with the given initial local state. mergeMu is
// shared across every worker in a pool and held while merge runs, so merge
// implementations do not need their own synchronization.
func NewWorker[S any](queue *concurrent.Queue[string], initial S, process func(string, *S) bool, mergeMu *sync.Mutex, merge func(S)) *Worker[S] {
	return &Worker[S]{
		queue:   queue,
		state:   initial,
		process: process,
		mergeMu: mergeMu,
		merge:   merge,
		done:    make(chan struct{}),
	}
}

// Start begins the worker's loop on its own goroutine.
func (w *Worker[S]) Start() {
	w.running.Store(true)
	w.waitingForInput.Store(true)
	go w.run()
}

// Wait clears waitingForInput (so the worker stops once the queue drains)
// and blocks until the worker's loop has exited and merge has run.
func (w *Worker[S]) Wait() {
	w.waitingForInput.Store(false)
	<-w.done
}

func (w *Worker[S]) run() {
	defer close(w.done)

	for w.running.Load() && (w.waitingForInput.Load() || !w.queue.Empty()) {
		path, ok := w.queue.BlockingPop(pollTimeout)
		if !ok {
			continue
		}
		if w.process(path, &w.state) {
			w.ProcessedCount++
		}
	}

	w.mergeMu.Lock()
	defer w.mergeMu.Unlock()
	w.merge(w.state)
}
