package workers

import (
	"context"
	"sync"
)

// Workers runs a set of [Worker] values concurrently.
type Workers struct {
	workers []Worker
}

// NewWorkers groups workers; nil entries are skipped.
func NewWorkers(workers ...Worker) *Workers {
	ws := &Workers{}
	for _, w := range workers {
		if w != nil {
			ws.workers = append(ws.workers, w)
		}
	}
	return ws
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
