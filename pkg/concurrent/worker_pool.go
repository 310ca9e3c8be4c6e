package concurrent

import (
	"sync"
)

type JobFunc[T any, G any] func(job T) G

type indexedJob[T any] struct {
	index int
	job   T
}

type indexedResult[G any] struct {
	index  int
	result G
}

// WorkerPool runs jobFunc over queued jobs on a fixed number of goroutines. Results
// come back tagged with the position of their job, so callers can restore input order.
type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan indexedJob[T]
	results    chan indexedResult[G]
	wg         sync.WaitGroup
	nextIndex  int
}

func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan indexedJob[T], jobQueueSize),
		results:    make(chan indexedResult[G], jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for j := range wp.jobQueue {
		wp.results <- indexedResult[G]{index: j.index, result: jobFunc(j.job)}
	}
}

func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

// AddJob must be called from a single goroutine.
func (wp *WorkerPool[T, G]) AddJob(job T) {
	wp.jobQueue <- indexedJob[T]{index: wp.nextIndex, job: job}
	wp.nextIndex++
}

func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

// CollectResults drains the result channel and returns results in job order. It
// blocks until Wait has closed the channel.
func (wp *WorkerPool[T, G]) CollectResults() []G {
	out := make([]G, wp.nextIndex)
	for r := range wp.results {
		out[r.index] = r.result
	}
	return out
}

// Run pushes every job through a fresh pool and returns the results in input order.
func Run[T any, G any](numWorkers int, jobs []T, jobFunc JobFunc[T, G]) []G {
	wp := NewWorkerPool[T, G](numWorkers, len(jobs))
	wp.Start(jobFunc)
	for _, job := range jobs {
		wp.AddJob(job)
	}
	wp.Close()
	wp.Wait()
	return wp.CollectResults()
}
