package renderer

import (
	"context"
	"math/rand"
	"runtime"
	"sync"

	"github.com/shirou/gopsutil/v3/cpu"
)

// PixelTask represents a pixel rendering task for the worker pool
type PixelTask struct {
	X, Y   int
	TaskID int   // Submission order
	Seed   int64 // Seed for the task's private random generator
}

// PixelResult contains the result from rendering a pixel
type PixelResult struct {
	TaskID int
	Sample PixelSample
}

// WorkerPool manages parallel pixel rendering. Both queues are bounded, so
// a slow consumer eventually blocks submission.
type WorkerPool struct {
	taskQueue   chan PixelTask
	resultQueue chan PixelResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
	closeOnce   sync.Once
}

// Worker handles individual pixel rendering tasks
type Worker struct {
	ID          int
	renderer    *PixelRenderer
	taskQueue   chan PixelTask
	resultQueue chan PixelResult
}

// NewWorkerPool creates a worker pool with the specified number of workers
// and queue capacity. numWorkers <= 0 uses the logical CPU count.
func NewWorkerPool(renderer *PixelRenderer, numWorkers, queueSize int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = DefaultWorkerCount()
	}
	if queueSize <= 0 {
		queueSize = numWorkers
	}

	wp := &WorkerPool{
		taskQueue:   make(chan PixelTask, queueSize),
		resultQueue: make(chan PixelResult, queueSize),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			renderer:    renderer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// DefaultWorkerCount returns the number of logical CPUs
func DefaultWorkerCount() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// Start begins all workers. Cancelling ctx makes workers skip queued tasks
// and cut in-flight pixels short. Results must be drained until closed.
func (wp *WorkerPool) Start(ctx context.Context) {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(ctx, &wp.wg)
	}
}

// Submit queues a task, blocking while the queue is full. It returns the
// context error if ctx is cancelled first.
func (wp *WorkerPool) Submit(ctx context.Context, task PixelTask) error {
	select {
	case wp.taskQueue <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting tasks, waits for the workers to drain the queue and
// then closes the result channel
func (wp *WorkerPool) Close() {
	wp.closeOnce.Do(func() {
		close(wp.taskQueue)
		wp.wg.Wait()
		close(wp.resultQueue)
	})
}

// Results returns the completion channel, closed by Close
func (wp *WorkerPool) Results() <-chan PixelResult {
	return wp.resultQueue
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		if ctx.Err() != nil {
			continue // drain without rendering
		}

		random := rand.New(rand.NewSource(task.Seed))
		sample := w.renderer.RenderPixel(ctx, task.X, task.Y, random)

		// Rendered pixels are always delivered, even after cancellation;
		// the consumer drains until the channel closes
		w.resultQueue <- PixelResult{TaskID: task.TaskID, Sample: sample}
	}
}
