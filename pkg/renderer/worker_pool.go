package renderer

import (
	"context"
	"runtime"
	"sync"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile          *Tile
	PassNumber    int
	TargetSamples int
	TaskID        int            // Index of the tile, used to match results
	PixelStats    [][]PixelStats // Shared pixel stats array to write to
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID       int
	Stats        RenderStats
	SamplesTaken int
	Error        error
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	ctx         context.Context
	renderer    *TileRenderer
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	wg          sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Queues are sized to hold every task of a pass. Once ctx is done, workers
// drain remaining tasks without rendering them.
func NewWorkerPool(ctx context.Context, renderer *TileRenderer, numTasks, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		ctx:         ctx,
		renderer:    renderer,
		taskQueue:   make(chan TileTask, numTasks),
		resultQueue: make(chan TileResult, numTasks),
		numWorkers:  numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		if err := wp.ctx.Err(); err != nil {
			instrumentTile(statusCancelled)
			wp.resultQueue <- TileResult{TaskID: task.TaskID, Error: err}
			continue
		}

		before := sampleCount(task.PixelStats, task.Tile)

		// Tiles have non-overlapping bounds, so writing the shared array is safe
		stats := wp.renderer.RenderTileBounds(task.Tile.Bounds, task.PixelStats, task.Tile.Sampler, task.TargetSamples)

		instrumentTile(statusRendered)
		wp.resultQueue <- TileResult{
			TaskID:       task.TaskID,
			Stats:        stats,
			SamplesTaken: stats.TotalSamples - before,
		}
	}
}

func sampleCount(pixelStats [][]PixelStats, tile *Tile) int {
	total := 0
	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			total += pixelStats[y][x].SampleCount
		}
	}
	return total
}
