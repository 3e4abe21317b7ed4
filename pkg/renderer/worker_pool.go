package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vini-fda/luz/pkg/core"
)

// WorkerPool renders a framebuffer with a fixed set of workers. Worker w owns
// every column x with x % numWorkers == w and samples from its own generator.
type WorkerPool struct {
	raytracer  *Raytracer
	workers    []*Worker
	numWorkers int
}

// Worker renders its columns sequentially
type Worker struct {
	ID      int
	sampler core.Sampler
	stats   RenderStats
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Worker w is seeded with seed+w, so output depends only on seed and the
// worker count.
func NewWorkerPool(rt *Raytracer, numWorkers int, seed int64) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		raytracer:  rt,
		numWorkers: numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:      i,
			sampler: core.NewSeededSampler(seed + int64(i)),
		})
	}

	return wp
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders every column of fb and returns the merged statistics.
// Cancellation is checked between columns.
func (wp *WorkerPool) Run(ctx context.Context, fb *Framebuffer) (RenderStats, error) {
	g, ctx := errgroup.WithContext(ctx)

	for _, worker := range wp.workers {
		worker := worker
		g.Go(func() error {
			return worker.run(ctx, wp.raytracer, fb, wp.numWorkers)
		})
	}

	if err := g.Wait(); err != nil {
		return RenderStats{}, err
	}

	var total RenderStats
	for _, worker := range wp.workers {
		total.Merge(worker.stats)
	}
	return total, nil
}

// run is the main worker loop
func (w *Worker) run(ctx context.Context, rt *Raytracer, fb *Framebuffer, stride int) error {
	w.stats = RenderStats{}
	for x := w.ID; x < fb.Width; x += stride {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.stats.Merge(rt.renderColumn(x, fb, w.sampler))
	}
	rt.logger.Printf("Worker %d finished %d columns\n", w.ID, w.stats.Columns)
	return nil
}
