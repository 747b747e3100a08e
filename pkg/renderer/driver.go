package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/dfraymond/goprogressivetracer/pkg/core"
	"github.com/dfraymond/goprogressivetracer/pkg/scene"
)

// pixelRng seeds a worker's thread-local Rng from (x, y, baseSeed), giving
// per-pixel determinism independent of which worker or scheduling policy
// renders it.
func pixelRng(x, y int, baseSeed int64) *core.Rng {
	return core.NewRng(baseSeed ^ int64(y)<<32 ^ int64(x))
}

// RenderSequential walks the flat pixel index in a single goroutine. It is
// the reference implementation every other policy must agree with.
func RenderSequential(sc *scene.Scene, baseSeed int64, progress Progress) *Buffer {
	buf := NewBuffer(sc.Config.Width, sc.Config.Height)
	completed := 0
	for y := 0; y < sc.Config.Height; y++ {
		for x := 0; x < sc.Config.Width; x++ {
			buf.set(x, y, renderPixel(sc, pixelRng(x, y, baseSeed), x, y))
			completed++
			if progress != nil {
				progress(completed)
			}
		}
	}
	return buf
}

// RenderWorkpool is the preferred default scheduling policy: a fixed pool
// of workers equal to hardware concurrency pulls pixel indices from a
// shared queue and writes into its own disjoint slot of the output buffer,
// needing no locking. Work granularity is one pixel's full sample budget,
// since the integrator's per-pixel cost already dwarfs any per-task
// scheduling overhead.
func RenderWorkpool(ctx context.Context, sc *scene.Scene, baseSeed int64, progress Progress) (*Buffer, error) {
	buf := NewBuffer(sc.Config.Width, sc.Config.Height)
	total := sc.Config.Width * sc.Config.Height

	jobs := make(chan int, total)
	for idx := 0; idx < total; idx++ {
		jobs <- idx
	}
	close(jobs)

	numWorkers := runtime.GOMAXPROCS(0)
	var completed int
	progressCh := make(chan struct{}, total)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < numWorkers; w++ {
		g.Go(func() error {
			for idx := range jobs {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				x, y := idx%sc.Config.Width, idx/sc.Config.Width
				buf.set(x, y, renderPixel(sc, pixelRng(x, y, baseSeed), x, y))
				progressCh <- struct{}{}
			}
			return nil
		})
	}

	done := make(chan error, 1)
	go func() { done <- g.Wait(); close(progressCh) }()

	for range progressCh {
		completed++
		if progress != nil {
			progress(completed)
		}
	}
	if err := <-done; err != nil {
		return nil, err
	}
	return buf, nil
}

// pixelResult is one completed pixel handed from a channel consumer back to
// the single writer goroutine, per the producer/consumer policy.
type pixelResult struct {
	x, y int
	rgb  [3]byte
}

// RenderChannels is the producer/consumer policy: one producer emits (x, y)
// jobs on a channel bounded by worker count, N_cpu consumers compute pixels
// and send results back, and a single goroutine owns the buffer write.
func RenderChannels(ctx context.Context, sc *scene.Scene, baseSeed int64, progress Progress) (*Buffer, error) {
	buf := NewBuffer(sc.Config.Width, sc.Config.Height)
	total := sc.Config.Width * sc.Config.Height
	numWorkers := runtime.GOMAXPROCS(0)

	jobs := make(chan int, numWorkers)
	results := make(chan pixelResult, numWorkers)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for idx := 0; idx < total; idx++ {
			select {
			case jobs <- idx:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < numWorkers; w++ {
		g.Go(func() error {
			for idx := range jobs {
				x, y := idx%sc.Config.Width, idx/sc.Config.Width
				rgb := renderPixel(sc, pixelRng(x, y, baseSeed), x, y)
				select {
				case results <- pixelResult{x: x, y: y, rgb: rgb}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}

	go func() {
		g.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		buf.set(res.x, res.y, res.rgb)
		completed++
		if progress != nil {
			progress(completed)
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return buf, nil
}
