package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
	"github.com/df07/go-stochastic-raytracer/pkg/geometry"
	"github.com/df07/go-stochastic-raytracer/pkg/integrator"
)

// columnRange is a half-open range of image columns owned by one worker
type columnRange struct {
	Start, End int
}

// Raytracer renders a world through a camera by splitting the image into column ranges,
// one worker per range
type Raytracer struct {
	world      *geometry.Aggregate
	camera     *Camera
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
	progress   *Progress
}

// NewRaytracer creates a new raytracer. The world must not be modified while a render runs.
func NewRaytracer(world *geometry.Aggregate, camera *Camera, ambient core.Vec3, config RenderConfig, logger core.Logger) *Raytracer {
	config = config.resolve()
	// No worker may get an empty column range
	config.Workers = min(config.Workers, camera.Width())

	if logger == nil {
		logger = core.NopLogger{}
	}

	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integrator.NewPathTracingIntegrator(config.MaxDepth, ambient),
		config:     config,
		logger:     logger,
		progress:   NewProgress(camera.Height() * config.Workers),
	}
}

// Config returns the resolved render configuration
func (rt *Raytracer) Config() RenderConfig {
	return rt.config
}

// Progress returns the row counter updated by the current or last render
func (rt *Raytracer) Progress() *Progress {
	return rt.progress
}

// Render traces every pixel and returns the finished image.
// If any worker fails, the remaining workers stop at their next row and no image is returned.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	startTime := time.Now()
	width, height := rt.camera.Width(), rt.camera.Height()

	fb := NewFramebuffer(width, height)
	rt.progress.reset()

	ranges := columnRanges(width, rt.config.Workers)
	workerStats := make([]RenderStats, len(ranges))

	rt.logger.Printf("Rendering %dx%d at %d samples per pixel (using %d workers)...\n",
		width, height, rt.camera.SamplesPerPixel(), len(ranges))

	g, gctx := errgroup.WithContext(ctx)
	for k, cols := range ranges {
		k, cols := k, cols
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("worker %d (columns %d-%d) panicked: %v", k, cols.Start, cols.End-1, r)
				}
			}()

			sampler := core.NewSeededSampler(rt.config.Seed + int64(k))
			world := rt.world.CloneAggregate()
			return rt.renderColumns(gctx, cols, world, sampler, fb, &workerStats[k])
		})
	}

	if err := g.Wait(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("render failed: %w", err)
	}
	rt.progress.Finish()

	stats := RenderStats{Workers: len(ranges), Elapsed: time.Since(startTime)}
	for _, ws := range workerStats {
		stats.add(ws)
	}

	rt.logger.Printf("Render completed in %v (%.1f samples/pixel)\n", stats.Elapsed, stats.AverageSamples())
	if stats.NonFiniteSamples > 0 {
		rt.logger.Printf("Discarded %d non-finite samples\n", stats.NonFiniteSamples)
	}

	return fb.Image(), stats, nil
}

// renderColumns renders every row of one column range, bumping progress after each row
func (rt *Raytracer) renderColumns(ctx context.Context, cols columnRange, world geometry.Shape, sampler core.Sampler, fb *Framebuffer, stats *RenderStats) error {
	height := rt.camera.Height()
	samples := rt.camera.SamplesPerPixel()

	for j := 0; j < height; j++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		for i := cols.Start; i < cols.End; i++ {
			colorAccum := core.Vec3{}
			for s := 0; s < samples; s++ {
				ray := rt.camera.GetRay(i, j, sampler)
				c := rt.integrator.RayColor(ray, world, sampler)
				// A NaN or Inf sample would poison the whole pixel; count it as black
				if !c.IsFinite() {
					stats.NonFiniteSamples++
					continue
				}
				colorAccum = colorAccum.Add(c)
			}

			stats.TotalPixels++
			stats.TotalSamples += samples
			fb.Set(i, j, vec3ToColor(colorAccum.Divide(float64(samples))))
		}

		rt.progress.Increment()
	}

	return nil
}

// columnRanges splits width columns into workers contiguous ranges.
// Every range has width/workers columns except the last, which also takes the remainder.
func columnRanges(width, workers int) []columnRange {
	workers = max(1, min(workers, width))
	size := width / workers

	ranges := make([]columnRange, workers)
	for k := range ranges {
		ranges[k] = columnRange{Start: k * size, End: (k + 1) * size}
	}
	ranges[workers-1].End = width

	return ranges
}
