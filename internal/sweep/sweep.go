// internal/sweep/sweep.go
// Worker-pool evaluation of field functions over observation grids. The
// core functions are pure, so points are farmed out to goroutines and
// reassembled in grid order afterwards.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"bfield-core/field"
)

// Point is one observation point in the (z, ρ) plane.
type Point struct {
	Z   float64
	Rho float64
}

// Func evaluates the field at one observation point.
type Func func(z, rho float64) (field.Vector, error)

// Sample is one evaluated point: inputs plus field components and norm.
type Sample struct {
	Z     float64
	Rho   float64
	Bz    float64
	Brho  float64
	Bnorm float64
}

// Config controls the evaluation pool.
type Config struct {
	Threads      int  // worker goroutines (>=1)
	SkipSingular bool // drop on-conductor points instead of failing
}

// Line returns steps points from zmin to zmax (inclusive) at fixed ρ.
// steps = 1 yields the single point (zmin, ρ).
func Line(zmin, zmax float64, steps int, rho float64) ([]Point, error) {
	if steps < 1 {
		return nil, fmt.Errorf("sweep: steps must be >= 1, got %d", steps)
	}
	pts := make([]Point, steps)
	for i := range pts {
		pts[i] = Point{Z: lerp(zmin, zmax, i, steps), Rho: rho}
	}
	return pts, nil
}

// Plane returns a zsteps × rhosteps grid over [zmin,zmax] × [rhomin,rhomax],
// in row-major order with ρ varying fastest.
func Plane(zmin, zmax float64, zsteps int, rhomin, rhomax float64, rhosteps int) ([]Point, error) {
	if zsteps < 1 || rhosteps < 1 {
		return nil, fmt.Errorf("sweep: grid steps must be >= 1, got %d x %d", zsteps, rhosteps)
	}
	pts := make([]Point, 0, zsteps*rhosteps)
	for i := 0; i < zsteps; i++ {
		z := lerp(zmin, zmax, i, zsteps)
		for j := 0; j < rhosteps; j++ {
			pts = append(pts, Point{Z: z, Rho: lerp(rhomin, rhomax, j, rhosteps)})
		}
	}
	return pts, nil
}

func lerp(lo, hi float64, i, n int) float64 {
	if n == 1 {
		return lo
	}
	return lo + (hi-lo)*float64(i)/float64(n-1)
}

// Collect evaluates fn at every point and returns samples in grid order,
// along with the number of points skipped as on-conductor (only nonzero
// with cfg.SkipSingular). The first evaluation error aborts the run.
func Collect(ctx context.Context, cfg Config, pts []Point, fn Func) ([]Sample, int, error) {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	type job struct {
		idx int
		pt  Point
	}
	type res struct {
		idx  int
		s    Sample
		skip bool
		err  error
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan res, cfg.Threads*2)

	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					r := res{idx: j.idx}
					v, err := fn(j.pt.Z, j.pt.Rho)
					switch {
					case err == nil:
						r.s = Sample{
							Z: j.pt.Z, Rho: j.pt.Rho,
							Bz: v.Z, Brho: v.Rho, Bnorm: v.Norm(),
						}
					case cfg.SkipSingular && errors.Is(err, field.ErrOnConductor):
						r.skip = true
					default:
						r.err = err
					}
					select {
					case results <- r:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector keeps grid order by index.
	var (
		cwg     sync.WaitGroup
		cerr    error
		skipped int
		got     = make([]*Sample, len(pts))
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for r := range results {
			if r.err != nil {
				if cerr == nil {
					cerr = r.err
				}
				continue
			}
			if r.skip {
				skipped++
				continue
			}
			s := r.s
			got[r.idx] = &s
		}
	}()

	feed := func() error {
		defer close(jobs)
		for i, pt := range pts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- job{idx: i, pt: pt}:
			}
		}
		return nil
	}
	ferr := feed()

	wg.Wait()
	close(results)
	cwg.Wait()

	if cerr != nil {
		return nil, 0, cerr
	}
	if ferr != nil {
		return nil, 0, ferr
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	out := make([]Sample, 0, len(pts))
	for _, s := range got {
		if s == nil {
			continue // skipped singular point
		}
		if math.IsNaN(s.Bnorm) {
			return nil, 0, fmt.Errorf("sweep: non-finite sample at (z=%g, rho=%g)", s.Z, s.Rho)
		}
		out = append(out, *s)
	}
	return out, skipped, nil
}
