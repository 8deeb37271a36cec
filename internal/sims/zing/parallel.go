package zing

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// minRowsPerWorker keeps bands from getting so thin that goroutine overhead
// dominates.
const minRowsPerWorker = 3

type band struct {
	y0, y1 int
	deaths Deaths
}

// bands splits the interior rows [1, h-1) into at most workers contiguous
// ranges.
func bands(h, workers int) []band {
	rows := h - 2
	if rows <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	per := rows / workers
	if per < minRowsPerWorker {
		per = minRowsPerWorker
	} else if per*workers < rows {
		per++
	}
	out := make([]band, 0, workers)
	for y0 := 1; y0 < h-1; y0 += per {
		y1 := y0 + per
		if y1 > h-1 {
			y1 = h - 1
		}
		out = append(out, band{y0: y0, y1: y1})
	}
	return out
}

// StepParallel advances g by one generation, spreading interior rows across
// up to workers goroutines. Each band reads only the current generation and
// writes disjoint rows of the spare buffer; death tallies are summed after
// every band finishes and the buffers are swapped once. The result matches
// Step exactly. If ctx is cancelled before all bands finish, g is left
// untouched and the context error is returned.
func StepParallel(ctx context.Context, g *Grid, workers int) error {
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return err
		}
		Step(g)
		return nil
	}
	copy(g.nxt, g.cur)
	parts := bands(g.h, workers)
	eg, ctx := errgroup.WithContext(ctx)
	for i := range parts {
		b := &parts[i]
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b.deaths = stepRows(g.cur, g.nxt, g.w, b.y0, b.y1)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	var total Deaths
	for _, b := range parts {
		total = total.Add(b.deaths)
	}
	g.commit(total)
	return nil
}
