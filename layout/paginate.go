package layout

import (
	"resumec/blocks"
	"resumec/style"
)

// Paginate partitions a sequence of block heights into pages under the
// given budget and returns the page start indices, always beginning with 0
// for a non-empty sequence. A block is never split: when it does not fit
// the remaining space a new page starts, and a block taller than the whole
// budget sits alone on its page and overflows.
func Paginate(heights []float64, budget float64) []int {
	if len(heights) == 0 {
		return nil
	}

	starts := []int{0}
	var accumulated float64
	for i, h := range heights {
		if accumulated+h > budget && accumulated > 0 {
			starts = append(starts, i)
			accumulated = h
			continue
		}
		accumulated += h
	}
	return starts
}

// Result is the immutable outcome of a layout pass.
type Result struct {
	Heights    []float64
	PageStarts []int
	Budget     float64
}

// Pages materializes the page slices of the sequence. Slices alias the
// input, concatenating them reproduces it exactly.
func (r Result) Pages(seq []blocks.Block) [][]blocks.Block {
	if len(r.PageStarts) == 0 {
		return nil
	}
	pages := make([][]blocks.Block, 0, len(r.PageStarts))
	for i, start := range r.PageStarts {
		end := len(seq)
		if i+1 < len(r.PageStarts) {
			end = r.PageStarts[i+1]
		}
		pages = append(pages, seq[start:end])
	}
	return pages
}

// Compute measures the sequence and paginates it under the style's page
// budget. This is the single entry point the pipelines use, so measurement
// and pagination can never drift apart.
func Compute(seq []blocks.Block, r style.Resolved, m *Measurer) Result {
	heights := Heights(seq, r, m)
	budget := r.PageBudgetPx()
	return Result{
		Heights:    heights,
		PageStarts: Paginate(heights, budget),
		Budget:     budget,
	}
}
