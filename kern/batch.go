package kern

import (
	"context"
	"sync"

	"github.com/gogpu/glyph"
	"github.com/gogpu/glyph/internal/parallel"
)

// SolveBatch solves every pair and returns the merged kern map.
//
// Pairs whose glyphs have no geometry are skipped, so the result may be
// shorter than the input. Work is split into chunks; with more than one
// worker, glyph zones and chunks are computed on a worker pool and the
// per-chunk maps are merged by union.
//
// SolveBatch keeps no state across calls. The context is checked between
// chunks; on cancellation the pairs solved so far are returned together
// with ctx.Err().
func SolveBatch(ctx context.Context, pairs []CharPair, src Source, opts ...Option) (Map, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := glyph.Logger()

	result := make(Map, len(pairs))
	glyphs := groupGlyphs(pairs, src.Glyphs)
	prog := newProgress(o.progress, len(glyphs)+len(pairs))
	prog.add(0)

	log.Info("kern: batch start", "pairs", len(pairs), "glyphs", len(glyphs), "workers", o.workers)

	var pool *parallel.WorkerPool
	if o.workers != 1 {
		pool = parallel.NewWorkerPool(o.workers)
		defer pool.Close()
	}

	solver := NewSolver(src)

	// Zone boxes: one task per distinct GlyphData, so no glyph memo is
	// ever written from two goroutines.
	zoneResults := make([]zoneEntry, len(glyphs))
	tasks := make([]func(), len(glyphs))
	for i, g := range glyphs {
		tasks[i] = func() {
			z, ok := glyph.ComputeZoneBoxes(g.data, src.Metrics.BaselineY, src.Metrics.ToplineY, src.StrokeThickness)
			zoneResults[i] = zoneEntry{zones: z, ok: ok}
			prog.add(1)
		}
	}
	if err := execute(ctx, pool, tasks); err != nil {
		return result, err
	}
	for i, g := range glyphs {
		for _, r := range g.runes {
			solver.zones[r] = zoneResults[i]
		}
	}

	// Targets use the group expander, which is not safe for concurrent
	// use, so problems are resolved here and only searched in parallel.
	problems := make([]problem, len(pairs))
	solvable := make([]bool, len(pairs))
	for i, p := range pairs {
		problems[i], solvable[i] = solver.problem(p.Left, p.Right)
	}

	chunks := make([]Map, 0, len(pairs)/o.chunkSize+1)
	tasks = tasks[:0]
	for start := 0; start < len(pairs); start += o.chunkSize {
		end := min(start+o.chunkSize, len(pairs))
		chunk := make(Map, end-start)
		chunks = append(chunks, chunk)
		tasks = append(tasks, func() {
			for i := start; i < end; i++ {
				if !solvable[i] {
					continue
				}
				if k, ok := problems[i].search(); ok {
					chunk[pairs[i].Key()] = k
				}
			}
			prog.add(end - start)
		})
	}
	err := execute(ctx, pool, tasks)

	for _, c := range chunks {
		result.Merge(c)
	}
	if err != nil {
		return result, err
	}

	log.Info("kern: batch done", "pairs", len(pairs), "solved", len(result))
	return result, nil
}

// execute runs tasks on the pool, or in order on the calling goroutine
// when pool is nil, checking ctx before each task.
func execute(ctx context.Context, pool *parallel.WorkerPool, tasks []func()) error {
	if pool != nil {
		return pool.ExecuteAll(ctx, tasks)
	}
	for _, t := range tasks {
		if err := ctx.Err(); err != nil {
			return err
		}
		t()
	}
	return nil
}

// glyphRef is a distinct GlyphData and the characters that use it.
type glyphRef struct {
	data  *glyph.GlyphData
	runes []rune
}

// groupGlyphs collects the distinct glyphs referenced by pairs, in first
// use order. Characters without glyph data share one nil entry.
func groupGlyphs(pairs []CharPair, glyphs map[rune]*glyph.GlyphData) []glyphRef {
	var refs []glyphRef
	index := make(map[*glyph.GlyphData]int)
	seen := make(map[rune]bool)

	add := func(r rune) {
		if seen[r] {
			return
		}
		seen[r] = true
		g := glyphs[r]
		if i, ok := index[g]; ok {
			refs[i].runes = append(refs[i].runes, r)
			return
		}
		index[g] = len(refs)
		refs = append(refs, glyphRef{data: g, runes: []rune{r}})
	}
	for _, p := range pairs {
		add(p.Left.Unicode)
		add(p.Right.Unicode)
	}
	return refs
}

// progress turns completed work units into monotone percentages.
type progress struct {
	mu    sync.Mutex
	fn    func(float64)
	total int
	done  int
	last  float64
	sent  bool
}

func newProgress(fn func(float64), total int) *progress {
	return &progress{fn: fn, total: total}
}

// add records n finished units and reports the new percentage if it
// increased. The callback runs under the lock.
func (p *progress) add(n int) {
	if p.fn == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.done += n
	pct := 100.0
	if p.total > 0 {
		pct = 100 * float64(min(p.done, p.total)) / float64(p.total)
	}
	if p.sent && pct <= p.last {
		return
	}
	p.last, p.sent = pct, true
	p.fn(pct)
}
