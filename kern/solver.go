package kern

import "github.com/gogpu/glyph"

// Pair identifies an ordered glyph pair by unicode.
type Pair struct {
	Left, Right rune
}

// Map holds solved kern values. A present zero value means the pair was
// reviewed and needs no adjustment; an absent key means unreviewed.
type Map map[Pair]int

// Merge copies all entries of other into m.
func (m Map) Merge(other Map) {
	for k, v := range other {
		m[k] = v
	}
}

// CharPair is one pair to solve.
type CharPair struct {
	Left, Right glyph.Character
}

// Key returns the map key of the pair.
func (p CharPair) Key() Pair {
	return Pair{Left: p.Left.Unicode, Right: p.Right.Unicode}
}

// Source is the read-only snapshot of font data the solver works on.
type Source struct {
	Glyphs          map[rune]*glyph.GlyphData
	Metrics         glyph.FontMetrics
	StrokeThickness float64
	Rules           []Rule
	Groups          glyph.Groups
}

// Solver solves pairs one at a time against a Source. Zone boxes are
// memoized per glyph for the lifetime of the Solver.
//
// A Solver is not safe for concurrent use; see SolveBatch for parallel
// solving.
type Solver struct {
	src      Source
	expander *glyph.Expander
	zones    map[rune]zoneEntry
}

type zoneEntry struct {
	zones glyph.ZoneBoxes
	ok    bool
}

// NewSolver creates a solver over src.
func NewSolver(src Source) *Solver {
	return &Solver{
		src:      src,
		expander: glyph.NewExpander(src.Groups),
		zones:    make(map[rune]zoneEntry),
	}
}

// Zones returns the memoized zone boxes of a glyph.
func (s *Solver) Zones(r rune) (glyph.ZoneBoxes, bool) {
	if e, ok := s.zones[r]; ok {
		return e.zones, e.ok
	}
	z, ok := glyph.ComputeZoneBoxes(s.src.Glyphs[r], s.src.Metrics.BaselineY, s.src.Metrics.ToplineY, s.src.StrokeThickness)
	s.zones[r] = zoneEntry{zones: z, ok: ok}
	return z, ok
}

// Target returns the x-height gap the pair must keep.
func (s *Solver) Target(left, right glyph.Character) float64 {
	return resolveTarget(left, right, s.src.Metrics, s.src.Rules, s.expander)
}

// Solve returns the tightest kern value for the pair. The bool is false
// when either glyph has no geometry or no candidate is feasible.
func (s *Solver) Solve(left, right glyph.Character) (int, bool) {
	p, ok := s.problem(left, right)
	if !ok {
		return 0, false
	}
	return p.search()
}

// Feasible reports whether kern value k satisfies the pair's collision
// and gap constraints. It is false when either glyph has no geometry.
func (s *Solver) Feasible(left, right glyph.Character, k int) bool {
	p, ok := s.problem(left, right)
	if !ok {
		return false
	}
	return p.feasible(k)
}

func (s *Solver) problem(left, right glyph.Character) (problem, bool) {
	lz, ok := s.Zones(left.Unicode)
	if !ok {
		return problem{}, false
	}
	rz, ok := s.Zones(right.Unicode)
	if !ok {
		return problem{}, false
	}
	m := s.src.Metrics
	return problem{
		left:     lz,
		right:    rz,
		leftRSB:  left.ResolveRSB(m),
		rightLSB: right.ResolveLSB(m),
		target:   s.Target(left, right),
		floor:    searchFloor(m),
	}, true
}

// searchFloor is the most negative kern value considered. Kerning only
// ever tightens, so the range is [-unitsPerEm/2, 0].
func searchFloor(m glyph.FontMetrics) int {
	if m.UnitsPerEm <= 0 {
		return 0
	}
	return -m.UnitsPerEm / 2
}

// problem is the fully resolved geometry of one pair. It holds no
// references to mutable state and is safe to search from any goroutine.
type problem struct {
	left, right       glyph.ZoneBoxes
	leftRSB, rightLSB float64
	target            float64
	floor             int
}

// shift is the horizontal translation that places the right glyph after
// the left glyph with kern value k applied.
func (p problem) shift(k int) float64 {
	return (p.left.Full.Max.X + p.leftRSB + p.rightLSB + float64(k)) - p.right.Full.Min.X
}

// feasible reports whether kern value k is allowed. Ascender and
// descender collisions are always forbidden; if both glyphs have an
// x-height zone its gap must be at least the target, otherwise the full
// boxes must not collide.
//
// Feasibility is monotone in k: a more negative k only moves the right
// glyph further left.
func (p problem) feasible(k int) bool {
	moved := p.right.Translate(p.shift(k))

	if collides(p.left.Ascender, moved.Ascender) || collides(p.left.Descender, moved.Descender) {
		return false
	}
	if p.left.XHeight != nil && moved.XHeight != nil {
		return moved.XHeight.Min.X-p.left.XHeight.Max.X >= p.target
	}
	return !collides(&p.left.Full, &moved.Full)
}

// search binary-searches [floor, 0] for the most negative feasible k.
func (p problem) search() (int, bool) {
	low, high := p.floor, 0
	best, found := 0, false
	for low <= high {
		mid := low + (high-low)/2
		if p.feasible(mid) {
			best, found = mid, true
			high = mid - 1
		} else {
			low = mid + 1
		}
	}
	if !found || best > 0 {
		return 0, false
	}
	return best, true
}

// collides reports whether the right box reaches the left box: their
// vertical ranges overlap (touching counts) and the right box's left edge
// is at or before the left box's right edge. A right box that has slid
// entirely past the left one still collides, which keeps feasibility
// monotone.
func collides(left, right *glyph.Rect) bool {
	if left == nil || right == nil {
		return false
	}
	// left spread over right's columns, so Overlaps compares rows only.
	rows := glyph.Rect{
		Min: glyph.Pt(right.Min.X, left.Min.Y),
		Max: glyph.Pt(right.Max.X, left.Max.Y),
	}
	if !rows.Overlaps(*right) {
		return false
	}
	return right.Min.X <= left.Max.X
}
