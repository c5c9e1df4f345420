package axis

import (
	"cmp"
	"math"
	"slices"
)

// Ruler describes one gridline.
//
// Weight is d / ((size-1)·WeightSpan) clamped to [0, 1] and capped by the
// weight of the coarser rulers enclosing it, where d is the pixel distance
// to the nearer of those two rulers. Level-0 rulers use the gap to the
// next ruler of their own level and are not capped. The origin and the
// borders weigh 1.
type Ruler struct {
	Value     float64 // domain value; ±Inf only on a border ruler
	Coord     float64 // continuous coordinate
	ViewCoord int     // pixel in [0, MaxViewCoord]
	Weight    float64 // prominence in [0, 1]
	Level     int     // 0 for the origin, decades and the coarsest linear step
	Border    bool    // one of the two viewport edges
}

const (
	// maxDecade is the largest exponent with a finite power of ten.
	maxDecade = 308

	// maxExact is the largest multiplier k for which k+1 is still exact.
	maxExact = 1 << 53

	// maxLinearSteps bounds the coarse linear rulers; span/step < 10.
	maxLinearSteps = 12
)

// subdivisions are the patterns tried when refining an interval, finest
// first, as the last decimal digit of the multiplier. nil selects every
// multiple; only a full subdivision is refined further.
var subdivisions = [...][]int{nil, {2, 5}, {5}}

type magRuler struct {
	mag    float64
	weight float64
	level  int
}

// refineItem is a pending subdivision of [kFrom·10^exp, kTo·10^exp] into
// steps of 10^exp. Both ends are coarser rulers.
type refineItem struct {
	kFrom, kTo float64
	exp        int
	cap        float64
	level      int
}

// rulerGen generates rulers over the magnitude interval [lo, hi] using
// positive-side offsets; callers mirror or negate the result.
type rulerGen struct {
	z      *zones
	opts   rulerOptions
	lo, hi float64
	norm   float64
	minLog int
	maxLog int

	out  []magRuler
	work []refineItem

	pts, cs, ws []float64
}

// VisibleRulers returns the gridlines to draw for the current window,
// sorted by ViewCoord with at most one ruler per pixel.
//
// Coarse rulers (the origin, decades and the widest linear step) are always
// produced; each finer ×0.1 level is added only where its neighbors are at
// least the minimum spacing apart. A window that crosses zero is generated
// for the larger side and mirrored. Unless disabled with WithBorders, both
// viewport edges are included, so the result is never empty.
func (a Axis) VisibleRulers(opts ...RulerOption) []Ruler {
	o := defaultRulerOptions(a.size)
	for _, opt := range opts {
		opt(&o)
	}

	lo, hi, sign, mirror := visibleMagnitudes(a.cur)
	g := &rulerGen{
		z:      &a.z,
		opts:   o,
		lo:     lo,
		hi:     hi,
		norm:   float64(a.size-1) * o.weightSpan,
		minLog: a.cur.MinLog,
		maxLog: a.cur.MaxLog,
	}
	g.run()

	rulers := make([]Ruler, 0, 2*len(g.out)+2)
	add := func(v float64, m magRuler) {
		c := a.z.coord(v)
		vc, ok := a.ValueToViewCoord(v)
		if !ok {
			return
		}
		rulers = append(rulers, Ruler{Value: v, Coord: c, ViewCoord: vc, Weight: m.weight, Level: m.level})
	}
	for _, m := range g.out {
		if m.mag == 0 {
			add(0, m)
			continue
		}
		add(sign*m.mag, m)
		if mirror {
			add(-m.mag, m)
		}
	}
	if o.borders {
		maxC := a.size - 1
		rulers = append(rulers,
			Ruler{Value: a.cur.MinValue, Coord: 0, ViewCoord: 0, Weight: 1, Border: true},
			Ruler{Value: a.cur.MaxValue, Coord: float64(maxC), ViewCoord: maxC, Weight: 1, Border: true},
		)
	}
	return dedupeRulers(rulers)
}

// visibleMagnitudes folds the window onto the non-negative half-line.
func visibleMagnitudes(r Range) (lo, hi, sign float64, mirror bool) {
	switch {
	case r.MinValue < 0 && r.MaxValue > 0:
		return 0, math.Max(-r.MinValue, r.MaxValue), 1, true
	case r.MinValue >= 0:
		return r.MinValue, r.MaxValue, 1, false
	default:
		return math.Abs(r.MaxValue), -r.MinValue, -1, false
	}
}

// dedupeRulers sorts rulers by pixel and keeps the heaviest per pixel,
// preferring gridlines over borders on ties.
func dedupeRulers(rulers []Ruler) []Ruler {
	slices.SortFunc(rulers, func(a, b Ruler) int {
		if c := cmp.Compare(a.ViewCoord, b.ViewCoord); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
			return c
		}
		if a.Border != b.Border {
			if a.Border {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.Level, b.Level)
	})
	out := rulers[:0]
	for _, r := range rulers {
		if n := len(out); n > 0 && out[n-1].ViewCoord == r.ViewCoord {
			continue
		}
		out = append(out, r)
	}
	return out
}

func (g *rulerGen) run() {
	if g.lo == 0 {
		g.add(0, 1, 0)
	}
	if g.lo < g.z.linLimit {
		g.linear(g.lo, math.Min(g.hi, g.z.linLimit))
	}
	if g.hi > g.z.linLimit {
		g.decades(math.Max(g.lo, g.z.linLimit), g.hi)
	}
	// Breadth-first, so a capped run still covers every coarse level.
	for head := 0; head < len(g.work) && !g.full(); head++ {
		g.refine(g.work[head])
	}
}

func (g *rulerGen) full() bool {
	return len(g.out) >= g.opts.maxRulers
}

func (g *rulerGen) add(m, w float64, level int) {
	if g.full() {
		return
	}
	g.out = append(g.out, magRuler{mag: m, weight: w, level: level})
}

func (g *rulerGen) weight(gap float64) float64 {
	w := gap / g.norm
	switch {
	case !(w > 0):
		return 0
	case w > 1:
		return 1
	}
	return w
}

// linear emits the coarsest power-of-ten step that fits the visible part
// [l, h] of the linear zone and queues the intervals between its rulers.
func (g *rulerGen) linear(l, h float64) {
	span := h - l
	if !(span > 0) {
		return
	}
	exp := floorExp(span)
	step := scaled(1, exp)
	w := g.weight(g.z.dist(0, step))
	k0 := math.Floor(l / step)
	k1 := math.Ceil(h / step)
	// Past maxExact neighboring multiples collapse: the window is a few
	// ulps wide and only the borders can be told apart.
	if !(k0 < maxExact) || !(k1-k0 <= maxLinearSteps) {
		return
	}
	n := int(k1 - k0)
	for i := 0; i <= n; i++ {
		k := k0 + float64(i)
		if m := scaled(k, exp); m != 0 && m >= l && m <= h {
			g.add(m, w, 0)
		}
		if i < n && !g.full() {
			g.work = append(g.work, refineItem{kFrom: 10 * k, kTo: 10 * (k + 1), exp: exp - 1, cap: w, level: 1})
		}
	}
}

// decades emits powers of ten in [l, h] beyond the linear zone and queues
// each visible decade for refinement. Inside the log zone every stride-th
// decade is kept, the stride growing when decades are too dense; beyond it
// decades are kept while they stay far enough apart.
func (g *rulerGen) decades(l, h float64) {
	dLo := floorExp(l)
	dHi := maxDecade
	if h < math.MaxFloat64 {
		dHi = floorExp(h)
	}
	stride := 1
	if g.maxLog > g.minLog {
		perDecade := math.Ln10 / g.z.unit
		for stride < 100 && perDecade*float64(stride) < g.opts.minSpacing {
			stride *= 10
		}
	}
	for d := dLo; d <= dHi && !g.full(); d++ {
		m := math.Pow10(d)
		gap := g.z.dist(math.Pow10(d-stride), m)
		w := g.weight(gap)
		if m >= l && m <= h && d%stride == 0 && (d <= g.maxLog || gap >= g.opts.minSpacing) {
			g.add(m, w, 0)
		}
		if d < maxDecade {
			g.work = append(g.work, refineItem{kFrom: 1, kTo: 10, exp: d, cap: w, level: 1})
		}
	}
}

// refine subdivides one interval with the finest pattern whose visible
// gaps all reach the minimum spacing.
func (g *rulerGen) refine(it refineItem) {
	if !(it.kTo < maxExact) {
		return
	}
	n := int(it.kTo - it.kFrom)
	if n < 2 || n > 10 || it.level > maxRefineDepth {
		return
	}
	g.pts, g.cs, g.ws = g.pts[:0], g.cs[:0], g.ws[:0]
	for i := 0; i <= n; i++ {
		m := scaled(it.kFrom+float64(i), it.exp)
		g.pts = append(g.pts, m)
		g.cs = append(g.cs, g.z.dist(g.lo, m))
		g.ws = append(g.ws, it.cap)
	}
	for _, digits := range subdivisions {
		if !g.fits(it, digits) {
			continue
		}
		g.emit(it, digits)
		if digits == nil {
			g.queueChildren(it)
		}
		return
	}
}

func (g *rulerGen) selected(it refineItem, i int, digits []int) bool {
	if i == 0 || i == len(g.pts)-1 || digits == nil {
		return true
	}
	d := int(math.Mod(it.kFrom+float64(i), 10))
	return slices.Contains(digits, d)
}

func (g *rulerGen) visiblePair(p, q int) bool {
	return g.pts[q] >= g.lo && g.pts[p] <= g.hi
}

// fits reports whether the chain of selected points has a visible pair
// and every visible gap is at least the minimum spacing.
func (g *rulerGen) fits(it refineItem, digits []int) bool {
	visible := false
	prev := 0
	for i := 1; i < len(g.pts); i++ {
		if !g.selected(it, i, digits) {
			continue
		}
		if g.visiblePair(prev, i) {
			visible = true
			if !(g.cs[i]-g.cs[prev] >= g.opts.minSpacing) {
				return false
			}
		}
		prev = i
	}
	return visible
}

func (g *rulerGen) emit(it refineItem, digits []int) {
	n := len(g.pts) - 1
	for i := 1; i < n; i++ {
		if !g.selected(it, i, digits) {
			continue
		}
		d := math.Min(g.cs[i]-g.cs[0], g.cs[n]-g.cs[i])
		w := math.Min(it.cap, g.weight(d))
		g.ws[i] = w
		if m := g.pts[i]; m >= g.lo && m <= g.hi {
			g.add(m, w, it.level)
		}
	}
}

func (g *rulerGen) queueChildren(it refineItem) {
	for i := 0; i+1 < len(g.pts) && !g.full(); i++ {
		if !g.visiblePair(i, i+1) {
			continue
		}
		k := it.kFrom + float64(i)
		g.work = append(g.work, refineItem{
			kFrom: 10 * k,
			kTo:   10 * (k + 1),
			exp:   it.exp - 1,
			cap:   math.Min(g.ws[i], g.ws[i+1]),
			level: it.level + 1,
		})
	}
}

// scaled returns k·10^exp, dividing for negative exponents so decimal
// multiples such as 0.3 come out correctly rounded.
func scaled(k float64, exp int) float64 {
	if exp >= 0 {
		return k * math.Pow10(exp)
	}
	return k / math.Pow10(-exp)
}

// floorExp returns the largest e with 10^e <= x, for finite x > 0.
func floorExp(x float64) int {
	e := int(math.Floor(math.Log10(x)))
	for e > -330 && math.Pow10(e) > x {
		e--
	}
	for e < maxDecade && math.Pow10(e+1) <= x {
		e++
	}
	return e
}
