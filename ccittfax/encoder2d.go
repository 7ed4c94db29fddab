package ccittfax

// Two-dimensional (T.6) coding modes and their prefixes, per spec.md §4.5.
var (
	passCode = code{4, 0x1}
	horizCode = code{3, 0x1}

	v0  = code{1, 0x1}
	vr1 = code{3, 0x3}
	vr2 = code{6, 0x3}
	vr3 = code{7, 0x3}
	vl1 = code{3, 0x2}
	vl2 = code{6, 0x2}
	vl3 = code{7, 0x2}
)

// verticalCode returns the V(n) code for n = a1 - b1, n in [-3,3].
func verticalCode(n int) code {
	switch n {
	case 0:
		return v0
	case 1:
		return vr1
	case 2:
		return vr2
	case 3:
		return vr3
	case -1:
		return vl1
	case -2:
		return vl2
	case -3:
		return vl3
	default:
		// Callers only reach here after checking |n| <= 3; this branch
		// exists so the function is total, per spec.md §9's stance that
		// table lookups should never need a bounds check on the hot path.
		return v0
	}
}

// encoder2D implements spec.md §4.5, the T.6 two-dimensional encoder. Mode
// selection is grounded on the pass/vertical/horizontal decision tree in
// the grounding example's encodeG4 (other_examples/59dbb729), with the
// b1/b2 changing-element search taken directly from spec.md §3's
// definitions rather than that example's more convoluted seekB1 — the
// decoder-side calcb1/calcb2 in pdfcpu-pdfcpu/ccitt/reader.go confirms the
// same "first changing element of the opposite color" reading.
type encoder2D struct {
	sink    *bitSink
	columns int
}

func newEncoder2D(sink *bitSink, p Params) *encoder2D {
	return &encoder2D{sink: sink, columns: p.Columns}
}

// encodeStrip encodes every row against an evolving reference line,
// starting from the imaginary all-white row spec.md §3 defines, and
// closes the strip with EOFB.
func (e *encoder2D) encodeStrip(rows []row) error {
	ref := make(row, e.columns)
	for _, r := range rows {
		if len(r) != e.columns {
			return ErrInvalidDimension
		}
		if err := e.encodeRow(r, ref); err != nil {
			return err
		}
		ref = r
	}
	e.sink.writeCode(eolCode)
	e.sink.writeCode(eolCode)
	return nil
}

// encodeRow codes one row against ref per spec.md §4.5's per-element loop.
func (e *encoder2D) encodeRow(coding, ref row) error {
	a0 := -1
	for a0 < e.columns {
		a0Color := colorAtOrWhite(coding, a0)
		a1 := nextChangingElement(coding, a0)
		b1 := nextChangingElementOfColor(ref, a0, a0Color.opposite())
		b2 := nextChangingElement(ref, b1)

		switch {
		case b2 < a1:
			e.sink.writeCode(passCode)
			a0 = b2

		case abs(a1-b1) <= 3:
			e.sink.writeCode(verticalCode(a1 - b1))
			a0 = a1

		default:
			if err := e.encodeHorizontal(coding, a0, a1, a0Color); err != nil {
				return err
			}
			a0 = nextChangingElement(coding, a1)
		}
	}
	return nil
}

// encodeHorizontal emits the H prefix and the two 1-D run codes for
// (color(a0), a1-a0) then (opposite, a2-a1), per spec.md §4.5.
func (e *encoder2D) encodeHorizontal(coding row, a0, a1 int, a0Color color) error {
	start := a0
	if start < 0 {
		start = 0
	}
	a2 := nextChangingElement(coding, a1)

	e.sink.writeCode(horizCode)

	codes, err := appendRunCodes(nil, a0Color, a1-start)
	if err != nil {
		return err
	}
	codes, err = appendRunCodes(codes, a0Color.opposite(), a2-a1)
	if err != nil {
		return err
	}
	for _, c := range codes {
		e.sink.writeCode(c)
	}
	return nil
}

// colorAtOrWhite returns the color at column x on r, treating x < 0 as the
// imaginary white pixel left of column 0 (spec.md §4.5's a0 = -1 case).
func colorAtOrWhite(r row, x int) color {
	if x < 0 {
		return white
	}
	return colorAt(r, x)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
