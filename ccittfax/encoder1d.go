package ccittfax

// encoder1D implements spec.md §4.4, the T.4 one-dimensional encoder. It is
// grounded on the shape of the grounding example's encodeG31D/encodeRow1D
// (other_examples/59dbb729_unidoc-unipdf__internal-ccittfax-encoder.go.go),
// generalized to this package's bitSink/table API and the exact
// fill-before-EOL and RTC rules spec.md §4.4 specifies.
type encoder1D struct {
	sink    *bitSink
	columns int
	fill    bool
	rtc     bool
}

func newEncoder1D(sink *bitSink, p Params) *encoder1D {
	return &encoder1D{sink: sink, columns: p.Columns, fill: p.Fill, rtc: p.EndOfBlock}
}

// encodeStrip encodes every row of the strip, each as an independent T.4
// 1-D coded line, followed by an EOL, and an optional RTC. The last row's
// own step-2c EOL already counts as the first of RTC's six, so only five
// more are added here.
func (e *encoder1D) encodeStrip(rows []row) error {
	for _, r := range rows {
		if len(r) != e.columns {
			return ErrInvalidDimension
		}
		if err := e.encodeRow(r); err != nil {
			return err
		}
	}
	if e.rtc {
		for i := 0; i < 5; i++ {
			e.emitEOL()
		}
	}
	return nil
}

// encodeRow encodes one row per spec.md §4.4 step 2: alternating runs
// starting with white, each emitted via the make-up/terminating
// decomposition of §4.1, followed by one EOL.
func (e *encoder1D) encodeRow(r row) error {
	col := 0
	cur := white
	for col < e.columns {
		length := nextRunLength(r, col, cur)
		codes, err := appendRunCodes(nil, cur, length)
		if err != nil {
			return err
		}
		for _, c := range codes {
			e.sink.writeCode(c)
		}
		col += length
		cur = cur.opposite()
	}
	e.emitEOL()
	return nil
}

// emitEOL writes the 12-bit EOL marker, inserting 0-7 zero fill bits
// first when Params.Fill requests byte-aligned EOLs (spec.md §4.4 bit 2).
func (e *encoder1D) emitEOL() {
	if e.fill {
		e.sink.fillBitsBeforeEOL()
	}
	e.sink.writeCode(eolCode)
}
