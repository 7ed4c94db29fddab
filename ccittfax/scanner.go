package ccittfax

// row is one scan line: one byte per pixel, zero is white, non-zero is
// black, per spec.md §6. blackIs1 inversion (see params.go) is applied
// once when the row is staged, so the scanner and the 2-D reference line
// only ever see this canonical polarity.
type row []byte

// isColor reports whether the pixel at column x has the given color. A
// column at or past the row's width reads as white, matching spec.md §3's
// "imaginary trailing white pixel past column width-1".
func (r row) isColor(x int, c color) bool {
	if x < 0 || x >= len(r) {
		return c == white
	}
	if r[x] != 0 {
		return c == black
	}
	return c == white
}

// nextRunLength implements spec.md §4.3's next_run_length: the number of
// contiguous pixels starting at start equal to expectedColor, clamped to
// width-start. If row[start] does not match expectedColor the run is a
// legal zero-length run.
func nextRunLength(r row, start int, expectedColor color) int {
	width := len(r)
	if start >= width {
		return 0
	}
	n := 0
	for start+n < width && r.isColor(start+n, expectedColor) {
		n++
	}
	return n
}

// nextChangingElement returns the first column strictly greater than from
// where the pixel color differs from the color at from (column -1 is
// defined as white, per spec.md §3's "Changing element"). It returns
// len(r) — the sentinel — when no such column exists, which is what lets
// the 2-D encoder's loops run without special-casing the row's right edge
// (spec.md §9).
func nextChangingElement(r row, from int) int {
	width := len(r)
	var refColor color
	if from < 0 {
		refColor = white
	} else if from >= width {
		return width
	} else {
		refColor = colorAt(r, from)
	}
	i := from + 1
	for i < width && colorAt(r, i) == refColor {
		i++
	}
	return i
}

// colorAt returns the color of the pixel at x, which must be in [0,len(r)).
func colorAt(r row, x int) color {
	if r[x] != 0 {
		return black
	}
	return white
}

// nextChangingElementOfColor returns the first changing element on r
// strictly right of from whose new color equals want. This implements the
// "next changing element ... whose color differs from the color at a0"
// shape spec.md §3 describes for b1, generalized so callers can ask for
// either color. The 2-D encoder uses it for b1 only; b2 is located from b1
// with plain nextChangingElement.
func nextChangingElementOfColor(r row, from int, want color) int {
	width := len(r)
	c := nextChangingElement(r, from)
	for c < width && colorAt(r, c) != want {
		c = nextChangingElement(r, c)
	}
	return c
}
