package ccittfax

import "testing"

func mkRow(s string) row {
	r := make(row, len(s))
	for i, c := range s {
		if c == 'B' {
			r[i] = 1
		}
	}
	return r
}

func TestNextRunLength(t *testing.T) {
	r := mkRow("WWWBBWWWW")
	cases := []struct {
		start int
		c     color
		want  int
	}{
		{0, white, 3},
		{3, black, 2},
		{5, white, 4},
		{9, white, 0},
	}
	for _, tc := range cases {
		if got := nextRunLength(r, tc.start, tc.c); got != tc.want {
			t.Errorf("nextRunLength(%d,%d) = %d, want %d", tc.start, tc.c, got, tc.want)
		}
	}
}

func TestNextRunLengthZeroOnMismatch(t *testing.T) {
	r := mkRow("BBWW")
	if got := nextRunLength(r, 0, white); got != 0 {
		t.Errorf("expected a zero-length run when the leading pixel is black, got %d", got)
	}
}

func TestNextChangingElement(t *testing.T) {
	r := mkRow("WWWBBWWWW")
	cases := []struct {
		from int
		want int
	}{
		{-1, 3},
		{0, 3},
		{3, 5},
		{5, len(r)},
	}
	for _, tc := range cases {
		if got := nextChangingElement(r, tc.from); got != tc.want {
			t.Errorf("nextChangingElement(%d) = %d, want %d", tc.from, got, tc.want)
		}
	}
}

func TestNextChangingElementOfColor(t *testing.T) {
	r := mkRow("WWBBWWBB")
	// from -1 (virtual white), the first changing element to a new color is
	// at 2 (black); asking explicitly for black should land there too.
	if got := nextChangingElementOfColor(r, -1, black); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
	// asking for white from -1 should skip the black-starting change at 2
	// and land on the next change back to white, at 4.
	if got := nextChangingElementOfColor(r, -1, white); got != 4 {
		t.Errorf("got %d, want 4", got)
	}
}

func TestNextChangingElementOfColorSentinelWhenAbsent(t *testing.T) {
	r := mkRow("WWWW")
	if got := nextChangingElementOfColor(r, -1, black); got != len(r) {
		t.Errorf("got %d, want sentinel %d", got, len(r))
	}
}

func TestColorAtOrWhite(t *testing.T) {
	r := mkRow("BW")
	if colorAtOrWhite(r, -1) != white {
		t.Error("column -1 must read as white")
	}
	if colorAtOrWhite(r, 0) != black {
		t.Error("column 0 should read as black")
	}
}
