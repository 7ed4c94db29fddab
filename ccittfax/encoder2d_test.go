package ccittfax

import "testing"

// Counting the codes encoder2D.encodeRow emits would need a recording sink
// that reaches into bitSink's internals, so instead these tests check bit
// totals (and, where short enough, the bytes), which is enough to
// distinguish pass/vertical/horizontal without duplicating the bit-packing
// logic bitsink_test.go already covers.

func TestEncodeRowIdenticalToReferenceUsesVerticalOnly(t *testing.T) {
	sink := newBitSink(4)
	e := newEncoder2D(sink, Params{Scheme: SchemeT6, Columns: 4})
	coding := mkRow("WBWB")
	ref := mkRow("WBWB")

	if err := e.encodeRow(coding, ref); err != nil {
		t.Fatal(err)
	}
	sink.padToByte()

	// Four V0 codes (one per changing element plus the end-of-row
	// sentinel), each 1 bit: 4 bits total, padded to 1 byte.
	if got, want := sink.bytesWritten(), 1; got != want {
		t.Fatalf("bytesWritten() = %d, want %d", got, want)
	}
	if sink.bytes()[0] != 0b1111_0000 {
		t.Errorf("got %08b, want four V0 bits (1111) then padding", sink.bytes()[0])
	}
}

func TestEncodeRowAllBlackAgainstWhiteReferenceUsesHorizontal(t *testing.T) {
	sink := newBitSink(4)
	e := newEncoder2D(sink, Params{Scheme: SchemeT6, Columns: 8})
	coding := mkRow("BBBBBBBB")
	ref := mkRow("WWWWWWWW")

	if err := e.encodeRow(coding, ref); err != nil {
		t.Fatal(err)
	}

	// Horizontal prefix + white-term(0) + black-term(8).
	wantBits := int(horizCode.bits)
	wt, _ := terminatingCode(white, 0)
	bt, _ := terminatingCode(black, 8)
	wantBits += int(wt.bits) + int(bt.bits)
	sink.padToByte()
	wantBytes := (wantBits + 7) / 8
	if got := sink.bytesWritten(); got != wantBytes {
		t.Errorf("bytesWritten() = %d, want %d (bits=%d)", got, wantBytes, wantBits)
	}
}

func TestEncodeStripEmitsEOFB(t *testing.T) {
	sink := newBitSink(8)
	e := newEncoder2D(sink, Params{Scheme: SchemeT6, Columns: 4})
	if err := e.encodeStrip([]row{mkRow("WWWW")}); err != nil {
		t.Fatal(err)
	}
	sink.padToByte()

	// One row against the imaginary white reference line is coded as a
	// single V0 (1 bit), then EOFB is two back-to-back 12-bit EOLs: 25 bits
	// total, rounding up to 4 bytes.
	if got, want := sink.bytesWritten(), 4; got != want {
		t.Errorf("bytesWritten() = %d, want %d", got, want)
	}
}

func TestEncodeStripRejectsWrongWidth2D(t *testing.T) {
	sink := newBitSink(4)
	e := newEncoder2D(sink, Params{Scheme: SchemeT6, Columns: 8})
	err := e.encodeStrip([]row{mkRow("WWW")})
	if err != ErrInvalidDimension {
		t.Fatalf("got %v, want ErrInvalidDimension", err)
	}
}

func TestVerticalCodeTable(t *testing.T) {
	cases := []struct {
		n    int
		want code
	}{
		{0, v0}, {1, vr1}, {2, vr2}, {3, vr3}, {-1, vl1}, {-2, vl2}, {-3, vl3},
	}
	for _, tc := range cases {
		if got := verticalCode(tc.n); got != tc.want {
			t.Errorf("verticalCode(%d) = %+v, want %+v", tc.n, got, tc.want)
		}
	}
}
