// Package ccittfax implements the ITU-T T.4 (Group 3, one-dimensional) and
// T.6 (Group 4, two-dimensional) Modified Huffman run-length encoders for a
// single expanded 1-bit-per-pixel strip. It does not read or write a TIFF
// container, decode other photometric interpretations, or implement any
// other codec; callers hand it rows of one byte per pixel and get back a
// packed, MSB-first coded bitstream.
package ccittfax

import (
	"fmt"
	"io"
)

// Codec implements the Modified Huffman encoder for one coding scheme,
// mirrored on jpeg/lossless/codec.go's Codec: a small struct wrapping
// configuration, with the actual work delegated to a top-level function per
// call rather than held as per-call state.
type Codec struct {
	params Params
}

// NewCodec validates params and returns a Codec bound to them. All strips
// compressed by the returned Codec share that configuration; construct a
// new Codec for a different Scheme, Columns or option set.
func NewCodec(params Params) (*Codec, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("ccittfax: %w", err)
	}
	return &Codec{params: params}, nil
}

// Close releases resources held by the Codec. There are none to release —
// Go's garbage collector reclaims the Codec's buffers — but the method
// exists so callers that defer Close() on other codecs in this family don't
// need a special case for this one.
func (c *Codec) Close() error {
	return nil
}

// CompressStrip encodes rows — one strip of one byte per pixel per row,
// every row exactly c.params.Columns pixels wide — into a packed Modified
// Huffman bitstream, per the scheme the Codec was constructed with, and
// writes the result to sink in a single terminal write. It returns the
// number of bytes written.
func (c *Codec) CompressStrip(rows [][]byte, sink io.Writer) (int, error) {
	if len(rows) == 0 || c.params.Columns == 0 {
		return 0, ErrInvalidDimension
	}

	staged := make([]row, len(rows))
	for i, r := range rows {
		if len(r) != c.params.Columns {
			return 0, ErrInvalidDimension
		}
		staged[i] = stageRow(r, c.params.BlackIs1)
	}

	// A single T.4/T.6 code never exceeds 13 bits, and horizontal mode's
	// worst case still amortizes to a small constant factor over one
	// packed bit per input pixel; bytesPerRow is a roomy preallocation
	// hint, not a correctness bound (see DESIGN.md).
	bytesPerRow := c.params.Columns/8 + 2
	bits := newBitSink(bytesPerRow * len(rows))

	var err error
	switch c.params.Scheme {
	case SchemeT4:
		err = newEncoder1D(bits, c.params).encodeStrip(staged)
	case SchemeT6:
		err = newEncoder2D(bits, c.params).encodeStrip(staged)
	default:
		err = ErrUnsupportedOption
	}
	if err != nil {
		return 0, fmt.Errorf("ccittfax: %w", err)
	}

	bits.padToByte()
	out := bits.bytes()
	n, werr := sink.Write(out)
	if werr != nil {
		return n, fmt.Errorf("%w: %v", ErrSinkWrite, werr)
	}
	if n != len(out) {
		return n, fmt.Errorf("%w: short write (%d of %d bytes)", ErrSinkWrite, n, len(out))
	}
	return n, nil
}

// stageRow copies src into the package's canonical row polarity (zero is
// white, non-zero is black), applying the BlackIs1 inversion if requested.
func stageRow(src []byte, blackIs1 bool) row {
	r := make(row, len(src))
	for i, b := range src {
		px := b != 0
		if blackIs1 {
			px = !px
		}
		if px {
			r[i] = 1
		}
	}
	return r
}
