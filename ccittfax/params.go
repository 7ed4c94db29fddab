package ccittfax

// Scheme selects which coding scheme a strip is compressed with, per
// spec.md §4.4/§4.5.
type Scheme int

const (
	// SchemeT4 is the one-dimensional Modified Huffman scheme (Group 3).
	SchemeT4 Scheme = iota
	// SchemeT6 is the two-dimensional Modified READ scheme (Group 4).
	SchemeT6
)

// Params configures a Codec and every CompressStrip call made on it. It
// follows the shape of
// jpeg/lossless/parameters.go's JPEGLosslessParameters: a plain struct with
// a Validate method and With* chaining setters, rather than a variadic
// functional-options constructor.
type Params struct {
	// Scheme selects T.4 1-D or T.6 2-D coding.
	Scheme Scheme

	// Columns is the pixel width of every row in the strip. It must match
	// the length of every row passed to CompressStrip.
	Columns int

	// Fill requests 0-7 zero fill bits before every T.4 EOL so the EOL's
	// final bit lands on a byte boundary. Ignored under SchemeT6, which has
	// no per-row EOL to align (see DESIGN.md's Open Question resolution).
	Fill bool

	// EndOfBlock requests a six-EOL RTC marker after the last row of a
	// SchemeT4 strip. SchemeT6 always terminates with EOFB regardless of
	// this field.
	EndOfBlock bool

	// BlackIs1 inverts the input polarity: when true, a non-zero input byte
	// means white and zero means black, matching TIFF's photometric
	// interpretation 1, BlackIsZero (WhiteIsZero is the default, BlackIs1
	// false).
	BlackIs1 bool
}

// Validate checks p for the invariants spec.md §4.4/§7 require before a
// strip may be coded. It does not inspect row data; CompressStrip checks
// that separately against each row's actual length.
func (p Params) Validate() error {
	if p.Scheme != SchemeT4 && p.Scheme != SchemeT6 {
		return ErrUnsupportedOption
	}
	if p.Columns <= 0 {
		return ErrInvalidDimension
	}
	return nil
}

// WithScheme returns a copy of p with Scheme set.
func (p Params) WithScheme(s Scheme) Params {
	p.Scheme = s
	return p
}

// WithColumns returns a copy of p with Columns set.
func (p Params) WithColumns(columns int) Params {
	p.Columns = columns
	return p
}

// WithFill returns a copy of p with Fill set.
func (p Params) WithFill(fill bool) Params {
	p.Fill = fill
	return p
}

// WithEndOfBlock returns a copy of p with EndOfBlock set.
func (p Params) WithEndOfBlock(eob bool) Params {
	p.EndOfBlock = eob
	return p
}

// WithBlackIs1 returns a copy of p with BlackIs1 set.
func (p Params) WithBlackIs1(b bool) Params {
	p.BlackIs1 = b
	return p
}
