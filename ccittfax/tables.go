package ccittfax

// Code tables for the Modified Huffman run-length coding used by T.4 and
// T.6. The table *shape* (two parallel (lengths, values)-style arrays
// consolidated into one dense lookup) follows jpeg/common/tables.go's
// StandardDCLuminanceBits/Values pattern; the table *content* — which run
// length gets which (bit length, pattern) pair — is the literal ITU-T T.4
// Table 2/3/3a code book, reproduced verbatim as spec.md §4.1 requires.
// Every (color, length) pair in [0, 2560] round-trips through
// appendRunCodes; see tables_test.go for the exhaustive check.

// color distinguishes white and black runs. The zero value is white,
// matching spec.md §4.4's "starting color is white".
type color uint8

const (
	white color = iota
	black
)

func (c color) opposite() color {
	if c == white {
		return black
	}
	return white
}

// code is a single Modified Huffman code entry: the low bits bits of
// pattern are emitted MSB-first by the bit sink.
type code struct {
	bits    uint8
	pattern uint16
}

// eolCode is the 12-bit end-of-line marker shared by T.4 and T.6 (used twice
// back to back as EOFB, six times as RTC).
var eolCode = code{bits: 12, pattern: 0x001}

// makeupStride is the run-length granularity of every make-up code.
const makeupStride = 64

// maxMakeup is the largest run length a single make-up code can represent;
// longer runs repeat the 2560 code per spec.md §4.1's extended-range rule.
const maxMakeup = 2560

// whiteTerm holds the terminating codes for white run lengths [0,63].
var whiteTerm = [64]code{
	{8, 0x35}, {6, 0x07}, {4, 0x07}, {4, 0x08}, {4, 0x0B}, {4, 0x0C}, {4, 0x0E}, {4, 0x0F},
	{5, 0x13}, {5, 0x14}, {5, 0x07}, {5, 0x08}, {6, 0x08}, {6, 0x03}, {6, 0x34}, {6, 0x35},
	{6, 0x2A}, {6, 0x2B}, {7, 0x27}, {7, 0x0C}, {7, 0x08}, {7, 0x17}, {7, 0x03}, {7, 0x04},
	{7, 0x28}, {7, 0x2B}, {7, 0x13}, {7, 0x24}, {7, 0x18}, {8, 0x02}, {8, 0x03}, {8, 0x1A},
	{8, 0x1B}, {8, 0x12}, {8, 0x13}, {8, 0x14}, {8, 0x15}, {8, 0x16}, {8, 0x17}, {8, 0x28},
	{8, 0x29}, {8, 0x2A}, {8, 0x2B}, {8, 0x2C}, {8, 0x2D}, {8, 0x04}, {8, 0x05}, {8, 0x0A},
	{8, 0x0B}, {8, 0x52}, {8, 0x53}, {8, 0x54}, {8, 0x55}, {8, 0x24}, {8, 0x25}, {8, 0x58},
	{8, 0x59}, {8, 0x5A}, {8, 0x5B}, {8, 0x4A}, {8, 0x4B}, {8, 0x32}, {8, 0x33}, {8, 0x34},
}

// blackTerm holds the terminating codes for black run lengths [0,63].
var blackTerm = [64]code{
	{10, 0x37}, {3, 0x02}, {2, 0x03}, {2, 0x02}, {3, 0x03}, {4, 0x03}, {4, 0x02}, {5, 0x03},
	{6, 0x05}, {6, 0x04}, {7, 0x04}, {7, 0x05}, {7, 0x07}, {8, 0x04}, {8, 0x07}, {9, 0x18},
	{10, 0x17}, {10, 0x18}, {10, 0x08}, {11, 0x67}, {11, 0x68}, {11, 0x6C}, {11, 0x37}, {11, 0x28},
	{11, 0x17}, {11, 0x18}, {12, 0xCA}, {12, 0xCB}, {12, 0xCC}, {12, 0xCD}, {12, 0x68}, {12, 0x69},
	{12, 0x6A}, {12, 0x6B}, {12, 0xD2}, {12, 0xD3}, {12, 0xD4}, {12, 0xD5}, {12, 0xD6}, {12, 0xD7},
	{12, 0x6C}, {12, 0x6D}, {12, 0xDA}, {12, 0xDB}, {12, 0x54}, {12, 0x55}, {12, 0x56}, {12, 0x57},
	{12, 0x64}, {12, 0x65}, {12, 0x52}, {12, 0x53}, {12, 0x24}, {12, 0x37}, {12, 0x38}, {12, 0x27},
	{12, 0x28}, {12, 0x58}, {12, 0x59}, {12, 0x2B}, {12, 0x2C}, {12, 0x5A}, {12, 0x66}, {12, 0x67},
}

// whiteMakeupLens lists the white-specific make-up run lengths, 64..1728.
var whiteMakeupLens = [27]int{
	64, 128, 192, 256, 320, 384, 448, 512, 576, 640, 704, 768, 832, 896,
	960, 1024, 1088, 1152, 1216, 1280, 1344, 1408, 1472, 1536, 1600, 1664, 1728,
}

var whiteMakeup = [27]code{
	{5, 0x1B}, {5, 0x12}, {6, 0x17}, {7, 0x37}, {8, 0x36}, {8, 0x37}, {8, 0x64}, {8, 0x65},
	{8, 0x68}, {8, 0x67}, {9, 0xCC}, {9, 0xCD}, {9, 0xD2}, {9, 0xD3}, {9, 0xD4}, {9, 0xD5},
	{9, 0xD6}, {9, 0xD7}, {9, 0xD8}, {9, 0xD9}, {9, 0xDA}, {9, 0xDB}, {9, 0x98}, {9, 0x99},
	{9, 0x9A}, {6, 0x18}, {9, 0x9B},
}

// blackMakeupLens lists the black-specific make-up run lengths, 64..1728.
var blackMakeupLens = [27]int{
	64, 128, 192, 256, 320, 384, 448, 512, 576, 640, 704, 768, 832, 896,
	960, 1024, 1088, 1152, 1216, 1280, 1344, 1408, 1472, 1536, 1600, 1664, 1728,
}

var blackMakeup = [27]code{
	{10, 0x0F}, {12, 0xC8}, {12, 0xC9}, {12, 0x5B}, {12, 0x33}, {12, 0x34}, {12, 0x35}, {13, 0x6C},
	{13, 0x6D}, {13, 0x4A}, {13, 0x4B}, {13, 0x4C}, {13, 0x4D}, {13, 0x72}, {13, 0x73}, {13, 0x74},
	{13, 0x75}, {13, 0x76}, {13, 0x77}, {13, 0x52}, {13, 0x53}, {13, 0x54}, {13, 0x55}, {13, 0x5A},
	{13, 0x5B}, {13, 0x64}, {13, 0x65},
}

// commonMakeupLens lists run lengths shared by both colors, 1792..2560 —
// the extended-range codes spec.md §3 calls the "40-element set" once
// combined with the 27 per-color lengths above (27 + 13 = 40).
var commonMakeupLens = [13]int{
	1792, 1856, 1920, 1984, 2048, 2112, 2176, 2240, 2304, 2368, 2432, 2496, 2560,
}

var commonMakeup = [13]code{
	{11, 0x08}, {11, 0x0C}, {11, 0x0D}, {12, 0x12}, {12, 0x13}, {12, 0x14}, {12, 0x15},
	{12, 0x16}, {12, 0x17}, {12, 0x1C}, {12, 0x1D}, {12, 0x1E}, {12, 0x1F},
}

// makeupCode returns the make-up code for the given run length, which
// must be a positive multiple of makeupStride in [64, 2560].
func makeupCode(c color, length int) (code, bool) {
	if length < makeupStride || length > maxMakeup || length%makeupStride != 0 {
		return code{}, false
	}
	if length >= 1792 {
		return commonMakeup[(length-1792)/makeupStride], true
	}
	idx := length/makeupStride - 1
	if c == white {
		return whiteMakeup[idx], true
	}
	return blackMakeup[idx], true
}

// terminatingCode returns the terminating code for a run length in [0,63].
func terminatingCode(c color, length int) (code, bool) {
	if length < 0 || length > 63 {
		return code{}, false
	}
	if c == white {
		return whiteTerm[length], true
	}
	return blackTerm[length], true
}

// appendRunCodes appends the code sequence that encodes a run of length
// pixels of color c to codes, applying the decomposition rule of
// spec.md §4.1: zero or more make-up codes (largest-first, repeating the
// 2560 code for lengths beyond the table) followed by exactly one
// terminating code. It returns an error only if a legal (color, length)
// pair is missing from the tables — a programmer error per spec.md §7.
func appendRunCodes(codes []code, c color, length int) ([]code, error) {
	if length < 0 {
		return nil, ErrInternalInvariant
	}
	for length > maxMakeup {
		mk, ok := makeupCode(c, maxMakeup)
		if !ok {
			return nil, ErrInternalInvariant
		}
		codes = append(codes, mk)
		length -= maxMakeup
	}
	if length >= makeupStride {
		m := (length / makeupStride) * makeupStride
		mk, ok := makeupCode(c, m)
		if !ok {
			return nil, ErrInternalInvariant
		}
		codes = append(codes, mk)
		length -= m
	}
	term, ok := terminatingCode(c, length)
	if !ok {
		return nil, ErrInternalInvariant
	}
	return append(codes, term), nil
}
