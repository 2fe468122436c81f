package base64

import (
	"crypto/subtle"
	"encoding/base64"
	"errors"
)

const (
	StdPadding = base64.StdPadding // standard padding '='
	NoPadding  = base64.NoPadding  // no padding
)

// ErrCorrupt is returned when the Base64-encoded input is
// incorrect.
var ErrCorrupt = errors.New("base64: input is corrupt")

// StdEncoding is the standard Base64 encoding.
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    +/
//
var StdEncoding = &Encoding{
	padChar: StdPadding,
}

// RawStdEncoding is the unpadded standard Base64 encoding.
//
// It uses the same table as StdEncoding.
var RawStdEncoding = &Encoding{
	padChar: NoPadding,
}

// Encoding is a particular Base64 encoding.
//
// See the package docs for a comparison with encoding/base64.
type Encoding struct {
	padChar rune
	strict  bool
}

// Strict returns an identical Encoding that operates in "strict"
// mode where all padding bits MUST be zero (see section 3.5 of
// RFC 4648 and golang.org/issues/15656).
func (e Encoding) Strict() *Encoding {
	e.strict = true
	return &e
}

// EncodedLen returns the size in bytes of the Base64 encoding
// of n source bytes.
func (e *Encoding) EncodedLen(n int) int {
	if e.padChar == NoPadding {
		return (n*8 + 5) / 6
	}
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum length in bytes of n bytes of
// Base64-encoded data.
func (e *Encoding) DecodedLen(n int) int {
	if e.padChar == NoPadding {
		return n * 6 / 8
	}
	return n / 4 * 3
}

// Encode encodes src, writing EncodedLen(len(src)) bytes to dst.
//
// Encode runs in constant time for the length of src.
func (e *Encoding) Encode(dst, src []byte) {
	// Convert 3 -> 4.
	for len(src) >= 3 {
		v := uint(src[0])<<16 | uint(src[1])<<8 | uint(src[2])
		dst[0] = lookup(v >> 18 & 0x3f)
		dst[1] = lookup(v >> 12 & 0x3f)
		dst[2] = lookup(v >> 6 & 0x3f)
		dst[3] = lookup(v & 0x3f)
		src = src[3:]
		dst = dst[4:]
	}

	// Final 1- or 2-byte group: missing bytes are zero and the
	// unused trailing symbols become padding.
	switch len(src) {
	case 2:
		v := uint(src[0])<<16 | uint(src[1])<<8
		dst[2] = lookup(v >> 6 & 0x3f)
		dst[1] = lookup(v >> 12 & 0x3f)
		dst[0] = lookup(v >> 18 & 0x3f)
		if e.padChar != NoPadding {
			dst[3] = byte(e.padChar)
		}
	case 1:
		v := uint(src[0]) << 16
		dst[1] = lookup(v >> 12 & 0x3f)
		dst[0] = lookup(v >> 18 & 0x3f)
		if e.padChar != NoPadding {
			dst[3] = byte(e.padChar)
			dst[2] = byte(e.padChar)
		}
	}
}

// EncodeToString encodes src.
//
// EncodeToString runs in constant time for the length of src.
func (e *Encoding) EncodeToString(src []byte) string {
	dst := make([]byte, e.EncodedLen(len(src)))
	e.Encode(dst, src)
	return string(dst)
}

// Decode decodes src, writing at most DecodedLen(len(src)) bytes
// to dst.
//
// It returns the total number of bytes written to dst, even when
// src contains invalid Base64. If src contains invalid Base64,
// Decode returns ErrCorrupt.
//
// Decode runs in constant time for the length of src.
//
// See the package docs for a comparison with encoding/base64.
func (e *Encoding) Decode(dst, src []byte) (n int, err error) {
	if len(src) == 0 {
		return 0, nil
	}
	switch len(src) % 4 {
	case 0:
		// OK
	case 2, 3:
		if e.padChar != NoPadding {
			// Padded Base64 is always a multiple of 4.
			return 0, ErrCorrupt
		}
	default:
		// Even unpadded Base64 only has a 2-3 character
		// partial block.
		return 0, ErrCorrupt
	}

	if e.padChar != NoPadding {
		var t int
		t += subtle.ConstantTimeByteEq(src[len(src)-1], byte(e.padChar))
		t += subtle.ConstantTimeByteEq(src[len(src)-2], byte(e.padChar))
		src = src[:len(src)-t]
	}

	// Convert 4 -> 3, accumulating failures so that control flow
	// does not depend on the contents of src.
	var failed byte
	for len(src) >= 4 {
		c0 := revLookup(uint(src[0]))
		c1 := revLookup(uint(src[1]))
		c2 := revLookup(uint(src[2]))
		c3 := revLookup(uint(src[3]))

		dst[n+0] = byte(c0<<2 | c1>>4)
		dst[n+1] = byte(c1<<4 | c2>>2)
		dst[n+2] = byte(c2<<6 | c3)

		failed |= c0 | c1 | c2 | c3

		src = src[4:]
		n += 3
	}

	switch len(src) {
	case 3:
		c0 := revLookup(uint(src[0]))
		c1 := revLookup(uint(src[1]))
		c2 := revLookup(uint(src[2]))

		dst[n+0] = byte(c0<<2 | c1>>4)
		dst[n+1] = byte(c1<<4 | c2>>2)

		failed |= c0 | c1 | c2
		if e.strict {
			// Fail if any bits in [2:0] are non-zero.
			failed |= byte((0 - uint(c2&0x3)) >> 8)
		}
		n += 2
	case 2:
		c0 := revLookup(uint(src[0]))
		c1 := revLookup(uint(src[1]))

		dst[n+0] = byte(c0<<2 | c1>>4)

		failed |= c0 | c1
		if e.strict {
			// Fail if any bits in [4:0] are non-zero.
			failed |= byte((0 - uint(c1&0xf)) >> 8)
		}
		n++
	case 0:
		// OK
	default:
		failed |= 0xff
	}

	if failed&0xff == 0xff {
		err = ErrCorrupt
	}
	return
}

// DecodeString decodes src.
//
// It returns all bytes written to dst, even when src contains
// invalid Base64. If src contains invalid Base64, DecodeString
// returns ErrCorrupt.
//
// DecodeString runs in constant time for the length of src.
//
// See the package docs for a comparison with encoding/base64.
func (e *Encoding) DecodeString(src string) ([]byte, error) {
	dst := make([]byte, e.DecodedLen(len(src)))
	n, err := e.Decode(dst, []byte(src))
	return dst[:n], err
}

// lookup converts the 6-bit value c to its corresponding Base64
// character.
//
// c must be in [0, 63]. It compiles to straight-line arithmetic
// with no table load, so the value never reaches a data-dependent
// memory access.
//
// See http://0x80.pl/notesen/2016-01-12-sse-base64-encoding.html
func lookup(c uint) byte {
	// Start with an initial guess that c is in [0, 25], making
	// the shift 'A' (65). Each time c clears another alphabet
	// boundary, correct the shift:
	//    'a' - (26 + 65) =   6
	//    '0' - (52 + 71) = -75
	//    '+' - (62 -  4) = -15
	//    '/' - (63 - 19) =  +3
	s := uint('A')
	s += (26 - c - 1) >> 8 & 6
	s -= (52 - c - 1) >> 8 & 75
	s -= (62 - c - 1) >> 8 & 15
	s += (63 - c - 1) >> 8 & 3
	return byte(c + s)
}

// revLookup converts the Base64 character c to its 6-bit binary
// value.
//
// If the character is invalid revLookup returns 0xff.
func revLookup(c uint) (r byte) {
	// NB. This function is written like this so that the
	// compiler will inline it.

	// switch {
	// case c >= 'A' && c <= 'Z':
	//     s = -65
	// case c >= 'a' && c <= 'z':
	//     s = -71
	// case c >= '0' && c <= '9':
	//     s = 4
	// case c == '+':
	//     s = 19
	// case c == '/':
	//     s = 16
	// }
	s := ((((64 - c) & (c - 91)) >> 8) & 191) ^
		((((96 - c) & (c - 123)) >> 8) & 185) ^
		((((47 - c) & (c - 58)) >> 8) & 4) ^
		((((42 - c) & (c - 44)) >> 8) & 19) ^
		((((46 - c) & (c - 48)) >> 8) & 16)
	// If s == 0 then the input is corrupt.
	//
	// Since s is one of {0, 191, 185, 4, 19, 16}, shift off bits
	// [8:0] (which are allowed to be non-zero) and check [16:8].
	return byte((s+c)&0x3f | ((((0 - s) >> 8) & 0xff) ^ 0xff))
}
