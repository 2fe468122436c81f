// Package base64 implements constant-time Base64 encoding and
// decoding as specified by RFC 4648.
//
// Only the standard alphabet is provided, padded (StdEncoding)
// and unpadded (RawStdEncoding). The package exists to encode
// secret credential material, so neither encoding nor decoding
// performs a data-dependent table load or branch.
//
// Comparison to encoding/base64
//
// This package is almost, but not exactly a drop-in replacement
// for encoding/base64.
//
// Unlike encoding/base64, this package rejects the newline
// characters '\r' and '\n'.
//
// Unlike encoding/base64, this package does not report the
// offset of invalid Base64-encoded data. For example:
//
//    src := []byte("aGVsb?8=")
//    StdEncoding.Decode(dst, src) // encoding/base64: 3, CorruptInputError(5)
//                                 // this package:    5, ErrCorrupt
//
// Reporting the offset would require control flow that depends
// on the input.
package base64
