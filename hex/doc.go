// Package hex provides Hex, a non-negative integer of arbitrary size that can
// be read as a big.Int, as a 0x-prefixed hex string and as big-endian bytes.
//
// Ethereum JSON-RPC APIs exchange numbers, hashes and addresses as hex text.
// Hex accepts any of the three forms and converts lazily:
//
//	h, _ := hex.FromString("0x0014")
//	h.Int()       // 20
//	h.HexString() // "0x0014"
//	h.Bytes()     // []byte{0x00, 0x14}
//	h.Equal(20)   // true
//
// Leading zeros given by the caller stay in the view they were given in and
// never affect comparison. Values built from integers are minimal: zero is
// "0x0" and a single zero byte.
//
// Odd length strings are valid. The first digit alone becomes the first
// byte, so "0x11d" is []byte{0x01, 0x1d}.
package hex
