// Package abi encodes and decodes contract call data in the Ethereum ABI
// head/tail layout.
//
// Words
//
// The wire format is a sequence of 32 byte words. Unsigned integers are
// big-endian and left padded with zeros. Booleans are the integers 0 and 1.
// Strings and byte sequences are a length word (the byte count) followed by
// the content, right padded with zeros up to the next word boundary.
//
// Head and Tail
//
// A tuple of N values is encoded as N head words followed by a tail. Static
// values (unsigned integers, booleans, nil) sit in their head word. Dynamic
// values (strings, byte sequences, tuples and arrays) are appended to the
// tail, and their head word holds the byte offset of their content, measured
// from the first head word of the tuple:
//
//	(8, "Chain Gate is awesome!", true)
//
//	| word | content                         | meaning                    |
//	|------|---------------------------------|----------------------------|
//	| 0    | 0x00..08                        | head: 8                    |
//	| 1    | 0x00..60                        | head: offset 96 to word 3  |
//	| 2    | 0x00..01                        | head: true                 |
//	| 3    | 0x00..16                        | tail: length 22            |
//	| 4    | 0x436861696e2047617465...0000   | tail: text, zero padded    |
//	|------|---------------------------------|----------------------------|
//
// A nested tuple is a complete tuple encoding of its own, so offsets inside it
// are measured from its own first head word. An array is a length word (the
// element count) followed by the tuple encoding of its elements; offsets in
// that tuple are measured from the word right after the length.
//
// Selectors
//
// Calls are usually prefixed with a four byte selector, the first bytes of
// the Keccak-256 digest of the function signature (see Selector). The prefix
// is written verbatim and takes no part in offsets.
//
// Decoding
//
// The wire format does not describe itself, so the decoder is given the shape
// of the tuple as a list of Types. DecodeInto derives the shape from the Go
// types of its targets:
//
//	var (
//		number *hex.Hex
//		name   string
//		flag   bool
//	)
//	err := abi.DecodeInto(data, &number, &name, &flag)
//
// Offsets and lengths are checked against the input, and any that run past its
// end fail with TruncatedDataError.
package abi
