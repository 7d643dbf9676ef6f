package abi

// DefaultMaxDepth is the nesting limit used when Config.MaxDepth is zero.
const DefaultMaxDepth = 32

// DefaultElementsPerWord bounds the fields a decoder may read when
// Config.MaxElements is zero: this many per word of input.
const DefaultElementsPerWord = 2

// Config holds encoder and decoder options. The zero value is ready to use.
type Config struct {
	// MaxDepth bounds how deeply tuples and arrays may nest, counting the
	// top-level tuple as depth 1.
	MaxDepth int

	// MaxElements bounds the number of fields, array elements included, one
	// Decode call may read. Each field of a well formed input has its own
	// head word, so only inputs whose offsets point into shared regions come
	// near the default.
	MaxElements int
}

func (c Config) maxDepth() int {
	if c.MaxDepth <= 0 {
		return DefaultMaxDepth
	}

	return c.MaxDepth
}

func (c Config) maxElements(size int) int {
	if c.MaxElements <= 0 {
		return size / WordSize * DefaultElementsPerWord
	}

	return c.MaxElements
}
