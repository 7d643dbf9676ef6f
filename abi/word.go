package abi

import (
	"math/big"

	"github.com/mt-akar/web3util/hex"
)

// WordSize is the number of bytes in a word, the unit of the wire format.
const WordSize = 32

var zeroWord = make([]byte, WordSize)

// uintWord returns n as a big-endian word.
func uintWord(n *big.Int) ([]byte, error) {
	if n.BitLen() > WordSize*8 {
		return nil, EncodingOverflowError.New(
			"%s needs %d bits, a word holds %d",
			hex.IntToString(n, true),
			n.BitLen(),
			WordSize*8,
		)
	}

	return n.FillBytes(make([]byte, WordSize)), nil
}

// intWord returns a non-negative length or offset as a word.
func intWord(n int) []byte {
	w, _ := uintWord(big.NewInt(int64(n)))
	return w
}

func boolWord(b bool) []byte {
	w := make([]byte, WordSize)
	if b {
		w[WordSize-1] = 1
	}

	return w
}

// packed returns a length word followed by data, zero padded on the right up
// to a word boundary.
func packed(data []byte) []byte {
	size := (len(data) + WordSize - 1) / WordSize * WordSize

	out := make([]byte, WordSize+size)
	copy(out, intWord(len(data)))
	copy(out[WordSize:], data)

	return out
}
