package hex

import (
	stdhex "encoding/hex"
	"math/big"
	"strings"
)

// IntToBytes returns the big-endian unsigned bytes of n. The sign of n is
// ignored.
func IntToBytes(n *big.Int) []byte {
	data := n.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we desire zero to
	// be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data
}

// BytesToInt interprets data as a big-endian unsigned integer.
func BytesToInt(data []byte) *big.Int {
	return new(big.Int).SetBytes(data)
}

// StringToBytes converts hex digits, with or without the 0x prefix, into
// big-endian bytes. Two digits make one byte; with an odd digit count the
// first digit alone makes byte 0. When trimZeros is set leading zero digits
// are dropped first, keeping at least one.
func StringToBytes(s string, trimZeros bool) (data []byte, err error) {
	digits := strings.TrimPrefix(s, "0x")
	if trimZeros {
		digits = trimZeroDigits(digits)
	}

	if digits == "" {
		return []byte{0}, nil
	}

	if len(digits)%2 == 1 {
		digits = "0" + digits
	}

	data, err = stdhex.DecodeString(digits)
	if err != nil {
		return nil, FormatError.New("invalid hex digits %q: %v", s, err)
	}

	return data, nil
}

// BytesToString converts data into lowercase hex digits, two per byte. The 0x
// prefix is added when prefix is set. When trimZero is set leading zero digits
// are dropped, keeping at least one.
func BytesToString(data []byte, prefix, trimZero bool) string {
	digits := stdhex.EncodeToString(data)
	if trimZero {
		digits = trimZeroDigits(digits)
	}

	if prefix {
		return "0x" + digits
	}

	return digits
}

// StringToInt parses hex digits, with or without the 0x prefix, into an
// unsigned integer.
func StringToInt(s string) (*big.Int, error) {
	data, err := StringToBytes(s, false)
	if err != nil {
		return nil, err
	}

	return BytesToInt(data), nil
}

// IntToString returns the minimal hex digits of n ("0" for zero).
func IntToString(n *big.Int, prefix bool) string {
	return BytesToString(IntToBytes(n), prefix, true)
}

func trimZeroDigits(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}

	return trimmed
}
