package hex

import "golang.org/x/crypto/sha3"

// Keccak256 returns the legacy Keccak-256 digest of the concatenated data, as
// used by Ethereum.
func Keccak256(data ...[]byte) []byte {
	d := sha3.NewLegacyKeccak256()
	for _, b := range data {
		_, _ = d.Write(b)
	}

	return d.Sum(nil)
}

// Keccak256 returns the digest of the byte view as a 32 byte Hex.
func (h *Hex) Keccak256() *Hex {
	return FromBytes(Keccak256(h.Bytes()))
}
