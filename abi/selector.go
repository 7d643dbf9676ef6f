package abi

import "github.com/mt-akar/web3util/hex"

// SelectorSize is the number of bytes in a function selector.
const SelectorSize = 4

// Selector returns the first four bytes of the Keccak-256 digest of a
// function signature such as "transfer(address,uint256)".
func Selector(signature string) []byte {
	return hex.Keccak256([]byte(signature))[:SelectorSize]
}

// Signature returns the canonical signature of a function, e.g.
// Signature("transfer", Address, Uint) is "transfer(address,uint256)".
func Signature(name string, params ...Type) string {
	return name + TupleOf(params...).String()
}
