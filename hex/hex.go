package hex

import (
	"math/big"
	"regexp"
	"strings"
	"sync"
)

var pattern = regexp.MustCompile(`^(0x)?[0-9a-fA-F]*$`)

// Hex is a non-negative integer of arbitrary size with three views: the
// integer itself, a lowercase 0x-prefixed big-endian hex string and a
// big-endian byte slice.
//
// One view is set on creation, the others are derived on first use and
// cached. A Hex built from an integer has no leading zeros in its string and
// byte views. A Hex built from a string or bytes keeps the caller's leading
// zeros in that view. Equality and ordering only look at the integer.
//
// A Hex must not be copied after first use. The zero value is zero.
type Hex struct {
	mu sync.Mutex

	i *big.Int
	s string
	b []byte
}

// FromBigInt returns a Hex holding n. It fails if n is negative.
func FromBigInt(n *big.Int) (*Hex, error) {
	if n == nil {
		return nil, Error.New("nil integer")
	}

	if n.Sign() < 0 {
		return nil, NegativeValueError.New("%s is negative", n)
	}

	return &Hex{i: new(big.Int).Set(n)}, nil
}

// FromInt64 returns a Hex holding n. It fails if n is negative.
func FromInt64(n int64) (*Hex, error) {
	return FromBigInt(big.NewInt(n))
}

// FromUint64 returns a Hex holding n.
func FromUint64(n uint64) *Hex {
	return &Hex{i: new(big.Int).SetUint64(n)}
}

// FromString parses hex digits with an optional 0x prefix. Letters may be of
// either case. "0x" is zero, the empty string is not valid.
func FromString(s string) (*Hex, error) {
	if s == "" || !pattern.MatchString(s) {
		return nil, FormatError.New("invalid hex string %q", s)
	}

	digits := strings.TrimPrefix(s, "0x")
	if digits == "" {
		digits = "0"
	}

	return &Hex{s: "0x" + strings.ToLower(digits)}, nil
}

// FromBytes returns a Hex holding the big-endian unsigned integer in data.
// Leading zero bytes are kept in the byte view. An empty slice is zero.
func FromBytes(data []byte) *Hex {
	if len(data) == 0 {
		return &Hex{b: []byte{0}}
	}

	return &Hex{b: append([]byte(nil), data...)}
}

// From converts any of the supported representations into a Hex: *Hex,
// *big.Int, big.Int, string, []byte and the builtin integer types.
func From(v any) (*Hex, error) {
	switch v := v.(type) {
	case *Hex:
		if v == nil {
			return nil, Error.New("nil hex")
		}
		return v, nil
	case *big.Int:
		return FromBigInt(v)
	case big.Int:
		return FromBigInt(&v)
	case string:
		return FromString(v)
	case []byte:
		return FromBytes(v), nil
	case int:
		return FromInt64(int64(v))
	case int8:
		return FromInt64(int64(v))
	case int16:
		return FromInt64(int64(v))
	case int32:
		return FromInt64(int64(v))
	case int64:
		return FromInt64(v)
	case uint:
		return FromUint64(uint64(v)), nil
	case uint8:
		return FromUint64(uint64(v)), nil
	case uint16:
		return FromUint64(uint64(v)), nil
	case uint32:
		return FromUint64(uint64(v)), nil
	case uint64:
		return FromUint64(v), nil
	}

	return nil, Error.New("cannot convert %T to hex", v)
}

// MustFrom is like From but panics on error.
func MustFrom(v any) *Hex {
	h, err := From(v)
	if err != nil {
		panic(err)
	}

	return h
}

// Int returns a copy of the integer view.
func (h *Hex) Int() *big.Int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return new(big.Int).Set(h.integer())
}

// HexString returns the string view.
func (h *Hex) HexString() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.text()
}

// Bytes returns a copy of the byte view.
func (h *Hex) Bytes() []byte {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]byte(nil), h.bytes()...)
}

// WithInt returns a new Hex whose integer view is n.
func (h *Hex) WithInt(n *big.Int) (*Hex, error) {
	return FromBigInt(n)
}

// WithString returns a new Hex whose string view is s.
func (h *Hex) WithString(s string) (*Hex, error) {
	return FromString(s)
}

// WithBytes returns a new Hex whose byte view is data.
func (h *Hex) WithBytes(data []byte) *Hex {
	return FromBytes(data)
}

// set replaces every view with the ones of o.
func (h *Hex) set(o *Hex) {
	o.mu.Lock()
	i, s, b := o.i, o.s, o.b
	o.mu.Unlock()

	h.mu.Lock()
	defer h.mu.Unlock()

	h.i, h.s, h.b = i, s, b
}

// The view getters below expect h.mu to be held.

func (h *Hex) integer() *big.Int {
	if h.i != nil {
		return h.i
	}

	switch {
	case h.b != nil:
		h.i = BytesToInt(h.b)
	case h.s != "":
		h.i = BytesToInt(h.bytes())
	default:
		h.i = new(big.Int)
	}

	return h.i
}

func (h *Hex) text() string {
	if h.s != "" {
		return h.s
	}

	switch {
	case h.b != nil:
		h.s = BytesToString(h.b, true, true)
	case h.i != nil:
		h.s = IntToString(h.i, true)
	default:
		h.s = "0x0"
	}

	return h.s
}

func (h *Hex) bytes() []byte {
	if h.b != nil {
		return h.b
	}

	switch {
	case h.s != "":
		// The string was validated on creation.
		data, err := StringToBytes(h.s, false)
		if err != nil {
			panic(err)
		}
		h.b = data
	case h.i != nil:
		h.b = IntToBytes(h.i)
	default:
		h.b = []byte{0}
	}

	return h.b
}
