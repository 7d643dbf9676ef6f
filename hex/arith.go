package hex

import (
	"math"
	"math/big"
)

// Add returns h + o.
func (h *Hex) Add(o *Hex) (*Hex, error) {
	return FromBigInt(new(big.Int).Add(h.Int(), o.Int()))
}

// Sub returns h - o. It fails when o is larger than h.
func (h *Hex) Sub(o *Hex) (*Hex, error) {
	return FromBigInt(new(big.Int).Sub(h.Int(), o.Int()))
}

// Mul returns h * o.
func (h *Hex) Mul(o *Hex) (*Hex, error) {
	return FromBigInt(new(big.Int).Mul(h.Int(), o.Int()))
}

// Div returns h / o rounded down.
func (h *Hex) Div(o *Hex) (*Hex, error) {
	d := o.Int()
	if d.Sign() == 0 {
		return nil, DivisionByZeroError.New("%s / 0", h)
	}

	return FromBigInt(new(big.Int).Div(h.Int(), d))
}

// Mod returns h % o.
func (h *Hex) Mod(o *Hex) (*Hex, error) {
	d := o.Int()
	if d.Sign() == 0 {
		return nil, DivisionByZeroError.New("%s %% 0", h)
	}

	return FromBigInt(new(big.Int).Mod(h.Int(), d))
}

// Inc returns h + 1.
func (h *Hex) Inc() *Hex {
	n := h.Int()
	return &Hex{i: n.Add(n, big.NewInt(1))}
}

// Dec returns h - 1. It fails when h is zero.
func (h *Hex) Dec() (*Hex, error) {
	n := h.Int()
	return FromBigInt(n.Sub(n, big.NewInt(1)))
}

// Cmp compares the integer views of h and o and returns -1, 0 or +1.
func (h *Hex) Cmp(o *Hex) int {
	return h.Int().Cmp(o.Int())
}

// Compare converts v with From and compares it with h.
func (h *Hex) Compare(v any) (int, error) {
	o, err := From(v)
	if err != nil {
		return 0, err
	}

	return h.Cmp(o), nil
}

// Equal reports whether v, converted with From, has the same integer value as
// h. Values that cannot be converted are never equal.
func (h *Hex) Equal(v any) bool {
	c, err := h.Compare(v)
	return err == nil && c == 0
}

func (h *Hex) Lt(o *Hex) bool  { return h.Cmp(o) < 0 }
func (h *Hex) Lte(o *Hex) bool { return h.Cmp(o) <= 0 }
func (h *Hex) Gt(o *Hex) bool  { return h.Cmp(o) > 0 }
func (h *Hex) Gte(o *Hex) bool { return h.Cmp(o) >= 0 }

// Key returns the canonical string of the integer, suitable as a map key.
func (h *Hex) Key() string {
	return IntToString(h.Int(), true)
}

// Uint64 returns the integer as a uint64.
func (h *Hex) Uint64() (uint64, error) {
	return h.narrow("uint64", math.MaxUint64)
}

// Uint32 returns the integer as a uint32.
func (h *Hex) Uint32() (uint32, error) {
	n, err := h.narrow("uint32", math.MaxUint32)
	return uint32(n), err
}

// Uint16 returns the integer as a uint16.
func (h *Hex) Uint16() (uint16, error) {
	n, err := h.narrow("uint16", math.MaxUint16)
	return uint16(n), err
}

// Uint8 returns the integer as a uint8.
func (h *Hex) Uint8() (uint8, error) {
	n, err := h.narrow("uint8", math.MaxUint8)
	return uint8(n), err
}

// Uint returns the integer as a uint.
func (h *Hex) Uint() (uint, error) {
	n, err := h.narrow("uint", math.MaxUint)
	return uint(n), err
}

// Int64 returns the integer as an int64.
func (h *Hex) Int64() (int64, error) {
	n, err := h.narrow("int64", math.MaxInt64)
	return int64(n), err
}

// Int32 returns the integer as an int32.
func (h *Hex) Int32() (int32, error) {
	n, err := h.narrow("int32", math.MaxInt32)
	return int32(n), err
}

// Int16 returns the integer as an int16.
func (h *Hex) Int16() (int16, error) {
	n, err := h.narrow("int16", math.MaxInt16)
	return int16(n), err
}

// Int8 returns the integer as an int8.
func (h *Hex) Int8() (int8, error) {
	n, err := h.narrow("int8", math.MaxInt8)
	return int8(n), err
}

// IntValue returns the integer as an int.
func (h *Hex) IntValue() (int, error) {
	n, err := h.narrow("int", math.MaxInt)
	return int(n), err
}

func (h *Hex) narrow(name string, limit uint64) (uint64, error) {
	n := h.Int()
	if !n.IsUint64() || n.Uint64() > limit {
		return 0, OverflowError.New("%s does not fit in %s", h, name)
	}

	return n.Uint64(), nil
}
