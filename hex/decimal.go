package hex

import (
	"math/big"
	"strings"
)

// Decimal renders the integer as a base 10 fixed point number with scale
// fractional digits, e.g. wei as ether with a scale of 18.
func (h *Hex) Decimal(scale uint) string {
	digits := h.Int().String()
	if scale == 0 {
		return digits
	}

	s := int(scale)
	if len(digits) <= s {
		digits = strings.Repeat("0", s-len(digits)+1) + digits
	}

	point := len(digits) - s

	return digits[:point] + "." + digits[point:]
}

// ParseDecimal parses a base 10 fixed point number and returns it scaled up
// by 10^scale. The text may have at most scale fractional digits.
func ParseDecimal(text string, scale uint) (h *Hex, err error) {
	if strings.HasPrefix(text, "-") {
		return nil, NegativeValueError.New("%q is negative", text)
	}

	whole, frac, _ := strings.Cut(text, ".")
	if len(frac) > int(scale) {
		return nil, FormatError.New(
			"%q has %d fractional digits, scale is %d",
			text,
			len(frac),
			scale,
		)
	}

	if whole == "" && frac == "" {
		return nil, FormatError.New("invalid decimal %q", text)
	}

	if whole == "" {
		whole = "0"
	}

	digits := whole + frac + strings.Repeat("0", int(scale)-len(frac))
	if strings.Trim(digits, "0123456789") != "" {
		return nil, FormatError.New("invalid decimal %q", text)
	}

	n, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, FormatError.New("invalid decimal %q", text)
	}

	return FromBigInt(n)
}
