package hex

import (
	"fmt"
	"io"
)

// String returns the string view.
func (h *Hex) String() string {
	if h == nil {
		return "<nil>"
	}

	return h.HexString()
}

// Format implements fmt.Formatter. The numeric verbs (b, o, O, d, x, X) are
// handed to the big.Int formatter, s and v print the string view and q quotes
// it.
func (h *Hex) Format(f fmt.State, verb rune) {
	switch verb {
	case 'b', 'o', 'O', 'd', 'x', 'X':
		if h == nil {
			_, _ = io.WriteString(f, "<nil>")
			return
		}
		h.Int().Format(f, verb)
	case 's', 'v':
		_, _ = io.WriteString(f, h.String())
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", h.String())
	default:
		_, _ = fmt.Fprintf(f, "%%!%c(hex.Hex=%s)", verb, h.String())
	}
}

// MarshalText implements encoding.TextMarshaler.
func (h *Hex) MarshalText() ([]byte, error) {
	return []byte(h.HexString()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It is the only way to
// change a Hex in place and must not race with readers.
func (h *Hex) UnmarshalText(text []byte) error {
	o, err := FromString(string(text))
	if err != nil {
		return err
	}

	h.set(o)

	return nil
}
