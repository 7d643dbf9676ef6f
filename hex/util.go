package hex

import "strings"

func splitPrefix(s string) (prefix, digits string) {
	if strings.HasPrefix(s, "0x") {
		return "0x", s[2:]
	}

	return "", s
}

// RemoveLeadingZeros drops leading zero digits from s, keeping at least one
// digit and the 0x prefix if present.
func RemoveLeadingZeros(s string) string {
	prefix, digits := splitPrefix(s)
	if len(digits) <= 1 {
		return s
	}

	return prefix + trimZeroDigits(digits)
}

// AppendLeadingZeros pads s with zero digits up to length digits. Longer
// strings are returned unchanged.
func AppendLeadingZeros(s string, length int) string {
	prefix, digits := splitPrefix(s)
	if len(digits) >= length {
		return s
	}

	return prefix + strings.Repeat("0", length-len(digits)) + digits
}

// SetLength pads s with zero digits, or cuts digits from the front, so that it
// has exactly length digits.
func SetLength(s string, length int) string {
	prefix, digits := splitPrefix(s)
	if len(digits) > length {
		return prefix + digits[len(digits)-length:]
	}

	return AppendLeadingZeros(s, length)
}
