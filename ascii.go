package weburl

// ASCII byte helpers shared by the percent-encoding engine, the host
// parser and the path walker. Kept free of allocation: everything here is
// table lookups over [256]bool/[16]byte or switch-based range checks.

const upperHex = "0123456789ABCDEF"

// isHexByte reports whether b is an ASCII hex digit.
func isHexByte(b byte) bool {
	switch {
	case '0' <= b && b <= '9':
		return true
	case 'a' <= b && b <= 'f':
		return true
	case 'A' <= b && b <= 'F':
		return true
	}
	return false
}

// unhex returns the numeric value of an ASCII hex digit. The caller must
// have already verified isHexByte(b).
func unhex(b byte) byte {
	switch {
	case '0' <= b && b <= '9':
		return b - '0'
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10
	}
	return 0
}

func isASCIIAlpha(b byte) bool {
	return 'A' <= b && b <= 'Z' || 'a' <= b && b <= 'z'
}

func isASCIIDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

func isASCIIAlphanumeric(b byte) bool {
	return isASCIIAlpha(b) || isASCIIDigit(b)
}

// isC0OrSpace reports whether b is a C0 control code point or space, the
// trim set applied to both ends of raw input before parsing (§6.1).
func isC0OrSpace(b byte) bool {
	return b <= 0x20
}

// isTabOrNewline reports whether b is one of the bytes stripped from
// inside (non-opaque) input during parsing (§6.1).
func isTabOrNewline(b byte) bool {
	return b == '\t' || b == '\n' || b == '\r'
}

func toLowerASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// lowerASCII returns a lower-cased copy of s. It never allocates when s is
// already lower-case.
func lowerASCII(s []byte) []byte {
	for i, b := range s {
		if 'A' <= b && b <= 'Z' {
			out := make([]byte, len(s))
			copy(out, s[:i])
			for j := i; j < len(s); j++ {
				out[j] = toLowerASCII(s[j])
			}
			return out
		}
	}
	return s
}

// forbiddenHostCodePoint is the set named in the GLOSSARY:
// {NUL, TAB, LF, CR, SP, #, %, /, :, <, >, ?, @, [, \, ], ^}.
var forbiddenHostCodePoint = [256]bool{
	0x00: true, '\t': true, '\n': true, '\r': true, ' ': true,
	'#': true, '%': true, '/': true, ':': true, '<': true, '>': true,
	'?': true, '@': true, '[': true, '\\': true, ']': true, '^': true,
}

// forbiddenDomainCodePoint additionally forbids the bytes the WHATWG
// standard disallows in domain labels beyond the generic forbidden set.
var forbiddenDomainCodePoint = [256]bool{}

func init() {
	forbiddenDomainCodePoint = forbiddenHostCodePoint
	for _, b := range []byte{0x00, '\t', '\n', '\r', ' ', '#', '/', ':', '<', '>', '?', '@', '[', '\\', ']', '^', '|'} {
		forbiddenDomainCodePoint[b] = true
	}
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
