package weburl

import "bytes"

// parseDomain implements spec.md §4.2.3: the ASCII-only domain subset.
// It rejects non-ASCII bytes and forbidden domain code points, lower-cases
// the result and validates xn-- label length; Punycode is not decoded.
func parseDomain(s []byte) ([]byte, error) {
	if !isASCII(s) {
		return nil, errNonASCIIHostname
	}
	for _, b := range s {
		if forbiddenDomainCodePoint[b] {
			return nil, errForbiddenHostCodePoint
		}
	}
	lowered := lowerASCII(s)

	for _, label := range bytes.Split(lowered, []byte(".")) {
		if bytes.HasPrefix(label, []byte("xn--")) && len(label) < 5 {
			return nil, errForbiddenHostCodePoint
		}
	}
	return lowered, nil
}
