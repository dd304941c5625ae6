package weburl

import "bytes"

// Host is the exposed host variant, spec.md §6.4. Exactly one of the
// fields is meaningful, selected by Kind.
type Host struct {
	Kind HostKind

	ipv4Addr   uint32   // HostIPv4
	ipv6Pieces [8]uint16 // HostIPv6, see IPv6Pieces()/IPv6Bytes()
	text       []byte    // HostDomain (lower-cased) / HostOpaque (pct-encoded)
}

// IPv4Addr returns the host-order 32-bit address. Valid only for HostIPv4.
func (h Host) IPv4Addr() uint32 { return h.ipv4Addr }

// IPv6Pieces returns the eight 16-bit pieces in host order (numeric
// value per piece). Valid only for HostIPv6.
func (h Host) IPv6Pieces() [8]uint16 { return h.ipv6Pieces }

// IPv6Bytes returns the 16-byte network-order (big-endian) representation.
func (h Host) IPv6Bytes() [16]byte { return ipv6ToBytes(h.ipv6Pieces) }

// String returns the host as it would be serialized into a URL,
// including surrounding "[" "]" for IPv6.
func (h Host) String() string {
	switch h.Kind {
	case HostEmpty, HostNil:
		return ""
	case HostDomain, HostOpaque:
		return string(h.text)
	case HostIPv4:
		return formatIPv4(h.ipv4Addr)
	case HostIPv6:
		return "[" + formatIPv6(h.ipv6Pieces) + "]"
	default:
		return ""
	}
}

// parseHost implements the dispatch rules of spec.md §4.2. An IPv6 host
// is passed with its surrounding "[" "]" still attached; they are checked
// and stripped here.
func parseHost(input []byte, kind SchemeKind) (Host, error) {
	if len(input) == 0 {
		if kind.IsSpecial() && kind != SchemeFile {
			return Host{}, errEmptyHostDisallowed
		}
		return Host{Kind: HostEmpty}, nil
	}

	if input[0] == '[' {
		if input[len(input)-1] != ']' {
			return Host{}, errBracketMismatch
		}
		pieces, err := parseIPv6(input[1 : len(input)-1])
		if err != nil {
			return Host{}, err
		}
		return Host{Kind: HostIPv6, ipv6Pieces: pieces}, nil
	}
	if bytes.IndexByte(input, '[') >= 0 || bytes.IndexByte(input, ']') >= 0 {
		return Host{}, errForbiddenHostCodePoint
	}

	if kind.IsSpecial() {
		return parseSpecialHost(input)
	}
	return parseOpaqueHost(input)
}

func parseSpecialHost(input []byte) (Host, error) {
	if !isASCII(input) {
		return Host{}, errNonASCIIHostname
	}
	for _, b := range input {
		if forbiddenHostCodePoint[b] {
			return Host{}, errForbiddenHostCodePoint
		}
	}

	lowered := lowerASCII(input)
	if looksLikeIPv4(lowered) {
		if addr, err := parseIPv4(lowered); err == nil {
			return Host{Kind: HostIPv4, ipv4Addr: addr}, nil
		}
		// A candidate that does not parse entirely as IPv4 falls through
		// to domain classification.
	}

	domain, err := parseDomain(lowered)
	if err != nil {
		return Host{}, err
	}
	return Host{Kind: HostDomain, text: domain}, nil
}

func parseOpaqueHost(input []byte) (Host, error) {
	for _, b := range input {
		if b != '%' && forbiddenHostCodePoint[b] {
			return Host{}, errForbiddenHostCodePoint
		}
	}
	encoded := PercentEncode(nil, input, C0Control)
	return Host{Kind: HostOpaque, text: encoded}, nil
}
