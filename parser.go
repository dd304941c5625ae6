package weburl

import (
	"bytes"
	"strconv"
)

// Parse parses input as an absolute URL with no base. Grounded on
// terorie-oddb-go/fasturl's single-pass Parse entrypoint: the input is
// parsed into components once, then written out by assembleURL.
func Parse(input string) (*URL, error) {
	return parse(input, nil, nil)
}

// ParseRef parses input, resolving it against base when input carries no
// scheme of its own (a relative reference, spec.md §4.4's "relative"
// state family). base may be nil.
func ParseRef(input string, base *URL) (*URL, error) {
	return parse(input, base, nil)
}

// ParseWithValidation is ParseRef plus a sink for non-fatal validation
// diagnostics (spec.md §4.4 "validation errors vs fatal errors", §6.5).
func ParseWithValidation(input string, base *URL, sink ValidationSink) (*URL, error) {
	return parse(input, base, sink)
}

func parse(input string, base *URL, sink ValidationSink) (*URL, error) {
	filtered := trimAndFilter([]byte(input))
	if len(filtered) == 0 {
		if base != nil {
			return base.clone(), nil
		}
		return nil, errEmptyInput
	}

	var fragment []byte
	fragmentSet := false
	mainAndQuery := filtered
	if idx := bytes.IndexByte(filtered, '#'); idx >= 0 {
		fragment = filtered[idx+1:]
		fragmentSet = true
		mainAndQuery = filtered[:idx]
	}

	var query []byte
	querySet := false
	main := mainAndQuery
	if idx := bytes.IndexByte(mainAndQuery, '?'); idx >= 0 {
		query = mainAndQuery[idx+1:]
		querySet = true
		main = mainAndQuery[:idx]
	}

	var c components
	scheme, rest, hasScheme := splitScheme(main)
	if hasScheme {
		lowered := lowerASCII(scheme)
		c.scheme = string(lowered)
		c.schemeKind = schemeKindOf(lowered)
		if err := parseAfterScheme(rest, &c, sink); err != nil {
			return nil, err
		}
	} else {
		if base == nil {
			return nil, errRelativeNoBase
		}
		if err := parseRelative(main, &c, base); err != nil {
			return nil, err
		}
	}

	// Per RFC 3986 §5.3: the base's query carries over only when the
	// reference supplies no path of its own (main == "") and no query of
	// its own; the base's fragment never carries over, since T.fragment
	// is always exactly the reference's own fragment (absent if the
	// reference had none). An entirely empty reference does not reach
	// this point: it returns a copy of base, fragment included.
	if !hasScheme && len(main) == 0 && !querySet {
		if bq, ok := base.Query(); ok {
			c.query = bq
			c.querySet = true
		}
	}

	if querySet {
		set := Query
		if c.schemeKind.IsSpecial() {
			set = SpecialQuery
		}
		c.query = string(PercentEncode(nil, query, set))
		c.querySet = true
	}
	if fragmentSet {
		c.fragment = string(PercentEncode(nil, fragment, Fragment))
		c.fragmentSet = true
	}
	c.queryForm = len(c.query) <= 1

	return assembleURL(c), nil
}

// trimAndFilter strips leading/trailing C0-or-space and removes TAB/LF/CR
// bytes anywhere in the input (spec.md §6.1).
func trimAndFilter(s []byte) []byte {
	start := 0
	for start < len(s) && isC0OrSpace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isC0OrSpace(s[end-1]) {
		end--
	}
	s = s[start:end]

	hasJunk := false
	for _, b := range s {
		if isTabOrNewline(b) {
			hasJunk = true
			break
		}
	}
	if !hasJunk {
		return s
	}
	out := make([]byte, 0, len(s))
	for _, b := range s {
		if isTabOrNewline(b) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// splitScheme recognizes "scheme:" at the front of s per the scheme
// grammar (ASCII alpha, then alnum/"+"/"-"/"."). Returning ok=false lets
// the caller fall back to relative parsing, matching the WHATWG
// schemeStart-failure behavior instead of raising a fatal error.
func splitScheme(s []byte) (scheme []byte, rest []byte, ok bool) {
	if len(s) == 0 || !isASCIIAlpha(s[0]) {
		return nil, s, false
	}
	i := 1
	for i < len(s) {
		b := s[i]
		if isASCIIAlphanumeric(b) || b == '+' || b == '-' || b == '.' {
			i++
			continue
		}
		break
	}
	if i >= len(s) || s[i] != ':' {
		return nil, s, false
	}
	return s[:i], s[i+1:], true
}

// parseAfterScheme handles an absolute parse once the scheme has been
// consumed: dispatch to authority parsing for special schemes and for
// non-special schemes that open with "//", a bare absolute path for a
// single leading "/", or an opaque path otherwise (spec.md §4.4).
func parseAfterScheme(rest []byte, c *components, sink ValidationSink) error {
	kind := c.schemeKind
	isSpecial := kind.IsSpecial()

	if len(rest) == 0 {
		if isSpecial {
			return errEmptyHostDisallowed
		}
		c.hasOpaquePath = true
		return nil
	}

	if kind == SchemeFile {
		i := 0
		for i < len(rest) && (rest[i] == '/' || rest[i] == '\\') {
			i++
		}
		if i != 2 {
			report(sink, "missing-slashes", "special URL missing exactly two slashes after scheme", 0)
		}
		pathInput, err := parseFileHostAndPath(rest[i:], c)
		if err != nil {
			return err
		}
		c.path = buildHierarchicalPath(pathInput, kind, nil)
		return nil
	}

	if isSpecial {
		i := 0
		for i < len(rest) && (rest[i] == '/' || rest[i] == '\\') {
			i++
		}
		if i != 2 {
			report(sink, "missing-slashes", "special URL missing exactly two slashes after scheme", 0)
		}
		pathInput, err := parseAuthorityAndPath(rest[i:], kind, c)
		if err != nil {
			return err
		}
		c.path = buildHierarchicalPath(pathInput, kind, nil)
		return nil
	}

	if len(rest) >= 2 && rest[0] == '/' && rest[1] == '/' {
		pathInput, err := parseAuthorityAndPath(rest[2:], kind, c)
		if err != nil {
			return err
		}
		c.path = buildHierarchicalPath(pathInput, kind, nil)
		return nil
	}

	if rest[0] == '/' {
		c.path = buildHierarchicalPath(rest, kind, nil)
		return nil
	}

	c.hasOpaquePath = true
	c.opaquePath = string(PercentEncode(nil, rest, C0Control))
	return nil
}

// parseRelative handles a scheme-less reference against base, implementing
// the four cases of spec.md §4.4's relative-state family: authority
// override ("//..."), absolute-path override ("/..."), the untouched-copy
// case (empty), and path-merge (anything else).
func parseRelative(main []byte, c *components, base *URL) error {
	kind := base.SchemeKind()
	c.scheme = base.Scheme()
	c.schemeKind = kind
	isSpecial := kind.IsSpecial()

	if base.HasOpaquePath() {
		if len(main) != 0 {
			return errRelativeNoBase
		}
		c.hasOpaquePath = true
		c.opaquePath = base.Path()
		return nil
	}

	switch {
	case len(main) >= 2 && isPathSeparator(main[0], isSpecial) && isPathSeparator(main[1], isSpecial):
		i := 0
		for i < len(main) && isPathSeparator(main[i], isSpecial) {
			i++
		}
		var pathInput []byte
		var err error
		if kind == SchemeFile {
			pathInput, err = parseFileHostAndPath(main[i:], c)
		} else {
			pathInput, err = parseAuthorityAndPath(main[i:], kind, c)
		}
		if err != nil {
			return err
		}
		c.path = buildHierarchicalPath(pathInput, kind, nil)
		return nil

	case len(main) > 0 && isPathSeparator(main[0], isSpecial):
		copyAuthorityFrom(c, base)
		c.path = buildHierarchicalPath(main, kind, nil)
		return nil

	case len(main) == 0:
		copyAuthorityFrom(c, base)
		c.path = []byte(base.Path())
		return nil

	default:
		copyAuthorityFrom(c, base)
		c.path = buildHierarchicalPath(main, kind, base)
		return nil
	}
}

func copyAuthorityFrom(c *components, base *URL) {
	h := base.Host()
	if h.Kind == HostNil {
		return
	}
	c.hasAuthority = true
	c.host = h
	if u, ok := base.Username(); ok {
		c.username = u
	}
	if p, ok := base.Password(); ok {
		c.password = p
		c.passwordSet = true
	}
	if port, ok := base.Port(); ok {
		c.port = port
		c.portSet = true
	}
}

// parseAuthorityAndPath consumes rest as "[userinfo@]host[:port][pathTail]"
// populating c's authority fields and returning the remainder to hand to
// the path walker (spec.md §4.4 authority/host/port states).
func parseAuthorityAndPath(rest []byte, kind SchemeKind, c *components) (pathInput []byte, err error) {
	isSpecial := kind.IsSpecial()
	end := len(rest)
	for i := 0; i < len(rest); i++ {
		if rest[i] == '/' || (isSpecial && rest[i] == '\\') {
			end = i
			break
		}
	}
	authorityPart := rest[:end]
	pathInput = rest[end:]

	var hostport []byte
	if atIdx := bytes.LastIndexByte(authorityPart, '@'); atIdx >= 0 {
		userinfo := authorityPart[:atIdx]
		hostport = authorityPart[atIdx+1:]
		if colonIdx := bytes.IndexByte(userinfo, ':'); colonIdx >= 0 {
			c.username = string(PercentEncode(nil, userinfo[:colonIdx], UserInfo))
			pw := userinfo[colonIdx+1:]
			if len(pw) > 0 {
				c.password = string(PercentEncode(nil, pw, UserInfo))
				c.passwordSet = true
			}
		} else {
			c.username = string(PercentEncode(nil, userinfo, UserInfo))
		}
	} else {
		hostport = authorityPart
	}

	var hostBytes, portBytes []byte
	portPresent := false
	if len(hostport) > 0 && hostport[0] == '[' {
		closeIdx := bytes.IndexByte(hostport, ']')
		if closeIdx < 0 {
			return nil, errBracketMismatch
		}
		hostBytes = hostport[:closeIdx+1]
		remainder := hostport[closeIdx+1:]
		if len(remainder) > 0 {
			if remainder[0] != ':' {
				return nil, errForbiddenHostCodePoint
			}
			portBytes = remainder[1:]
			portPresent = true
		}
	} else if colonIdx := bytes.LastIndexByte(hostport, ':'); colonIdx >= 0 {
		hostBytes = hostport[:colonIdx]
		portBytes = hostport[colonIdx+1:]
		portPresent = true
	} else {
		hostBytes = hostport
	}

	host, err := parseHost(hostBytes, kind)
	if err != nil {
		return nil, err
	}
	c.host = host
	c.hasAuthority = true

	if portPresent && len(portBytes) > 0 {
		val, perr := parsePortDigits(portBytes)
		if perr != nil {
			return nil, errPortOutOfRange
		}
		if dp, ok := kind.DefaultPort(); !ok || val != dp {
			c.port = strconv.Itoa(val)
			c.portSet = true
		}
	}

	return pathInput, nil
}

// parseFileHostAndPath consumes rest as "host[pathTail]" for the file
// scheme (spec.md §4.4's fileHost state, distinct from authority/host/
// port). Unlike parseAuthorityAndPath, there is no userinfo or port
// grammar to strip: the cited WHATWG reference's stateFileHost
// accumulates host bytes only, never consuming "user:pass@" or ":port",
// matching structure.go's cannotHaveCredentialsOrPort() invariant that a
// file-scheme URL never carries credentials or a port.
func parseFileHostAndPath(rest []byte, c *components) (pathInput []byte, err error) {
	end := len(rest)
	for i := 0; i < len(rest); i++ {
		if rest[i] == '/' || rest[i] == '\\' {
			end = i
			break
		}
	}
	hostBytes := rest[:end]
	pathInput = rest[end:]

	host, err := parseHost(hostBytes, SchemeFile)
	if err != nil {
		return nil, err
	}
	c.host = host
	c.hasAuthority = true
	return pathInput, nil
}

func parsePortDigits(b []byte) (int, error) {
	if len(b) == 0 || len(b) > 5 {
		return 0, errPortOutOfRange
	}
	val := 0
	for _, d := range b {
		if !isASCIIDigit(d) {
			return 0, errPortOutOfRange
		}
		val = val*10 + int(d-'0')
		if val > 65535 {
			return 0, errPortOutOfRange
		}
	}
	return val, nil
}
