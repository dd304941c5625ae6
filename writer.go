package weburl

// pathBuilder accumulates the reverse-order callbacks from walkPath and
// assembles them into a forward "/"-separated path. It implements
// pathVisitor; sigil detection is done post-hoc on the assembled bytes
// rather than via visitPathSigil, since the ambiguity walkPath's callback
// was meant to flag ("does the result start with two slashes with no
// authority to disambiguate them") is far cheaper to check once on the
// finished buffer than to thread through the recursive walk.
type pathBuilder struct {
	entries []pathEntry
}

type pathEntryKind uint8

const (
	entryComponent pathEntryKind = iota
	entryEmptyRun
)

type pathEntry struct {
	kind pathEntryKind
	data []byte
	n    int
}

func (b *pathBuilder) visitInputPathComponent(component []byte, isLeadingWindowsDriveLetter bool) {
	var enc []byte
	if isLeadingWindowsDriveLetter {
		enc = append(enc, component[0], ':')
	} else {
		enc = PercentEncode(nil, component, Path)
	}
	b.entries = append(b.entries, pathEntry{kind: entryComponent, data: enc})
}

func (b *pathBuilder) visitBasePathComponent(component []byte) {
	b.entries = append(b.entries, pathEntry{kind: entryComponent, data: component})
}

func (b *pathBuilder) visitEmptyPathComponents(n int) {
	if n <= 0 {
		return
	}
	b.entries = append(b.entries, pathEntry{kind: entryEmptyRun, n: n})
}

func (b *pathBuilder) visitPathSigil() {}

// finish renders the accumulated entries into the forward-order path
// bytes, each component prefixed by a single '/'.
func (b *pathBuilder) finish() []byte {
	var out []byte
	for i := len(b.entries) - 1; i >= 0; i-- {
		e := b.entries[i]
		if e.kind == entryEmptyRun {
			for k := 0; k < e.n; k++ {
				out = append(out, '/')
			}
			continue
		}
		out = append(out, '/')
		out = append(out, e.data...)
	}
	return out
}

// buildHierarchicalPath drives walkPath with a fresh pathBuilder and
// returns the assembled forward path bytes.
func buildHierarchicalPath(input []byte, kind SchemeKind, base *URL) []byte {
	b := &pathBuilder{}
	walkPath(input, kind, base, b)
	return b.finish()
}

// firstForwardComponentLength returns the length of the first forward
// path component, excluding its leading '/' (URLStructure.FirstPathComponentLength).
func firstForwardComponentLength(path []byte) int {
	if len(path) == 0 || path[0] != '/' {
		return 0
	}
	rest := path[1:]
	for i, b := range rest {
		if b == '/' {
			return i
		}
	}
	return len(rest)
}

// needsPathSigil reports whether a hierarchical path with no authority
// must be preceded by the "/." sigil to avoid being misread as starting
// an authority section (spec.md §3.1, §4.4 sigil rules).
func needsPathSigil(hasAuthority bool, path []byte) bool {
	return !hasAuthority && len(path) >= 2 && path[0] == '/' && path[1] == '/'
}

// components is the fully-resolved, pre-serialization input to
// assembleURL: the output of the parser's state machine or of a setter's
// recomputation, already validated and percent-encoded per component.
type components struct {
	scheme     string
	schemeKind SchemeKind

	hasAuthority bool
	username     string
	password     string
	passwordSet  bool
	host         Host
	hostSet      bool
	port         string
	portSet      bool

	hasOpaquePath bool
	opaquePath    string // used when hasOpaquePath
	path          []byte // forward "/"-joined bytes, used when !hasOpaquePath

	query      string
	querySet   bool
	queryForm  bool
	fragment   string
	fragmentSet bool
}

// assembleURL lays the resolved components out into the canonical byte
// buffer and derives the matching URLStructure (spec.md §3.1, §6.2).
func assembleURL(c components) *URL {
	var st URLStructure
	st.SchemeKind = c.schemeKind
	st.SchemeLength = uint32(len(c.scheme))
	st.HasOpaquePath = c.hasOpaquePath
	st.QueryIsKnownFormEncoded = c.queryForm

	var path []byte
	if c.hasOpaquePath {
		path = []byte(c.opaquePath)
	} else {
		path = c.path
	}

	if c.hasAuthority {
		st.Sigil = SigilAuthority
	} else if needsPathSigil(false, path) {
		st.Sigil = SigilPath
	} else {
		st.Sigil = SigilNone
	}

	if c.hasAuthority {
		st.HostKind = c.host.Kind
		if c.username != "" {
			st.UsernameLength = uint32(len(c.username))
		}
		if c.passwordSet {
			st.PasswordLength = uint32(1 + len(c.password))
		}
		st.HostnameLength = uint32(len(c.host.String()))
		if c.portSet {
			st.PortLength = uint32(1 + len(c.port))
		}
	} else {
		st.HostKind = HostNil
	}

	st.PathLength = uint32(len(path))
	if !c.hasOpaquePath {
		st.FirstPathComponentLength = uint32(firstForwardComponentLength(path))
	}
	if c.querySet {
		st.QueryLength = uint32(1 + len(c.query))
	}
	if c.fragmentSet {
		st.FragmentLength = uint32(1 + len(c.fragment))
	}

	o := st.offsets()
	buf := make([]byte, st.totalLength())
	copy(buf[o.scheme:], c.scheme)
	buf[o.colonAfterScheme] = ':'
	switch st.Sigil {
	case SigilAuthority:
		buf[o.sigil] = '/'
		buf[o.sigil+1] = '/'
	case SigilPath:
		buf[o.sigil] = '/'
		buf[o.sigil+1] = '.'
	}

	if c.hasAuthority {
		copy(buf[o.username:], c.username)
		if c.passwordSet {
			buf[o.password] = ':'
			copy(buf[o.password+1:], c.password)
		}
		if st.UsernameLength > 0 || st.PasswordLength > 0 {
			buf[o.at] = '@'
		}
		copy(buf[o.host:], c.host.String())
		if c.portSet {
			buf[o.port] = ':'
			copy(buf[o.port+1:], c.port)
		}
	}

	copy(buf[o.path:], path)
	if c.querySet {
		buf[o.query] = '?'
		copy(buf[o.query+1:], c.query)
	}
	if c.fragmentSet {
		buf[o.fragment] = '#'
		copy(buf[o.fragment+1:], c.fragment)
	}

	return &URL{buf: buf, st: st}
}
