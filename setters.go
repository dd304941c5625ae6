package weburl

import "strconv"

// toComponents reconstructs a mutable components value from the current
// URL, the starting point every setter mutates before handing the result
// back to assembleURL (spec.md §4.5's "splicing discipline", implemented
// here as a full rebuild through the single writer entrypoint rather than
// literal byte-range patches).
func (u *URL) toComponents() components {
	var c components
	c.scheme = u.Scheme()
	c.schemeKind = u.SchemeKind()
	c.hasOpaquePath = u.HasOpaquePath()
	if c.hasOpaquePath {
		c.opaquePath = u.Path()
	} else {
		c.path = []byte(u.Path())
	}
	if h := u.Host(); h.Kind != HostNil {
		c.hasAuthority = true
		c.host = h
	}
	if un, ok := u.Username(); ok {
		c.username = un
	}
	if pw, ok := u.Password(); ok {
		c.password = pw
		c.passwordSet = true
	}
	if p, ok := u.Port(); ok {
		c.port = p
		c.portSet = true
	}
	if q, ok := u.Query(); ok {
		c.query = q
		c.querySet = true
		c.queryForm = u.st.QueryIsKnownFormEncoded
	}
	if f, ok := u.Fragment(); ok {
		c.fragment = f
		c.fragmentSet = true
	}
	return c
}

func (u *URL) hasCredentialsOrPort() bool {
	_, un := u.Username()
	_, pw := u.Password()
	_, pt := u.Port()
	return un || pw || pt
}

func validateSchemeGrammar(s string) (string, bool) {
	b := []byte(s)
	if len(b) > 0 && b[len(b)-1] == ':' {
		b = b[:len(b)-1]
	}
	if len(b) == 0 || !isASCIIAlpha(b[0]) {
		return "", false
	}
	for _, c := range b[1:] {
		if !(isASCIIAlphanumeric(c) || c == '+' || c == '-' || c == '.') {
			return "", false
		}
	}
	return string(b), true
}

// SetScheme implements spec.md §4.5's setScheme contract.
func (u *URL) SetScheme(s string) (*URL, error) {
	scheme, ok := validateSchemeGrammar(s)
	if !ok {
		return nil, errInvalidSchemeGrammar
	}
	lowered := string(lowerASCII([]byte(scheme)))
	newKind := schemeKindOf([]byte(lowered))

	if newKind.IsSpecial() != u.IsSpecial() {
		return nil, errSpecialityChange
	}
	if newKind == SchemeFile && u.hasCredentialsOrPort() {
		return nil, errFileSchemeSwitch
	}
	if u.SchemeKind() == SchemeFile && newKind != SchemeFile {
		if hn, ok := u.Hostname(); ok && hn == "" {
			return nil, errFileSchemeSwitch
		}
	}

	c := u.toComponents()
	c.scheme = lowered
	c.schemeKind = newKind
	if c.portSet {
		if dp, ok := newKind.DefaultPort(); ok {
			if val, err := strconv.Atoi(c.port); err == nil && val == dp {
				c.portSet = false
				c.port = ""
			}
		}
	}
	return assembleURL(c), nil
}

// SetUsername implements spec.md §4.5's setUsername contract. An empty
// string removes the username.
func (u *URL) SetUsername(s string) (*URL, error) {
	if u.st.cannotHaveCredentialsOrPort() {
		return nil, errCannotHaveCredentialsOrPort
	}
	c := u.toComponents()
	if s == "" {
		c.username = ""
	} else {
		c.username = string(PercentEncode(nil, []byte(s), UserInfo))
	}
	return assembleURL(c), nil
}

// SetPassword implements spec.md §4.5's setPassword contract. An empty
// string removes the password.
func (u *URL) SetPassword(s string) (*URL, error) {
	if u.st.cannotHaveCredentialsOrPort() {
		return nil, errCannotHaveCredentialsOrPort
	}
	c := u.toComponents()
	if s == "" {
		c.password = ""
		c.passwordSet = false
	} else {
		c.password = string(PercentEncode(nil, []byte(s), UserInfo))
		c.passwordSet = true
	}
	return assembleURL(c), nil
}

// SetHostname implements spec.md §4.5's setHostname contract for a
// non-empty replacement host. Use RemoveHostname to clear it.
func (u *URL) SetHostname(s string) (*URL, error) {
	if u.HasOpaquePath() {
		return nil, errOpaquePathSetHost
	}
	host, err := parseHost([]byte(s), u.SchemeKind())
	if err != nil {
		return nil, err
	}
	c := u.toComponents()
	c.hasAuthority = true
	c.host = host
	return assembleURL(c), nil
}

// RemoveHostname clears the authority entirely. Disallowed for special
// and file schemes, which always require a host.
func (u *URL) RemoveHostname() (*URL, error) {
	if u.HasOpaquePath() {
		return nil, errOpaquePathSetHost
	}
	if u.SchemeKind() == SchemeFile {
		return nil, errNilHostDisallowed
	}
	if u.IsSpecial() {
		return nil, errEmptyHostDisallowed
	}
	if u.hasCredentialsOrPort() {
		return nil, errCannotHaveCredentialsOrPort
	}
	c := u.toComponents()
	c.hasAuthority = false
	c.host = Host{}
	return assembleURL(c), nil
}

// SetPort implements spec.md §4.5's setPort contract.
func (u *URL) SetPort(port int) (*URL, error) {
	if u.st.cannotHaveCredentialsOrPort() {
		return nil, errCannotHaveCredentialsOrPort
	}
	if port < 0 || port > 65535 {
		return nil, errPortOutOfRange
	}
	c := u.toComponents()
	if dp, ok := u.SchemeKind().DefaultPort(); ok && port == dp {
		c.portSet = false
		c.port = ""
	} else {
		c.portSet = true
		c.port = strconv.Itoa(port)
	}
	return assembleURL(c), nil
}

// RemovePort clears an explicit port, if any.
func (u *URL) RemovePort() (*URL, error) {
	if u.st.cannotHaveCredentialsOrPort() {
		return nil, errCannotHaveCredentialsOrPort
	}
	c := u.toComponents()
	c.portSet = false
	c.port = ""
	return assembleURL(c), nil
}

// SetPath implements spec.md §4.5's setPath contract: always re-walked
// with no base URL, regardless of how the receiver itself was built.
func (u *URL) SetPath(s string) (*URL, error) {
	if u.HasOpaquePath() {
		return nil, errOpaquePathSetPath
	}
	c := u.toComponents()
	c.path = buildHierarchicalPath([]byte(s), u.SchemeKind(), nil)
	return assembleURL(c), nil
}

// SetQuery implements spec.md §4.5's setQuery contract (currently
// infallible; see DESIGN.md's Open Question decision).
func (u *URL) SetQuery(s string) (*URL, error) {
	c := u.toComponents()
	set := Query
	if u.IsSpecial() {
		set = SpecialQuery
	}
	c.query = string(PercentEncode(nil, []byte(s), set))
	c.querySet = true
	c.queryForm = len(c.query) <= 1
	return assembleURL(c), nil
}

// SetQueryKnownFormEncoded splices s in as the query verbatim, marking it
// already form-encoded. This is the "back-door" spec.md §4.5 reserves for
// the form-encoded KVP view (query.go's Values.Encode) so it doesn't pay
// for a second round of percent-encoding its own output.
func (u *URL) SetQueryKnownFormEncoded(s string) *URL {
	c := u.toComponents()
	c.query = s
	c.querySet = true
	c.queryForm = true
	return assembleURL(c)
}

// RemoveQuery clears the query component.
func (u *URL) RemoveQuery() *URL {
	c := u.toComponents()
	c.querySet = false
	c.query = ""
	c.queryForm = false
	return assembleURL(c)
}

// SetFragment implements spec.md §4.5's setFragment contract (infallible).
func (u *URL) SetFragment(s string) (*URL, error) {
	c := u.toComponents()
	c.fragment = string(PercentEncode(nil, []byte(s), Fragment))
	c.fragmentSet = true
	return assembleURL(c), nil
}

// RemoveFragment clears the fragment component.
func (u *URL) RemoveFragment() *URL {
	c := u.toComponents()
	c.fragmentSet = false
	c.fragment = ""
	return assembleURL(c)
}
