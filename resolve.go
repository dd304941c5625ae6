package weburl

// ResolveReference resolves ref against u, per spec.md §4.4's relative-
// state family (exposed here as a public entrypoint instead of being
// reachable only through ParseRef's internal base argument). Mirrors
// terorie-oddb-go/fasturl's (*URL).ResolveReference, adapted to take the
// reference as a raw string since this package's URL value always carries
// its own scheme and so cannot represent a dangling relative reference on
// its own.
func (u *URL) ResolveReference(ref string) (*URL, error) {
	return ParseRef(ref, u)
}

// WithHostname returns a copy of u with its hostname replaced by newHost,
// a free function variant of SetHostname for call sites that prefer
// val, err := WithHostname(u, host) over the method form.
func WithHostname(u *URL, newHost string) (*URL, error) {
	return u.SetHostname(newHost)
}
