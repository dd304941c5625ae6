package weburl

import "github.com/projectdiscovery/utils/errkit"

// Error kinds, one per spec.md §7 "Error kinds" bullet. Grounded on
// error.go's errkit.NewPrimitiveErrKind/errkit.New(...).SetKind(...).Build()
// pattern from the teacher repo.
var (
	ErrKindScheme = errkit.NewPrimitiveErrKind(
		"weburl-invalid-scheme",
		"invalid scheme (grammar or specialness change)",
		nil,
	)

	ErrKindCredentials = errkit.NewPrimitiveErrKind(
		"weburl-credentials-unsupported",
		"credentials or port unsupported for this scheme/host configuration",
		nil,
	)

	ErrKindPort = errkit.NewPrimitiveErrKind(
		"weburl-port-out-of-range",
		"port out of range",
		nil,
	)

	ErrKindHost = errkit.NewPrimitiveErrKind(
		"weburl-invalid-host",
		"invalid hostname",
		nil,
	)

	ErrKindOpaquePath = errkit.NewPrimitiveErrKind(
		"weburl-opaque-path",
		"cannot set host or path on a URL with an opaque path",
		nil,
	)

	ErrKindRemoveHost = errkit.NewPrimitiveErrKind(
		"weburl-cannot-remove-host",
		"cannot remove hostname without invalidating the path",
		nil,
	)
)

func newErr(msg string, kind *errkit.ErrorKind) error {
	return errkit.New(msg).SetKind(kind).Build()
}

// Sentinel-style constructors used throughout parser.go/setters.go/host.go.
var (
	errEmptyInput          = newErr("empty input: no scheme", ErrKindScheme)
	errRelativeNoBase      = newErr("relative-URL missing scheme, no base URL given", ErrKindScheme)
	errSpecialityChange    = newErr("cannot change a URL's specialness", ErrKindScheme)
	errFileSchemeSwitch    = newErr("cannot switch between file and non-file schemes with credentials or empty host", ErrKindScheme)
	errInvalidSchemeGrammar = newErr("scheme contains characters outside [a-zA-Z0-9+.-] or does not start with a letter", ErrKindScheme)

	errCannotHaveCredentialsOrPort = newErr("URL cannot have credentials or port", ErrKindCredentials)

	errPortOutOfRange = newErr("port out of range", ErrKindPort)

	errEmptyHostDisallowed  = newErr("special non-file scheme cannot have an empty hostname", ErrKindHost)
	errNilHostDisallowed    = newErr("file scheme cannot have a nil hostname", ErrKindHost)
	errForbiddenHostCodePoint = newErr("forbidden host code point", ErrKindHost)
	errInvalidIPv4          = newErr("invalid IPv4 address", ErrKindHost)
	errInvalidIPv6          = newErr("invalid IPv6 address", ErrKindHost)
	errNonASCIIHostname      = newErr("non-ASCII byte in special-scheme hostname", ErrKindHost)
	errBracketMismatch       = newErr("'[' without matching ']' (or vice versa) in host", ErrKindHost)

	errOpaquePathSetHost = newErr("cannot set host on a URL with an opaque path", ErrKindOpaquePath)
	errOpaquePathSetPath = newErr("cannot set path on a URL with an opaque path", ErrKindOpaquePath)

	errCannotRemoveHost = newErr("cannot remove hostname: resulting path would begin with \"//\" and have no sigil to disambiguate it", ErrKindRemoveHost)
)

// ValidationError is a non-fatal parser diagnostic (spec.md §4.4, §6.5):
// parsing continues regardless of whether a sink is registered.
type ValidationError struct {
	Code    string
	Message string
	Offset  int
}

// ValidationSink receives ValidationErrors as they occur during Parse.
// A nil sink is valid and simply discards them.
type ValidationSink func(ValidationError)

func report(sink ValidationSink, code, msg string, offset int) {
	if sink == nil {
		return
	}
	sink(ValidationError{Code: code, Message: msg, Offset: offset})
}
