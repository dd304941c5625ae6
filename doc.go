// Package weburl implements a WHATWG URL Standard conformant parser,
// normalizer and mutator.
//
// A URL value is a pair (bytes, structure): bytes is the canonical
// serialized form, structure is a cheap index describing component
// offsets and lengths. URLs are built by Parse and ParseRef, and changed
// only through the Set* and Remove* methods on *URL, which re-validate
// invariants and return a new URL whose buffer is rebuilt from the
// components rather than re-parsed from scratch.
//
// Internationalized domain names are out of scope: hostnames are treated
// as ASCII-only, and non-ASCII bytes in a special scheme's hostname are
// rejected rather than Punycode-encoded.
package weburl
