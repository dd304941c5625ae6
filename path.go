package weburl

// pathVisitor receives the components of a normalized path in reverse
// order (spec.md §4.3). Callers prepend each yielded component (with a
// leading '/') to build the forward-order path.
type pathVisitor interface {
	visitInputPathComponent(component []byte, isLeadingWindowsDriveLetter bool)
	visitBasePathComponent(component []byte)
	visitEmptyPathComponents(n int)
	visitPathSigil()
}

func isPathSeparator(b byte, isSpecial bool) bool {
	if isSpecial {
		return b == '/' || b == '\\'
	}
	return b == '/'
}

func isDotComponent(c []byte) bool {
	return len(c) == 1 && c[0] == '.'
}

func isDotDotComponent(c []byte) bool {
	return len(c) == 2 && c[0] == '.' && c[1] == '.'
}

func isWindowsDriveLetter(c []byte) bool {
	return len(c) == 2 && isASCIIAlpha(c[0]) && (c[1] == ':' || c[1] == '|')
}

// splitPathComponents splits s on path separators, preserving empty
// components exactly (consecutive or trailing separators yield them).
func splitPathComponents(s []byte, isSpecial bool) [][]byte {
	if len(s) == 0 {
		return [][]byte{{}}
	}
	var parts [][]byte
	start := 0
	for i := 0; i < len(s); i++ {
		if isPathSeparator(s[i], isSpecial) {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	parts = append(parts, s[start:])
	return parts
}

// walkPath implements spec.md §4.3 in full: empty-input handling,
// file-scheme leading-separator/dot stripping, right-to-left walking
// with '.'/'..' popcount bookkeeping, and the lazy base-URL join.
func walkPath(input []byte, kind SchemeKind, base *URL, visitor pathVisitor) {
	isSpecial := kind.IsSpecial()
	isFile := kind == SchemeFile

	// Step 1.
	if len(input) == 0 {
		if !isSpecial {
			return
		}
		visitor.visitEmptyPathComponents(1)
		return
	}

	// Step 2.
	pos := 0
	if isFile {
		for {
			advanced := false
			for pos < len(input) && isPathSeparator(input[pos], isSpecial) {
				pos++
				advanced = true
			}
			rest := input[pos:]
			compEnd := 0
			for compEnd < len(rest) && !isPathSeparator(rest[compEnd], isSpecial) {
				compEnd++
			}
			comp := rest[:compEnd]
			if isDotComponent(comp) || isDotDotComponent(comp) {
				pos += compEnd
				advanced = true
			}
			if !advanced {
				break
			}
		}
	} else if pos < len(input) && isPathSeparator(input[pos], isSpecial) {
		pos++
	}

	remaining := input[pos:]

	// Step 3.
	if len(remaining) == 0 {
		if isFile && base != nil {
			if drive, ok := basePathDriveLetter(base); ok {
				visitor.visitEmptyPathComponents(1)
				visitor.visitBasePathComponent(drive)
				return
			}
		}
		visitor.visitEmptyPathComponents(1)
		return
	}

	parts := splitPathComponents(remaining, isSpecial)
	n := len(parts)

	popcount := 0
	trailingEmpty := 0
	didYield := false

	// Step 4: everything but the leftmost component.
	for idx := n - 1; idx >= 1; idx-- {
		comp := parts[idx]
		isTrailing := idx == n-1

		switch {
		case isDotDotComponent(comp):
			popcount++
			if isTrailing {
				trailingEmpty++
			}
		case popcount > 0:
			popcount--
		case isDotComponent(comp):
			if isTrailing {
				trailingEmpty++
			}
		case len(comp) == 0:
			trailingEmpty++
		default:
			if trailingEmpty > 0 {
				visitor.visitEmptyPathComponents(trailingEmpty)
				trailingEmpty = 0
			}
			visitor.visitInputPathComponent(comp, false)
			didYield = true
		}
	}

	// Step 5: the leading (leftmost) component. Mirrors step 4's case
	// ordering (dotdot first, then an outstanding popcount, then dot,
	// then content) so a pending pop carries into the base join instead
	// of being absorbed twice.
	leading := parts[0]
	switch {
	case isFile && isWindowsDriveLetter(leading):
		if trailingEmpty > 0 {
			visitor.visitEmptyPathComponents(trailingEmpty)
			trailingEmpty = 0
		}
		drive := []byte{leading[0], ':'}
		visitor.visitInputPathComponent(drive, true)
		return
	case isDotDotComponent(leading):
		popcount++
		if !didYield && trailingEmpty == 0 {
			trailingEmpty = 1
		}
	case popcount > 0:
		popcount--
	case isDotComponent(leading):
		if !didYield && trailingEmpty == 0 {
			trailingEmpty = 1
		}
	default:
		if trailingEmpty > 0 {
			visitor.visitEmptyPathComponents(trailingEmpty)
			trailingEmpty = 0
		}
		visitor.visitInputPathComponent(leading, false)
		didYield = true
	}

	// Step 6/7: base URL join.
	if base == nil {
		if trailingEmpty > 0 || !didYield {
			if trailingEmpty == 0 {
				trailingEmpty = 1
			}
			visitor.visitEmptyPathComponents(trailingEmpty)
		}
		return
	}

	baseParts := splitPathComponents(basePathBytes(base), true)
	bn := len(baseParts)
	if bn > 0 {
		// Drop the base's own last component, unless it's a preserved
		// file-scheme Windows drive letter.
		last := baseParts[bn-1]
		dropLast := true
		if isFile && isWindowsDriveLetter(last) {
			dropLast = false
		}
		if dropLast {
			baseParts = baseParts[:bn-1]
			bn--
		}
	}

	for idx := bn - 1; idx >= 0; idx-- {
		comp := baseParts[idx]
		if popcount > 0 {
			popcount--
			continue
		}
		if trailingEmpty > 0 {
			visitor.visitEmptyPathComponents(trailingEmpty)
			trailingEmpty = 0
		}
		visitor.visitBasePathComponent(comp)
		didYield = true
	}

	if trailingEmpty > 0 || !didYield {
		if trailingEmpty == 0 {
			trailingEmpty = 1
		}
		visitor.visitEmptyPathComponents(trailingEmpty)
	}
}

// basePathDriveLetter reports whether base's path begins with "/" followed
// by a Windows drive letter, returning the 2-byte drive component.
func basePathDriveLetter(base *URL) ([]byte, bool) {
	p := basePathBytes(base)
	if len(p) < 2 {
		return nil, false
	}
	if isWindowsDriveLetter(p[:2]) {
		return []byte{p[0], ':'}, true
	}
	return nil, false
}

func basePathBytes(base *URL) []byte {
	if base == nil {
		return nil
	}
	p := base.Path()
	if len(p) > 0 && p[0] == '/' {
		p = p[1:]
	}
	return []byte(p)
}
