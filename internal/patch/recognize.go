package patch

import (
	"regexp"
	"strings"
)

// Annotation markers. The cleanup pass deletes lines starting with these;
// the other passes insert them.
const (
	markerFixmeUnknown = "# FIXME: unknown C"
	markerFixmeInvalid = "# FIXME: invalid C"
	markerSignature    = "# H:"
)

// canonicalHandle is the library handle all native calls must go through;
// lib is the deprecated spelling that skips the error-check wrapper.
const canonicalHandle = "libf"

var (
	directCallRe     = regexp.MustCompile(`\b(libf?)\.(wgpu\w*)\(`)
	indirectAssignRe = regexp.MustCompile(`(_\w+_function) = libf?\.(wgpu\w*)`)
	indirectUseRe    = regexp.MustCompile(`type\(self\)\.(_\w+_function)`)
)

// DirectCall is an invocation of a native symbol through a library handle.
type DirectCall struct {
	// Handle is the handle expression used, "lib" or "libf".
	Handle string
	// Symbol is the native function name.
	Symbol string
}

// MatchDirectCall recognizes a direct native invocation on the line.
func MatchDirectCall(line string) (DirectCall, bool) {
	m := directCallRe.FindStringSubmatch(line)
	if m == nil {
		return DirectCall{}, false
	}

	return DirectCall{Handle: m[1], Symbol: m[2]}, true
}

// IndirectAssign binds a library symbol to an indirection field for later
// dynamic dispatch.
type IndirectAssign struct {
	Field  string
	Symbol string
}

// MatchIndirectAssign recognizes an assignment of a library symbol to an
// indirection field.
func MatchIndirectAssign(line string) (IndirectAssign, bool) {
	m := indirectAssignRe.FindStringSubmatch(line)
	if m == nil {
		return IndirectAssign{}, false
	}

	return IndirectAssign{Field: m[1], Symbol: m[2]}, true
}

// IndirectUse invokes an indirection field through a type-level lookup.
type IndirectUse struct {
	Field string
}

// MatchIndirectUse recognizes a dynamic invocation of an indirection field.
func MatchIndirectUse(line string) (IndirectUse, bool) {
	m := indirectUseRe.FindStringSubmatch(line)
	if m == nil {
		return IndirectUse{}, false
	}

	return IndirectUse{Field: m[1]}, true
}

// MatchLiteralOpen recognizes a struct-literal helper call and returns the
// column the helper token starts at, so brace tracking begins there.
// Lines inside the helper's own definition and bare mentions in comments or
// docs ("new_struct()") do not open a span.
func MatchLiteralOpen(line string) (int, bool) {
	if !strings.Contains(line, "new_struct_p(") && !strings.Contains(line, "new_struct(") {
		return 0, false
	}

	if strings.HasPrefix(strings.TrimLeft(line, " \t"), "def ") {
		return 0, false
	}

	if strings.Contains(line, "_new_struct") {
		return 0, false
	}

	if strings.Contains(line, "new_struct_p()") || strings.Contains(line, "new_struct()") {
		return 0, false
	}

	return strings.Index(line, "new_struct"), true
}
