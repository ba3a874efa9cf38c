package mapping

import (
	"fmt"
	"strings"

	"bindsync/internal/common"
	"bindsync/internal/diagnostic"
	"bindsync/internal/schema"
)

// ArtifactName is the logical name the generated artifact is stored under.
const ArtifactName = "backends/wgpu_native/_mappings.py"

// nativePrefix is the identifier prefix of the wrapped native library.
const nativePrefix = "WGPU"

// force32Sentinel pads native enums to a 32-bit representation and never
// appears in the artifact.
const force32Sentinel = "Force32"

// Native-only enums emitted as symbolic-key -> integer tables. The second
// group re-cases member keys to kebab form.
var (
	str2intEnums      = []string{"BackendType"}
	str2intKebabEnums = []string{"NativeFeature"}
)

// Native-only enums emitted as integer -> symbolic-string tables.
var int2strEnums = []string{
	"BackendType",
	"AdapterType",
	"ErrorType",
	"DeviceLostReason",
	"TextureFormat",
	"TextureDimension",
	"PresentMode",
	"CompositeAlphaMode",
}

// Artifact is the result of one synthesis run: the rendered mapping tables,
// how many entries they carry, and the advisory diagnostics produced along
// the way.
type Artifact struct {
	// Text is the rendered artifact, deterministic across runs.
	Text string
	// EnumCount is the number of enummap entries.
	EnumCount int
	// StructFieldCount is the number of cstructfield2enum entries.
	StructFieldCount int
	// Diagnostics collects missing-construct reports. Never fatal.
	Diagnostics diagnostic.Diagnostics
}

// Synthesize cross-references the interface schema against the native
// schema and produces the mapping artifact.
func Synthesize(native *schema.Native, iface *schema.Interface, nm *NameMap) *Artifact {
	s := &synthesizer{
		native: native,
		iface:  iface,
		nm:     nm,
		art:    &Artifact{},
	}

	enummap := s.buildEnumMap()
	structFields := s.buildStructFieldMap()

	s.art.EnumCount = len(enummap)
	s.art.StructFieldCount = len(structFields)
	s.art.Text = s.render(enummap, structFields)

	return s.art
}

type synthesizer struct {
	native *schema.Native
	iface  *schema.Interface
	nm     *NameMap
	art    *Artifact
}

// buildEnumMap resolves every interface enum member to its native integer
// value. Keys are "<InterfaceEnum>.<symbolic-member>".
func (s *synthesizer) buildEnumMap() map[string]int {
	enummap := map[string]int{}

	for _, name := range common.SortedKeys(s.iface.Enums) {
		hname := s.nm.Resolve(name)

		henum, ok := s.native.Enums[hname]
		if !ok {
			s.art.Diagnostics.AddInfof("Enum %s missing in native header", hname)

			continue
		}

		// The native member set is matched case-insensitively.
		lowered := make(map[string]int, henum.Len())
		for key, val := range henum.All() {
			lowered[strings.ToLower(key)] = val
		}

		for _, sym := range s.iface.Enums[name].All() {
			hkey := common.NormalizeEnumKey(sym)
			hkey = s.nm.Member(name, hkey)

			if val, ok := lowered[hkey]; ok {
				enummap[name+"."+sym] = val
			} else {
				s.art.Diagnostics.AddInfof("Enum field %s.%s missing in native header", name, sym)
			}
		}
	}

	return enummap
}

// buildStructFieldMap records every native struct field whose declared type
// names a native enum that also exists on the interface side. Keys are
// "<StructNameWithoutPrefix>.<field>".
func (s *synthesizer) buildStructFieldMap() map[string]string {
	out := map[string]string{}

	for _, sname := range common.SortedKeys(s.native.Structs) {
		for field, typ := range s.native.Structs[sname].All() {
			if !strings.HasPrefix(typ, nativePrefix) {
				continue
			}

			henum, _, _ := strings.Cut(strings.TrimPrefix(typ, nativePrefix), "/")

			enumName := s.nm.Reverse(henum)
			if _, ok := s.iface.Enums[enumName]; !ok {
				// A struct or callback type, not an enum.
				continue
			}

			out[strings.TrimPrefix(sname, nativePrefix)+"."+field] = enumName
		}
	}

	return out
}

// render serializes the artifact with stable ordering: sorted keys for the
// flat tables, fixed enum order with native member order for the nested ones.
func (s *synthesizer) render(enummap map[string]int, structFields map[string]string) string {
	lines := []string{
		`""" Mappings for the wgpu-native backend. """`,
		"",
		"# THIS CODE IS AUTOGENERATED - DO NOT EDIT",
		"",
		"# flake8: noqa",
		"",
	}

	lines = append(lines, fmt.Sprintf("# There are %d enum mappings", len(enummap)), "")
	lines = append(lines, "enummap = {")

	for _, key := range common.SortedKeys(enummap) {
		lines = append(lines, fmt.Sprintf("    %q: %d,", key, enummap[key]))
	}

	lines = append(lines, "}", "")

	lines = append(lines, fmt.Sprintf("# There are %d struct-field enum mappings", len(structFields)), "")
	lines = append(lines, "cstructfield2enum = {")

	for _, key := range common.SortedKeys(structFields) {
		lines = append(lines, fmt.Sprintf("    %q: %q,", key, structFields[key]))
	}

	lines = append(lines, "}", "")

	lines = s.renderStr2Int(lines)
	lines = s.renderInt2Str(lines)

	return strings.Join(lines, "\n") + "\n"
}

func (s *synthesizer) renderStr2Int(lines []string) []string {
	lines = append(lines, "enum_str2int = {")

	for _, name := range str2intEnums {
		lines = s.renderMembers(lines, name, func(key string) string { return key })
	}

	for _, name := range str2intKebabEnums {
		lines = s.renderMembers(lines, name, common.ToKebabCase)
	}

	return append(lines, "}")
}

// renderMembers emits one nested symbolic-key -> integer table, with keys
// transformed by recase. Fixed-list enums absent from the native schema are
// skipped; the section simply stays empty.
func (s *synthesizer) renderMembers(lines []string, name string, recase func(string) string) []string {
	henum, ok := s.native.Enums[name]
	if !ok {
		return lines
	}

	lines = append(lines, fmt.Sprintf("    %q: {", name))

	for key, val := range henum.All() {
		if key == force32Sentinel {
			continue
		}

		lines = append(lines, fmt.Sprintf("        %q: %d,", recase(key), val))
	}

	return append(lines, "    },")
}

func (s *synthesizer) renderInt2Str(lines []string) []string {
	lines = append(lines, "enum_int2str = {")

	for _, name := range int2strEnums {
		henum, ok := s.native.Enums[name]
		if !ok {
			continue
		}

		// Prefer the interface spelling when the interface defines an enum
		// of the same name. A member equivalent to "unknown" doubles as the
		// spelling for the native "Undefined" member.
		ifaceNames := map[string]string{}

		if ienum, ok := s.iface.Enums[name]; ok {
			for _, sym := range ienum.All() {
				ifaceNames[strings.ReplaceAll(sym, "-", "")] = sym
			}

			if _, ok := ifaceNames["unknown"]; ok {
				ifaceNames["undefined"] = "unknown"
			}
		}

		lines = append(lines, fmt.Sprintf("    %q: {", name))

		for key, val := range henum.All() {
			if key == force32Sentinel {
				continue
			}

			sym, ok := ifaceNames[strings.ToLower(key)]
			if !ok {
				sym = key
			}

			lines = append(lines, fmt.Sprintf("        %d: %q,", val, sym))
		}

		lines = append(lines, "    },")
	}

	return append(lines, "}")
}
