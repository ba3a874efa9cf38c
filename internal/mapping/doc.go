// Package mapping cross-references the interface-description schema against
// the native header schema and synthesizes the lookup-table artifact the
// binding resolves symbolic names through at runtime.
//
// The artifact holds four tables:
//
//   - enummap: "<Enum>.<member>" -> native integer value
//   - cstructfield2enum: "<Struct>.<field>" -> interface enum name
//   - enum_str2int: native-only enums, symbolic key -> integer
//   - enum_int2str: native-only enums, integer -> symbolic string,
//     preferring the interface spelling where one exists
//
// Synthesis is advisory: missing or mismatched constructs are reported as
// diagnostics and skipped, never raised as errors. The companion
// CompareFlags check reports flag-set discrepancies without producing any
// artifact.
package mapping
