// Package schema provides read-only typed access to the two pre-parsed
// schemas the tool consumes: the native header inventory (functions,
// structs, enums, flags from wgpu.h) and the interface-description
// inventory (enums, flags from the WebGPU IDL).
//
// The extractors that produce these inventories are external collaborators;
// they hand us YAML which is parsed once per run. Struct fields and enum
// members preserve declaration order, which the generated artifact relies on.
package schema
