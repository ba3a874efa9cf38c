// Package diagnostic provides severity-tagged diagnostics collected during
// mapping synthesis and annotation passes.
//
// Schema mismatches are advisory and never abort a run: they accumulate
// here and render as report-stream lines ("ERROR:" prefix for errors,
// plain text for notices).
package diagnostic
