// Package patch implements the annotation pipeline that keeps the
// hand-maintained binding source aligned with the native header schema.
//
// Three passes run strictly in sequence over fresh document views:
//
//  1. cleanup — remove previously generated annotation lines
//  2. call sites — annotate direct and indirect native function calls
//  3. struct literals — annotate and validate struct construction spans
//
// The order matters: the struct pass assumes no stale annotations remain,
// and the call-site pass's inserted comments must not be re-read as literal
// spans. Each pass returns an explicit Result (edited text, diagnostics,
// counters); nothing is accumulated in ambient state.
//
// Matching is textual: a small set of named recognizers over text the
// external formatter keeps in a known layout. The binding source is never
// parsed as a full language.
package patch
