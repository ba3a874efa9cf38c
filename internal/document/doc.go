// Package document provides an editable, line-addressed view of a source
// text body for one annotation pass.
//
// All edits are keyed by the indices of the document as it was at pass
// start. Scheduling an insert before line i does not shift the addressing
// the still-running scan uses, so a pass can look ahead across a span,
// insert annotation lines before it, and keep walking the original content
// without bookkeeping. Edits are applied in one deterministic
// materialization step at the end of the pass.
package document
