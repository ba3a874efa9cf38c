package patch

import (
	"strings"

	"bindsync/internal/document"
	"bindsync/internal/schema"
)

// CleanupPass deletes every previously generated annotation line, so that
// re-runs never accumulate stale copies as the schemas evolve. Idempotent.
type CleanupPass struct{}

// Name implements Pass.
func (p *CleanupPass) Name() string {
	return "cleanup"
}

// Apply implements Pass.
func (p *CleanupPass) Apply(doc *document.Document, _ *schema.Native) (*Result, error) {
	res := newResult()

	for i, line := range doc.Scan() {
		trimmed := strings.TrimLeft(line, " \t")

		if strings.HasPrefix(trimmed, markerFixmeUnknown) ||
			strings.HasPrefix(trimmed, markerFixmeInvalid) ||
			strings.HasPrefix(trimmed, markerSignature) {
			doc.Delete(i)
			res.Counters[CounterLinesRemoved]++
		}
	}

	return res, nil
}
