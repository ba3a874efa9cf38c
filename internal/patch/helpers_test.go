package patch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"bindsync/internal/document"
	"bindsync/internal/schema"
)

// testNative is a small native schema shared by the pass tests.
const testNative = `
functions:
  wgpuDeviceCreateBuffer: "WGPUBuffer wgpuDeviceCreateBuffer(WGPUDevice device, WGPUBufferDescriptor const * descriptor);"
  wgpuBufferDestroy: "void wgpuBufferDestroy(WGPUBuffer buffer);"
  wgpuQueueSubmit: "void wgpuQueueSubmit(WGPUQueue queue, size_t commandCount, WGPUCommandBuffer const * commands);"
  wgpuDevicePoll: "WGPUBool wgpuDevicePoll(WGPUDevice device, WGPUBool wait, WGPUWrappedSubmissionIndex const * wrappedSubmissionIndex);"
  wgpuDevicePoll2: "WGPUBool wgpuDevicePoll2(WGPUDevice device, WGPUBool wait);"
  wgpuSetLogLevel: "void wgpuSetLogLevel(WGPULogLevel level);"
  wgpuGetVersion: "uint32_t wgpuGetVersion(void);"
structs:
  WGPUColor:
    r: double
    g: double
    b: double
    a: double
  WGPUExtent3D:
    width: uint32_t
    height: uint32_t
    depthOrArrayLayers: uint32_t
`

func loadTestNative(t *testing.T) *schema.Native {
	t.Helper()

	n, err := schema.ParseNative([]byte(testNative))
	require.NoError(t, err)

	return n
}

// applyPass runs a single pass over text and returns its result and the
// materialized output.
func applyPass(t *testing.T, p Pass, native *schema.Native, text string) (*Result, string) {
	t.Helper()

	doc := document.New(text)

	res, err := p.Apply(doc, native)
	require.NoError(t, err)

	out, err := doc.Materialize()
	require.NoError(t, err)

	return res, out
}

// countLines counts output lines whose trimmed content starts with prefix.
func countLines(text, prefix string) int {
	count := 0

	for _, line := range strings.Split(text, "\n") {
		if strings.HasPrefix(strings.TrimLeft(line, " \t"), prefix) {
			count++
		}
	}

	return count
}
