package patch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallSiteDirectCallAnnotated(t *testing.T) {
	text := `class GPUDevice:
    def create_buffer(self):
        return libf.wgpuDeviceCreateBuffer(self._internal, struct)`

	res, out := applyPass(t, &CallSitePass{}, loadTestNative(t), text)

	assert.Equal(t, 1, res.Counters[CounterCallsValidated])
	assert.False(t, res.Diagnostics.HasErrors())

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Equal(t,
		"        # H: WGPUBuffer f(WGPUDevice device, WGPUBufferDescriptor const * descriptor)",
		lines[2])
	assert.Contains(t, lines[3], "libf.wgpuDeviceCreateBuffer")
}

func TestCallSiteDeprecatedHandleFlagged(t *testing.T) {
	text := `    lib.wgpuBufferDestroy(buffer)`

	res, out := applyPass(t, &CallSitePass{}, loadTestNative(t), text)

	// The call still validates; the handle spelling gets its own fix-me.
	assert.Equal(t, 1, res.Counters[CounterCallsValidated])

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "    # FIXME: wgpu func calls must be done from libf", lines[0])
	assert.Equal(t, "    # H: void f(WGPUBuffer buffer)", lines[1])
}

func TestCallSiteUnknownFunction(t *testing.T) {
	text := `class GPUDevice:
    def _release(self):
        libf.wgpuDeviceRelease(self._internal)`

	res, out := applyPass(t, &CallSitePass{}, loadTestNative(t), text)

	require.True(t, res.Diagnostics.HasErrors())
	require.Len(t, res.Diagnostics.Errors, 1)
	assert.Contains(t, res.Diagnostics.Errors[0].Message, "unknown C function wgpuDeviceRelease")

	assert.Equal(t, 1, countLines(out, "# FIXME: unknown C function wgpuDeviceRelease"))
	assert.Equal(t, 0, countLines(out, "# H:"))
	assert.Equal(t, 0, res.Counters[CounterCallsValidated])
}

func TestCallSiteIndirectDispatch(t *testing.T) {
	text := `class GPUDevice:
    def __init__(self):
        if can_poll2:
            type(self)._poll_function = libf.wgpuDevicePoll2
        else:
            type(self)._poll_function = libf.wgpuDevicePoll

    def poll(self):
        return type(self)._poll_function(self._internal, True)`

	res, out := applyPass(t, &CallSitePass{}, loadTestNative(t), text)

	assert.False(t, res.Diagnostics.HasErrors())
	assert.Equal(t, 2, res.Counters[CounterCallsValidated])

	// Both bound signatures land at the dispatch point, in assignment order.
	lines := strings.Split(out, "\n")
	use := -1

	for i, line := range lines {
		if strings.Contains(line, "_poll_function(self._internal") {
			use = i
		}
	}

	require.GreaterOrEqual(t, use, 2)
	assert.Equal(t,
		"        # H: WGPUBool wgpuDevicePoll2(WGPUDevice device, WGPUBool wait)",
		lines[use-2])
	assert.Equal(t,
		"        # H: WGPUBool wgpuDevicePoll(WGPUDevice device, WGPUBool wait, "+
			"WGPUWrappedSubmissionIndex const * wrappedSubmissionIndex)",
		lines[use-1])
}

func TestCallSiteUseWithoutAssignment(t *testing.T) {
	text := `    def poll(self):
        return type(self)._poll_function(self._internal)`

	res, out := applyPass(t, &CallSitePass{}, loadTestNative(t), text)

	require.Len(t, res.Diagnostics.Errors, 1)
	assert.Contains(t, res.Diagnostics.Errors[0].Message,
		"no assignments to indirection field _poll_function")
	assert.Equal(t, 1, countLines(out, "# FIXME: no assignments to indirection field"))
}

func TestCallSiteAssignmentNeverUsed(t *testing.T) {
	text := `    type(self)._poll_function = libf.wgpuDevicePoll`

	res, out := applyPass(t, &CallSitePass{}, loadTestNative(t), text)

	require.Len(t, res.Diagnostics.Errors, 1)
	assert.Contains(t, res.Diagnostics.Errors[0].Message,
		"_poll_function assigned a value but it is never used")
	assert.Equal(t, text, out)
}

func TestCallSiteDuplicateUseSites(t *testing.T) {
	text := `    type(self)._poll_function = libf.wgpuDevicePoll
    type(self)._poll_function(self._internal, True)
    type(self)._poll_function(self._internal, False)`

	res, out := applyPass(t, &CallSitePass{}, loadTestNative(t), text)

	require.Len(t, res.Diagnostics.Errors, 1)
	assert.Contains(t, res.Diagnostics.Errors[0].Message,
		"multiple dynamic call sites for indirection field _poll_function")

	// Only the first dispatch point gets the signature.
	assert.Equal(t, 1, countLines(out, "# H:"))
	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[1], "# H:")
}

func TestCallSiteUnusedFunctionReport(t *testing.T) {
	text := `    libf.wgpuDeviceCreateBuffer(self._internal, struct)
    libf.wgpuBufferDestroy(buffer)`

	res, _ := applyPass(t, &CallSitePass{}, loadTestNative(t), text)

	// wgpuSetLogLevel and wgpuGetVersion sit on the ignore list.
	assert.Equal(t, []string{
		"wgpuDevicePoll",
		"wgpuDevicePoll2",
		"wgpuQueueSubmit",
	}, res.UnusedFunctions)
	assert.Equal(t, 3, res.Counters[CounterFunctionsUnused])
}

func TestCallSiteIndirectDetectionFeedsUnusedReport(t *testing.T) {
	text := `    type(self)._poll_function = libf.wgpuDevicePoll
    type(self)._poll_function(self._internal, True)`

	res, _ := applyPass(t, &CallSitePass{}, loadTestNative(t), text)

	assert.NotContains(t, res.UnusedFunctions, "wgpuDevicePoll")
	assert.Contains(t, res.UnusedFunctions, "wgpuDevicePoll2")
}

func TestCallSiteUnknownIndirectAssignment(t *testing.T) {
	text := `    type(self)._release_function = libf.wgpuDeviceRelease`

	res, out := applyPass(t, &CallSitePass{}, loadTestNative(t), text)

	require.Len(t, res.Diagnostics.Errors, 1)
	assert.Contains(t, res.Diagnostics.Errors[0].Message, "unknown C function wgpuDeviceRelease")
	assert.Equal(t, 1, countLines(out, "# FIXME: unknown C function wgpuDeviceRelease"))
}
