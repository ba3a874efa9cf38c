package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructLiteralSingleLineGetsSeparatorNudge(t *testing.T) {
	text := `        c = new_struct("WGPUColor", r=1)`

	res, out := applyPass(t, &StructLiteralPass{}, loadTestNative(t), text)

	assert.Equal(t, `        c = new_struct("WGPUColor", r=1,)`, out)
	assert.Equal(t, 1, res.Counters[CounterStructsValidated])
	assert.False(t, res.Diagnostics.HasErrors())
	require.Len(t, res.Diagnostics.Infos, 1)
	assert.Contains(t, res.Diagnostics.Infos[0].Message, "made a struct multiline")
}

func TestStructLiteralCollapsedTripletGetsSeparatorNudge(t *testing.T) {
	text := `        c = new_struct(
            "WGPUColor", r=1
        )`

	res, out := applyPass(t, &StructLiteralPass{}, loadTestNative(t), text)

	assert.Equal(t, `        c = new_struct(
            "WGPUColor", r=1,
        )`, out)
	require.Len(t, res.Diagnostics.Infos, 1)
	assert.Contains(t, res.Diagnostics.Infos[0].Message, "made a struct multiline")
}

func TestStructLiteralBlockValidated(t *testing.T) {
	text := `        c = new_struct_p(
            "WGPUColor *",
            r=0.5,
            g=0.5,
        )`

	res, out := applyPass(t, &StructLiteralPass{}, loadTestNative(t), text)

	assert.Equal(t, `        # H: r: double, g: double, b: double, a: double
        c = new_struct_p(
            "WGPUColor *",
            r=0.5,
            g=0.5,
            # not used: b
            # not used: a
        )`, out)
	assert.Equal(t, 1, res.Counters[CounterStructsValidated])
	assert.False(t, res.Diagnostics.HasErrors())
	assert.Empty(t, res.Diagnostics.Infos)
}

func TestStructLiteralUnknownStruct(t *testing.T) {
	text := `        c = new_struct(
            "WGPUFoo",
            x=1,
        )`

	res, out := applyPass(t, &StructLiteralPass{}, loadTestNative(t), text)

	require.Len(t, res.Diagnostics.Errors, 1)
	assert.Contains(t, res.Diagnostics.Errors[0].Message, "unknown C struct WGPUFoo")
	assert.Equal(t, 1, countLines(out, "# FIXME: unknown C struct WGPUFoo"))
	assert.Equal(t, 0, countLines(out, "# H:"))
	assert.Equal(t, 0, countLines(out, "# not used:"))
}

func TestStructLiteralUnknownField(t *testing.T) {
	text := `        c = new_struct(
            "WGPUColor",
            rr=1,
        )`

	res, out := applyPass(t, &StructLiteralPass{}, loadTestNative(t), text)

	require.Len(t, res.Diagnostics.Errors, 1)
	assert.Contains(t, res.Diagnostics.Errors[0].Message, "unknown C struct field WGPUColor.rr")
	assert.Equal(t, 1, countLines(out, "# FIXME: unknown C struct field WGPUColor.rr"))

	// Every declared field is unassigned here.
	assert.Equal(t, 4, countLines(out, "# not used:"))
}

func TestStructLiteralHelperFormMismatch(t *testing.T) {
	t.Run("pointer type with value helper", func(t *testing.T) {
		text := `        c = new_struct(
            "WGPUColor *",
            r=1,
        )`

		_, out := applyPass(t, &StructLiteralPass{}, loadTestNative(t), text)

		assert.Equal(t, 1, countLines(out, "# FIXME: invalid C struct, use new_struct_p()"))
		// Validation still proceeds past the form mismatch.
		assert.Equal(t, 1, countLines(out, "# H:"))
	})

	t.Run("value type with pointer helper", func(t *testing.T) {
		text := `        c = new_struct_p(
            "WGPUColor",
            r=1,
        )`

		_, out := applyPass(t, &StructLiteralPass{}, loadTestNative(t), text)

		assert.Equal(t, 1, countLines(out, "# FIXME: invalid C struct, use new_struct()"))
		assert.Equal(t, 1, countLines(out, "# H:"))
	})
}

func TestStructLiteralCommentStopsParenTracking(t *testing.T) {
	text := `        c = new_struct(
            "WGPUColor",
            r=1,  # reset each frame )))
        )`

	res, out := applyPass(t, &StructLiteralPass{}, loadTestNative(t), text)

	assert.False(t, res.Diagnostics.HasErrors())
	assert.Equal(t, 1, res.Counters[CounterStructsValidated])
	assert.Equal(t, 3, countLines(out, "# not used:"))
}

func TestStructLiteralHelperDefinitionIgnored(t *testing.T) {
	text := `def new_struct_p(ctype, **kwargs):
    """Create a pointer to a new C struct; see new_struct()."""
    return _new_struct(ctype, **kwargs)`

	res, out := applyPass(t, &StructLiteralPass{}, loadTestNative(t), text)

	assert.Equal(t, 0, res.Counters[CounterStructsValidated])
	assert.Equal(t, text, out)
}

func TestStructLiteralMultipleSpans(t *testing.T) {
	text := `        c = new_struct(
            "WGPUColor",
            r=1,
            g=1,
            b=1,
            a=1,
        )
        e = new_struct(
            "WGPUExtent3D",
            width=64,
            height=64,
            depthOrArrayLayers=1,
        )`

	res, out := applyPass(t, &StructLiteralPass{}, loadTestNative(t), text)

	assert.Equal(t, 2, res.Counters[CounterStructsValidated])
	assert.False(t, res.Diagnostics.HasErrors())
	assert.Equal(t, 2, countLines(out, "# H:"))
	assert.Equal(t, 0, countLines(out, "# not used:"))
}

func TestPendingSpanUnbalancedParens(t *testing.T) {
	span := pendingSpan{start: 4, depth: 0, active: true}

	_, err := span.consume(")")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unbalanced parens in struct literal starting at line 5")
}
