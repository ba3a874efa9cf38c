package patch

import (
	"sort"
	"strings"

	"bindsync/internal/common"
	"bindsync/internal/document"
	"bindsync/internal/schema"
)

// Functions reached through non-standard paths (initialization, logging,
// version query, surface-creation helpers) are exempt from the
// unused-function report.
var ignoredFunctionPrefixes = []string{
	"wgpuCreateInstance",
	"wgpuInstanceCreateSurface",
	"wgpuSetLogLevel",
	"wgpuSetLogCallback",
	"wgpuGetVersion",
}

// CallSitePass annotates native function calls with the declared signature
// from the header and flags unknown symbols.
//
// Two call shapes are recognized: direct invocations through the library
// handle, and indirect invocations where a symbol is first bound to an
// indirection field and later dispatched dynamically. Indirect calls are
// annotated at the point of use, which may carry several signatures when
// multiple symbols were bound (capability-dependent dispatch).
type CallSitePass struct{}

// useSite records where an indirection field is invoked.
type useSite struct {
	line  string
	index int
}

// Name implements Pass.
func (p *CallSitePass) Name() string {
	return "call-site"
}

// Apply implements Pass.
func (p *CallSitePass) Apply(doc *document.Document, native *schema.Native) (*Result, error) {
	res := newResult()

	detected := map[string]bool{}

	// Def/use tables, scoped to this pass over this document.
	assignments := map[string][]string{}

	var assignOrder []string

	uses := map[string]useSite{}

	var useOrder []string

	for i, line := range doc.Scan() {
		if call, ok := MatchDirectCall(line); ok {
			p.annotateDirectCall(doc, native, res, i, line, call, detected)

			continue
		}

		if assign, ok := MatchIndirectAssign(line); ok {
			if _, known := native.Functions[assign.Symbol]; !known {
				msg := "unknown C function " + assign.Symbol
				doc.InsertBefore(i, common.IndentOf(line)+"# FIXME: "+msg)
				res.Diagnostics.AddError(msg, assign.Symbol, i)

				continue
			}

			if _, seen := assignments[assign.Field]; !seen {
				assignOrder = append(assignOrder, assign.Field)
			}

			assignments[assign.Field] = append(assignments[assign.Field], assign.Symbol)

			continue
		}

		if use, ok := MatchIndirectUse(line); ok {
			if _, seen := uses[use.Field]; seen {
				// The first use site is the annotation point; further uses
				// of the same field are a mistake.
				res.Diagnostics.AddError(
					"multiple dynamic call sites for indirection field "+use.Field,
					use.Field, i)

				continue
			}

			uses[use.Field] = useSite{line: line, index: i}
			useOrder = append(useOrder, use.Field)
		}
	}

	consumed := p.annotateUseSites(doc, native, res, uses, useOrder, assignments, detected)

	for _, field := range assignOrder {
		if !consumed[field] {
			res.Diagnostics.AddErrorf("%s assigned a value but it is never used", field)
		}
	}

	res.UnusedFunctions = unusedFunctions(native, detected)
	res.Counters[CounterFunctionsUnused] = len(res.UnusedFunctions)

	return res, nil
}

func (p *CallSitePass) annotateDirectCall(
	doc *document.Document,
	native *schema.Native,
	res *Result,
	i int,
	line string,
	call DirectCall,
	detected map[string]bool,
) {
	indent := common.IndentOf(line)

	if call.Handle != canonicalHandle {
		doc.InsertBefore(i, indent+"# FIXME: wgpu func calls must be done from libf")
	}

	sig, ok := native.Functions[call.Symbol]
	if !ok {
		msg := "unknown C function " + call.Symbol
		doc.InsertBefore(i, indent+"# FIXME: "+msg)
		res.Diagnostics.AddError(msg, call.Symbol, i)

		return
	}

	detected[call.Symbol] = true

	// The literal symbol name becomes a placeholder, the statement
	// terminator goes.
	anno := strings.ReplaceAll(sig, call.Symbol, "f")
	anno = strings.TrimSuffix(anno, ";")
	doc.InsertBefore(i, indent+markerSignature+" "+anno)

	res.Counters[CounterCallsValidated]++
}

// annotateUseSites inserts the signature comments for every dispatch point,
// in assignment order, and returns the set of fields that had a use site.
func (p *CallSitePass) annotateUseSites(
	doc *document.Document,
	native *schema.Native,
	res *Result,
	uses map[string]useSite,
	useOrder []string,
	assignments map[string][]string,
	detected map[string]bool,
) map[string]bool {
	consumed := map[string]bool{}

	for _, field := range useOrder {
		u := uses[field]
		indent := common.IndentOf(u.line)
		consumed[field] = true

		symbols := assignments[field]
		if common.IsEmpty(symbols) {
			msg := "no assignments to indirection field " + field
			doc.InsertBefore(u.index, indent+"# FIXME: "+msg)
			res.Diagnostics.AddError(msg, field, u.index)

			continue
		}

		for _, symbol := range symbols {
			detected[symbol] = true
			doc.InsertBefore(u.index,
				indent+markerSignature+" "+strings.TrimSuffix(native.Functions[symbol], ";"))

			res.Counters[CounterCallsValidated]++
		}
	}

	return consumed
}

// unusedFunctions returns the schema functions never observed as a call,
// minus the ignore list, sorted.
func unusedFunctions(native *schema.Native, detected map[string]bool) []string {
	var unused []string

outer:
	for name := range native.Functions {
		if detected[name] {
			continue
		}

		for _, prefix := range ignoredFunctionPrefixes {
			if strings.HasPrefix(name, prefix) {
				continue outer
			}
		}

		unused = append(unused, name)
	}

	sort.Strings(unused)

	return unused
}
