package patch

import (
	"fmt"
	"strings"

	"bindsync/internal/common"
	"bindsync/internal/document"
	"bindsync/internal/schema"
)

// StructLiteralPass locates new_struct()/new_struct_p() construction spans
// via balanced-paren tracking and validates them against the native struct
// declarations: helper/pointer-form agreement, struct existence, field
// existence, and a trailing "# not used:" comment per unassigned field.
//
// Single-line and collapsed literals cannot be field-checked in place; they
// get a separator nudge so the external formatter breaks them into block
// form, and the next run validates them fully.
type StructLiteralPass struct{}

// pendingSpan tracks an in-progress literal while its closing paren is
// still being located.
type pendingSpan struct {
	start  int
	depth  int
	active bool
}

// Name implements Pass.
func (p *StructLiteralPass) Name() string {
	return "struct-literal"
}

// Apply implements Pass.
func (p *StructLiteralPass) Apply(doc *document.Document, native *schema.Native) (*Result, error) {
	res := newResult()

	var span pendingSpan

	for i, line := range doc.Scan() {
		if col, ok := MatchLiteralOpen(line); ok {
			span = pendingSpan{start: i, active: true}
			line = line[col:]
		} else if !span.active {
			continue
		}

		closed, err := span.consume(line)
		if err != nil {
			return nil, err
		}

		if closed {
			p.validate(doc, native, res, span.start, i)
			res.Counters[CounterStructsValidated]++
			span.active = false
		}
	}

	return res, nil
}

// consume advances brace tracking over one line. An in-line "#" comment
// suppresses the rest of the line. Returns true when depth returns to zero.
func (s *pendingSpan) consume(line string) (bool, error) {
	for _, c := range line {
		switch c {
		case '#':
			return false, nil
		case '(':
			s.depth++
		case ')':
			s.depth--

			if s.depth < 0 {
				return false, fmt.Errorf(
					"unbalanced parens in struct literal starting at line %d", s.start+1)
			}

			if s.depth == 0 {
				return true, nil
			}
		}
	}

	return false, nil
}

// validate checks one literal span. i1 and i2 address the opening and
// closing lines.
func (p *StructLiteralPass) validate(
	doc *document.Document,
	native *schema.Native,
	res *Result,
	i1, i2 int,
) {
	lines := doc.Span(i1, i2)
	indent := common.IndentOf(lines[len(lines)-1])

	if len(lines) == 1 {
		// Single line: a comma before the closing paren makes the external
		// formatter explode it into block form on the next round.
		res.Diagnostics.AddInfo(
			"made a struct multiline, rerun to validate the struct", "", i1)

		line := lines[0]
		j := strings.LastIndex(line, ")")
		doc.Replace(i1, line[:j]+","+line[j:])

		return
	}

	if len(lines) == 3 && strings.Contains(lines[1], "=") {
		// Collapsed triplet: same treatment, comma after the middle line.
		res.Diagnostics.AddInfo(
			"made a struct multiline, rerun to validate the struct", "", i1)
		doc.Replace(i1+1, lines[1]+",")

		return
	}

	// Block-formatted: the second line names the struct, optionally
	// pointer-suffixed.
	name := strings.Trim(strings.TrimSpace(lines[1]), `,"`)
	structName := strings.Trim(name, " *")

	if strings.HasSuffix(name, "*") {
		if !strings.Contains(lines[0], "new_struct_p") {
			doc.InsertBefore(i1, indent+markerFixmeInvalid+" struct, use new_struct_p()")
		}
	} else if strings.Contains(lines[0], "new_struct_p") {
		doc.InsertBefore(i1, indent+markerFixmeInvalid+" struct, use new_struct()")
	}

	fields, ok := native.Structs[structName]
	if !ok {
		msg := "unknown C struct " + structName
		doc.InsertBefore(i1, indent+"# FIXME: "+msg)
		res.Diagnostics.AddError(msg, structName, i1)

		return
	}

	var decls []string
	for key, typ := range fields.All() {
		decls = append(decls, key+": "+typ)
	}

	doc.InsertBefore(i1, indent+markerSignature+" "+strings.Join(decls, ", "))

	keysFound := p.checkFieldKeys(doc, res, lines, fields, structName, indent, i1)

	// One trailing comment per declared field the literal never assigns.
	var trailer []string

	for _, key := range fields.Keys() {
		if !keysFound[key] {
			trailer = append(trailer, indent+"    # not used: "+key)
		}
	}

	if !common.IsEmpty(trailer) {
		doc.InsertBefore(i2, strings.Join(trailer, "\n"))
	}
}

// checkFieldKeys interprets every interior line as a field assignment and
// flags keys the declaration does not know.
func (p *StructLiteralPass) checkFieldKeys(
	doc *document.Document,
	res *Result,
	lines []string,
	fields *schema.Fields,
	structName, indent string,
	i1 int,
) map[string]bool {
	keysFound := map[string]bool{}

	for j := 2; j < len(lines)-1; j++ {
		key, _, _ := strings.Cut(lines[j], "=")
		key = strings.TrimSpace(key)

		if strings.HasPrefix(key, "# not used:") {
			key = strings.TrimSpace(strings.TrimPrefix(key, "# not used:"))
		} else if strings.HasPrefix(key, "#") {
			continue
		}

		keysFound[key] = true

		if !fields.Has(key) {
			msg := fmt.Sprintf("unknown C struct field %s.%s", structName, key)
			doc.InsertBefore(i1+j, indent+"# FIXME: "+msg)
			res.Diagnostics.AddError(msg, structName+"."+key, i1+j)
		}
	}

	return keysFound
}
