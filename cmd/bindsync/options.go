package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"bindsync/internal/diagnostic"
	"bindsync/internal/format"
	"bindsync/internal/mapping"
	"bindsync/internal/schema"
)

type options struct {
	headerSchema string
	idlSchema    string
	nameMap      string
	outDir       string
	formatter    string
}

func defaultOptions() *options {
	return &options{
		headerSchema: "resources/wgpu_native.yaml",
		idlSchema:    "resources/webgpu_idl.yaml",
		outDir:       ".",
	}
}

// loadAll reads both schemas and the name map.
func (o *options) loadAll() (*schema.Native, *schema.Interface, *mapping.NameMap, error) {
	native, err := schema.LoadNative(o.headerSchema)
	if err != nil {
		return nil, nil, nil, err
	}

	iface, err := schema.LoadInterface(o.idlSchema)
	if err != nil {
		return nil, nil, nil, err
	}

	nm := mapping.DefaultNameMap()
	if o.nameMap != "" {
		nm, err = mapping.LoadNameMap(o.nameMap)
		if err != nil {
			return nil, nil, nil, err
		}
	}

	return native, iface, nm, nil
}

func (o *options) newFormatter() format.Formatter {
	if o.formatter == "" {
		return &format.Normalizer{}
	}

	parts := strings.Fields(o.formatter)

	return &format.Command{Name: parts[0], Args: parts[1:]}
}

var errorColor = color.New(color.FgRed)

// printDiagnostics writes the report stream, errors in red.
func printDiagnostics(w io.Writer, d diagnostic.Diagnostics) {
	for _, line := range d.Lines() {
		if strings.HasPrefix(line, "ERROR:") {
			errorColor.Fprintln(w, line)
		} else {
			fmt.Fprintln(w, line)
		}
	}
}
