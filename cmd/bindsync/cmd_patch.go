package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"bindsync/internal/patch"
	"bindsync/internal/schema"
)

func newPatchCmd(opts *options) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "patch <binding-file>",
		Short: "Annotate native call sites and struct literals in a binding source",
		Long: `Run the annotation pipeline over a binding source file.

Stale annotations are removed, every native call gets its C signature as a
comment, and struct-literal helpers are checked against the header schema.
Output goes to stdout; use -w to overwrite the file in place.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatch(cmd, opts, args[0], overwrite)
		},
	}

	cmd.Flags().BoolVarP(&overwrite, "write", "w", false, "overwrite the file in place")

	return cmd
}

func runPatch(cmd *cobra.Command, opts *options, filename string, overwrite bool) error {
	source, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read binding source %s: %w", filename, err)
	}

	native, err := schema.LoadNative(opts.headerSchema)
	if err != nil {
		return err
	}

	res, err := patch.Run(string(source), native)
	if err != nil {
		return err
	}

	text, err := opts.newFormatter().Format(res.Text)
	if err != nil {
		return err
	}

	report := cmd.ErrOrStderr()
	printDiagnostics(report, res.Diagnostics)
	printCounters(report, res)

	if overwrite {
		return os.WriteFile(filename, []byte(text), 0o644)
	}

	_, err = io.WriteString(cmd.OutOrStdout(), text)

	return err
}

func printCounters(w io.Writer, res *patch.Result) {
	if n := res.Counters[patch.CounterLinesRemoved]; n > 0 {
		fmt.Fprintf(w, "Removed %d stale annotation lines\n", n)
	}

	fmt.Fprintf(w, "Validated %d C function calls\n", res.Counters[patch.CounterCallsValidated])
	fmt.Fprintf(w, "Validated %d C structs\n", res.Counters[patch.CounterStructsValidated])

	if len(res.UnusedFunctions) > 0 {
		fmt.Fprintf(w, "Not using %d functions: %s\n",
			len(res.UnusedFunctions), strings.Join(res.UnusedFunctions, ", "))
	}
}
