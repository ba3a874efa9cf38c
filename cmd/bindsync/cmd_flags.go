package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bindsync/internal/mapping"
)

func newCheckFlagsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check-flags",
		Short: "Report flag mismatches between the interface and native schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheckFlags(cmd, opts)
		},
	}
}

func runCheckFlags(cmd *cobra.Command, opts *options) error {
	native, iface, nm, err := opts.loadAll()
	if err != nil {
		return err
	}

	d := mapping.CompareFlags(native, iface, nm)
	printDiagnostics(cmd.OutOrStdout(), d)

	if !d.HasErrors() && len(d.Infos) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Flags agree")
	}

	return nil
}
