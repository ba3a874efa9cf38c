package main

import (
	"github.com/spf13/cobra"
)

func newSyncCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sync <binding-file>",
		Short: "Regenerate the mappings and re-annotate the binding source in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runMappings(cmd, opts); err != nil {
				return err
			}

			if err := runCheckFlags(cmd, opts); err != nil {
				return err
			}

			return runPatch(cmd, opts, args[0], true)
		},
	}
}
