package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"bindsync/internal/schema"
)

func newDumpCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "dump {native|idl}",
		Short: "Dump a parsed schema for inspection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "native":
				n, err := schema.LoadNative(opts.headerSchema)
				if err != nil {
					return err
				}

				spew.Fdump(cmd.OutOrStdout(), n)
			case "idl":
				i, err := schema.LoadInterface(opts.idlSchema)
				if err != nil {
					return err
				}

				spew.Fdump(cmd.OutOrStdout(), i)
			default:
				return fmt.Errorf("unknown schema %q (expected native or idl)", args[0])
			}

			return nil
		},
	}
}
