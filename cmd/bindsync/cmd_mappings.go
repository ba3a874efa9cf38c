package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bindsync/internal/cache"
	"bindsync/internal/mapping"
)

func newMappingsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "mappings",
		Short: "Generate the _mappings.py lookup tables from the schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runMappings(cmd, opts)
		},
	}
}

func runMappings(cmd *cobra.Command, opts *options) error {
	native, iface, nm, err := opts.loadAll()
	if err != nil {
		return err
	}

	art := mapping.Synthesize(native, iface, nm)
	printDiagnostics(cmd.ErrOrStderr(), art.Diagnostics)

	store := &cache.Dir{Root: opts.outDir}
	if err := store.Write(mapping.ArtifactName, art.Text); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"Wrote %d enum mappings and %d struct-field mappings to %s\n",
		art.EnumCount, art.StructFieldCount, mapping.ArtifactName)

	return nil
}
