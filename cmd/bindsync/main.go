package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	opts := defaultOptions()

	rootCmd := &cobra.Command{
		Use:   "bindsync",
		Short: "Keep a hand-written wgpu-native binding in sync with its schemas",
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.headerSchema, "header-schema", opts.headerSchema,
		"native header schema (YAML)")
	flags.StringVar(&opts.idlSchema, "idl-schema", opts.idlSchema,
		"interface description schema (YAML)")
	flags.StringVar(&opts.nameMap, "name-map", "",
		"name-map override file (YAML), replaces the built-in table")
	flags.StringVar(&opts.outDir, "out-dir", opts.outDir,
		"root directory for generated artifacts")
	flags.StringVar(&opts.formatter, "formatter", "",
		"external formatter command for patched sources, e.g. 'black -'")

	rootCmd.AddCommand(newSyncCmd(opts))
	rootCmd.AddCommand(newMappingsCmd(opts))
	rootCmd.AddCommand(newPatchCmd(opts))
	rootCmd.AddCommand(newCheckFlagsCmd(opts))
	rootCmd.AddCommand(newDumpCmd(opts))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
