package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mhctools/mhcnames/internal/output"
)

func newSpeciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "species <name>...",
		Short: "Resolve species prefixes",
		Long: `Resolve one or more species names to their canonical prefix and common
species name. Historical group prefixes (DLA, ELA, OLA, SLA, RT1) keep
their group identity.`,
		Example: `  mhcnames species HLA h-2 ela
  mhcnames species --json bola`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry()
			if err != nil {
				return err
			}
			w := newWriter(cmd.OutOrStdout())
			for _, name := range args {
				prefix, ok := reg.FindSpeciesPrefix(name)
				if !ok {
					return fmt.Errorf("unknown species %q", name)
				}
				sp, ok := reg.FindSpecies(prefix)
				if !ok {
					return fmt.Errorf("unknown species %q", name)
				}
				if err := w.Write(output.SpeciesRecord(prefix, sp)); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
}
