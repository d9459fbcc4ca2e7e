package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mhctools/mhcnames/internal/output"
)

func newNormalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <name>...",
		Short: "Resolve compound MHC identifiers",
		Long: `Resolve compound identifiers (species + gene + allele, in any historical
notation) into their structured canonical form.`,
		Example: `  mhcnames normalize H2Kk HLA-A0201
  mhcnames normalize --json "H-2-Kb"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry()
			if err != nil {
				return err
			}
			w := newWriter(cmd.OutOrStdout())
			for _, name := range args {
				rn, ok := reg.ResolveName(name)
				if !ok {
					return fmt.Errorf("no species prefix recognized in %q", name)
				}
				logger.Debug("resolved name",
					zap.String("name", name),
					zap.String("species", rn.Prefix),
					zap.String("gene", rn.Gene))
				if err := w.Write(output.ResolvedNameRecord(reg, name, rn)); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
}
