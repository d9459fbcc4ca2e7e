package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mhctools/mhcnames/internal/mhc"
	"github.com/mhctools/mhcnames/internal/output"
)

func newMutationCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "mutation <text>...",
		Short:   "Parse point-mutation notation",
		Example: `  mhcnames mutation N29L t80m`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := newWriter(cmd.OutOrStdout())
			for _, text := range args {
				m, err := mhc.ParseMutation(text)
				if err != nil {
					return err
				}
				rec := output.NewRecord().
					Set("mutation", m.NormalizedString()).
					Set("position", strconv.Itoa(m.Pos)).
					Set("aa_original", string(m.AAOriginal)).
					Set("aa_mutant", string(m.AAMutant))
				if err := w.Write(rec); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
}
