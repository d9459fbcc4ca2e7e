// Package main provides the mhcnames command-line tool.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mhctools/mhcnames/internal/data"
	"github.com/mhctools/mhcnames/internal/mhc"
	"github.com/mhctools/mhcnames/internal/output"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var logger = zap.NewNop()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "mhcnames",
		Short: "Resolve MHC nomenclature into canonical form",
		Long: `mhcnames resolves free-form MHC identifiers (species prefixes, genes,
alleles, point mutations) into a normalized structured representation.`,
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			return initLogger(verbose)
		},
	}

	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")
	cmd.PersistentFlags().String("data-dir", "", "directory with reference table overrides")
	cmd.PersistentFlags().Bool("json", false, "write JSON instead of tab-delimited output")
	_ = viper.BindPFlag("data_dir", cmd.PersistentFlags().Lookup("data-dir"))
	_ = viper.BindPFlag("output.json", cmd.PersistentFlags().Lookup("json"))

	cmd.AddCommand(newSpeciesCmd())
	cmd.AddCommand(newNormalizeCmd())
	cmd.AddCommand(newMutationCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

func initConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	viper.SetConfigName(".mhcnames")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(home)
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	return nil
}

func initLogger(verbose bool) error {
	var err error
	if verbose {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	return nil
}

// loadRegistry builds the species registry from either the embedded
// reference tables or a data_dir override.
func loadRegistry() (*mhc.Registry, error) {
	var (
		tables *data.Tables
		err    error
	)
	if dir := viper.GetString("data_dir"); dir != "" {
		logger.Debug("loading reference tables", zap.String("dir", dir))
		tables, err = data.LoadDir(dir)
	} else {
		tables, err = data.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("loading reference tables: %w", err)
	}
	return mhc.NewRegistry(tables, logger), nil
}

// recordWriter is satisfied by both output writers.
type recordWriter interface {
	Write(*output.Record) error
	Flush() error
}

func newWriter(w io.Writer) recordWriter {
	if viper.GetBool("output.json") {
		return output.NewJSONWriter(w)
	}
	return output.NewTabWriter(w)
}
