package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mhctools/mhcnames/internal/data"
)

// Configuration keys recognized by mhcnames, in display order.
var configKeys = []struct {
	name string
	help string
}{
	{"data_dir", "directory containing reference table overrides"},
	{"output.json", "always write JSON instead of tab-delimited records"},
}

func knownConfigKey(key string) bool {
	for _, k := range configKeys {
		if k.name == key {
			return true
		}
	}
	return false
}

func configKeyNames() string {
	names := make([]string, len(configKeys))
	for i, k := range configKeys {
		names[i] = k.name
	}
	return strings.Join(names, ", ")
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage mhcnames configuration",
		Long:  "Show, get, or set configuration values. Config is stored in ~/.mhcnames.yaml.",
		Example: `  mhcnames config                      # show all config
  mhcnames config set output.json true # always emit JSON
  mhcnames config set data_dir ~/mhc-tables
  mhcnames config get data_dir`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow()
		},
	}

	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigGetCmd())

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(args[0], args[1])
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(args[0])
		},
	}
}

func runConfigShow() error {
	for _, k := range configKeys {
		val := viper.Get(k.name)
		if val == nil {
			fmt.Printf("# %s (unset) - %s\n", k.name, k.help)
			continue
		}
		fmt.Printf("%s: %v\n", k.name, val)
	}
	return nil
}

func runConfigSet(key, value string) error {
	if !knownConfigKey(key) {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, configKeyNames())
	}

	switch key {
	case "output.json":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%s expects true or false, got %q", key, value)
		}
		viper.Set(key, b)
	case "data_dir":
		// Reject directories that do not hold a complete table set, so a
		// typo here cannot break every later invocation.
		if _, err := data.LoadDir(value); err != nil {
			return fmt.Errorf("%s is not a usable table directory: %w", value, err)
		}
		viper.Set(key, value)
	}

	cfgFile := viper.ConfigFileUsed()
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot determine home directory: %w", err)
		}
		cfgFile = filepath.Join(home, ".mhcnames.yaml")
	}

	if err := viper.WriteConfigAs(cfgFile); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Set %s = %s in %s\n", key, value, cfgFile)
	return nil
}

func runConfigGet(key string) error {
	if !knownConfigKey(key) {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, configKeyNames())
	}
	val := viper.Get(key)
	if val == nil {
		return fmt.Errorf("key %q is not set", key)
	}
	fmt.Println(val)
	return nil
}
