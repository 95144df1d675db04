package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ossianhempel/sl-cli/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sl configuration",
	Long: `View or edit the local configuration in ~/.sl-cli.json.
Valid keys: origin (default trip origin), home and work (named places for
'sl plan'), timezone (IANA zone for parsing and printing times).`,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show all configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		var pairs [][2]string
		for _, key := range config.Keys() {
			value, _ := cfg.Get(key)
			pairs = append(pairs, [2]string{key, value})
		}
		return newRenderer(time.Local).KeyValues(os.Stdout, pairs)
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		value, err := cfg.Get(args[0])
		if err != nil {
			return err
		}
		return newRenderer(time.Local).KeyValues(os.Stdout, [][2]string{{args[0], value}})
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		if !flagQuiet {
			fmt.Printf("Saved %s = %s\n", args[0], args[1])
		}
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Clear a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Set(args[0], ""); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		if !flagQuiet {
			fmt.Printf("Cleared %s\n", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configListCmd, configGetCmd, configSetCmd, configUnsetCmd)
}
