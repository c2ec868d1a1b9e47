package cmd

import (
	"fmt"
	"os"

	"ytguide/pkg/config"
	"ytguide/pkg/errors"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ytguide configuration",
	Long: `Show, locate and create the ytguide configuration file. Values from the
file can be overridden with YTGUIDE_* environment variables and flags.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Print the configuration after the file, environment and defaults are applied.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.NewWithError(errors.ExitCodeConfig, "Failed to encode configuration", err)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return errors.ConfigError("Failed to determine configuration path")
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with default values",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return errors.ConfigError("Failed to determine configuration path")
		}

		if _, err := os.Stat(path); err == nil && !configInitForce {
			return errors.NewWithSuggestion(errors.ExitCodeConfig,
				fmt.Sprintf("Configuration file already exists: %s", path),
				"Use --force to replace it")
		}

		if IsDryRun() {
			PrintDryRunAction("write configuration", map[string]string{"path": path})
			return nil
		}

		if err := config.Save(config.Default()); err != nil {
			return errors.FileError("Failed to write configuration", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Replace an existing configuration file")
}
