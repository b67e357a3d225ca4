package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/muurk/inputshowcase/internal/config"
	"github.com/muurk/inputshowcase/internal/ui"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		Long: `Manage the configuration file holding suggestion lists, character limits
and preferences.

The file lives at $XDG_CONFIG_HOME/inputshowcase/config.yaml unless --config is given.
A missing file is not an error; built-in defaults are used.`,
	}

	configCmd.AddCommand(
		newConfigInitCmd(opts),
		newConfigShowCmd(),
		newConfigPathCmd(),
		newConfigAddCmd(opts, "add-hashtag", "Add a hashtag suggestion", (*config.Registry).AddHashtag),
		newConfigAddCmd(opts, "add-mention", "Add a mention suggestion", (*config.Registry).AddMention),
	)
	return configCmd
}

func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the defaults",
		Example: `  inputshowcase config init
  inputshowcase config init --force`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}

			if _, statErr := os.Stat(path); statErr == nil && !force {
				in, ok := cmd.InOrStdin().(*os.File)
				if ok && ui.IsTerminal(in) {
					force = ui.Confirm(in, cmd.OutOrStdout(),
						"A configuration file already exists at "+path,
						"Overwrite it with the defaults?")
					if !force {
						fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
						return nil
					}
				}
			}

			path, err = config.CreateDefaultConfig(force)
			if err != nil {
				return err
			}

			newPrinter(cmd, opts).PrintSuccess("Configuration written", ui.Detail{Key: "Path", Value: path})
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry()
			if err != nil {
				return err
			}
			data, err := reg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newConfigAddCmd(opts *rootOptions, use, short string, add func(*config.Registry, string) bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <value>...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			reg, err := config.LoadRegistryFrom(path)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			added := 0
			for _, v := range args {
				if add(reg, v) {
					added++
				}
			}

			p := newPrinter(cmd, opts)
			if added == 0 {
				p.PrintWarning("Nothing added", ui.Detail{Key: "Reason", Value: "already present or empty"})
				return nil
			}
			if err := reg.SaveTo(path); err != nil {
				return err
			}
			p.PrintSuccess("Suggestions updated",
				ui.Detail{Key: "Added", Value: strconv.Itoa(added)},
				ui.Detail{Key: "Path", Value: path},
			)
			return nil
		},
	}
}
