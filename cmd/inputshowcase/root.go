package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/muurk/inputshowcase/internal/config"
	"github.com/muurk/inputshowcase/internal/logging"
	"github.com/muurk/inputshowcase/internal/tui"
	"github.com/muurk/inputshowcase/internal/ui"
	"github.com/muurk/inputshowcase/internal/version"
)

// errInvalid is returned by commands whose input failed validation, so the
// process exits non-zero after the failure has been printed.
var errInvalid = errors.New("input is invalid")

// rootOptions holds the persistent flags shared by every command
type rootOptions struct {
	configPath string
	logLevel   string
	logFile    string
	plain      bool
	screen     string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "inputshowcase",
		Short: "Text Input Showcase",
		Long: `A terminal showcase of text input patterns.

Demonstrates card number, expiry, phone and address formatting, form
validation, hashtag and mention suggestions, search, chat and clipboard
handling in an interactive TUI.

If no command is specified, the interactive showcase will launch automatically.`,
		Version:       version.Full(),
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.configPath != "" {
				config.SetConfigPath(opts.configPath)
			}
			if err := logging.InitializeWithOutput(opts.logLevel, opts.logFile); err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default behavior: run the showcase when no subcommand provided
			return runShowcase(cmd, opts)
		},
	}

	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Configuration file (default: $XDG_CONFIG_HOME/inputshowcase/config.yaml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); silent when unset")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file instead of stderr")
	flags.BoolVar(&opts.plain, "plain", false, "Plain output without boxes or colors")

	rootCmd.Flags().StringVar(&opts.screen, "screen", "", "Open this screen instead of the menu ("+strings.Join(config.ScreenNames, ", ")+")")

	rootCmd.AddCommand(
		newFormatCmd(opts),
		newValidateCmd(opts),
		newPostCmd(opts),
		newSearchCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(opts),
	)

	return rootCmd
}

func newVersionCmd(opts *rootOptions) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			if !verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "inputshowcase %s\n", version.Full())
				return
			}
			info := version.Get()
			newPrinter(cmd, opts).PrintValue("inputshowcase", info.Version,
				ui.Detail{Key: "Commit", Value: info.Commit},
				ui.Detail{Key: "Built", Value: info.BuiltAt},
				ui.Detail{Key: "Go", Value: info.GoVersion},
				ui.Detail{Key: "Platform", Value: info.Platform},
			)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Include build details")
	return cmd
}

func runShowcase(cmd *cobra.Command, opts *rootOptions) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	name := opts.screen
	if name == "" {
		name = reg.Preferences.DefaultScreen
	}

	model := tui.NewAppModel(reg, tui.ParseScreen(name))

	var programOpts []tea.ProgramOption
	if reg.Preferences.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	logging.Info("Starting showcase")
	p := tea.NewProgram(model, programOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("showcase error: %w", err)
	}

	return nil
}

// loadRegistry reads the configuration file, falling back to defaults when
// it does not exist.
func loadRegistry() (*config.Registry, error) {
	path, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}
	reg, err := config.LoadRegistryFrom(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return reg, nil
}

// newPrinter returns a printer for cmd's output. Output that is not a
// terminal, or --plain, gets undecorated text.
func newPrinter(cmd *cobra.Command, opts *rootOptions) *ui.Printer {
	out := cmd.OutOrStdout()
	plain := opts.plain
	if f, ok := out.(*os.File); !ok || !ui.IsTerminal(f) {
		plain = true
	}
	return ui.NewPrinter(out).SetPlain(plain)
}

// readInput joins args, or reads stdin when no args are given and stdin is
// not a terminal. A single trailing newline from stdin is dropped.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && ui.IsTerminal(f) {
		return "", fmt.Errorf("no input: pass it as an argument or pipe it on stdin")
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}
