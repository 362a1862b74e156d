package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/henri123lemoine/tourguide/internal/app"
	"github.com/henri123lemoine/tourguide/internal/config"
	"github.com/henri123lemoine/tourguide/internal/content"
	"github.com/henri123lemoine/tourguide/internal/debug"
)

// options holds the flags shared by every command.
type options struct {
	configPath string
	section    string
	debug      bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the root command and returns the process exit code. The debug
// log is closed on every path, including command errors.
func run(args []string) int {
	defer debug.Close()

	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "tourguide",
		Short: "Browse the " + content.MenuTitle + " documentation",
		Long: `tourguide is a terminal viewer for the ` + content.AppTitle + ` project report.

Pick a section from the sidebar to read its abstract, company profile,
system analysis and design, module list, database schema and the steps
for running the application.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to config file (default "+config.ConfigPath()+")")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Write a debug log to "+debug.DefaultPath())
	cmd.Flags().StringVarP(&opts.section, "section", "s", "", "Section to show at startup")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !opts.debug {
			return nil
		}
		if err := debug.Enable(debug.DefaultPath()); err != nil {
			return fmt.Errorf("enable debug log: %w", err)
		}
		return nil
	}

	cmd.AddCommand(
		newSectionsCmd(),
		newShowCmd(opts),
		newExportCmd(opts),
		newConfigCmd(opts),
	)

	return cmd
}

// loadConfig reads the config selected by --config and reports its warnings.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.LoadFromPath(configPath(opts))
	if err != nil {
		return nil, err
	}
	for _, w := range cfg.Validate() {
		debug.Warn("config: %s", w)
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	if opts.section != "" {
		s, err := content.LookupSection(opts.section)
		if err != nil {
			return err
		}
		cfg.General.DefaultSection = s.String()
	}

	guide, err := content.Load()
	if err != nil {
		return err
	}

	debug.Log("starting TUI at %s", cfg.InitialSection())

	model := app.New(cfg, guide)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run TUI: %w", err)
	}
	return nil
}
