package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/henri123lemoine/tourguide/internal/assets"
	"github.com/henri123lemoine/tourguide/internal/config"
	"github.com/henri123lemoine/tourguide/internal/content"
	"github.com/henri123lemoine/tourguide/internal/debug"
	"github.com/henri123lemoine/tourguide/internal/render"
	"github.com/henri123lemoine/tourguide/internal/ui"
)

// styledWidth is the wrap column for glamour output outside the TUI.
const styledWidth = 80

func newSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "List the documentation sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for i, item := range content.Navigation() {
				fmt.Fprintf(out, "%d  %-20s %s\n", i+1, item.Label, item.Icon)
			}
			return nil
		},
	}
}

func newShowCmd(opts *options) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "show <section>",
		Short: "Print one section",
		Long: `Print one section as Markdown.

The output is styled when writing to a terminal and plain Markdown
otherwise. Section names are matched exactly; an unknown name prints
nothing.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: sectionKeys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			guide, err := content.Load()
			if err != nil {
				return err
			}

			doc := render.RenderKey(args[0], guide)
			if len(doc) == 0 {
				debug.Log("show: unknown section %q", args[0])
				return nil
			}

			out := cmd.OutOrStdout()
			md := render.Markdown(doc, markdownOptions(cfg))
			if !plain && isTerminal(out) {
				r, err := ui.NewMarkdownRenderer(cfg.UI.Theme, styledWidth)
				if err != nil {
					debug.Warn("markdown renderer: %v", err)
				}
				md = ui.StyleMarkdown(r, md)
			}
			_, err = io.WriteString(out, md)
			return err
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print plain Markdown even on a terminal")
	return cmd
}

func newExportCmd(opts *options) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every section as one Markdown document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			guide, err := content.Load()
			if err != nil {
				return err
			}

			md := render.Markdown(render.RenderAll(guide), markdownOptions(cfg))
			if outPath == "" {
				_, err = io.WriteString(cmd.OutOrStdout(), md)
				return err
			}

			if err := os.WriteFile(outPath, []byte(md), 0644); err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default stdout)")
	return cmd
}

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the tourguide config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented default config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath(opts)
			if err := config.CreateDefaultConfigFile(path, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), configPath(opts))
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the config for problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromPath(configPath(opts))
			if err != nil {
				return err
			}
			warnings := cfg.Validate()
			for _, w := range warnings {
				fmt.Fprintf(cmd.OutOrStdout(), "Warning: %s\n", w)
			}
			if len(warnings) > 0 {
				return fmt.Errorf("config has %d warning(s)", len(warnings))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Config OK")
			return nil
		},
	}

	cmd.AddCommand(initCmd, pathCmd, validateCmd)
	return cmd
}

func configPath(opts *options) string {
	if opts.configPath != "" {
		return opts.configPath
	}
	return config.ConfigPath()
}

func markdownOptions(cfg *config.Config) render.MarkdownOptions {
	if !cfg.UI.ShowMissingImages {
		return render.MarkdownOptions{}
	}
	return render.MarkdownOptions{Assets: assets.New(cfg.General.AssetDir)}
}

func sectionKeys() []string {
	var keys []string
	for _, s := range content.Sections() {
		keys = append(keys, s.String())
	}
	return keys
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
