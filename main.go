package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mudler/go-pluggable"
	"github.com/spf13/cobra"

	"nspanel-pages/page"
)

type options struct {
	config string
	layout string
	debug  bool
	export string
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "nspanel-pages",
		Short: "Page navigator for a wall panel display",
		Long: `nspanel-pages shows a set of pages on a panel style display.
Pages come from a YAML layout and optionally from plugins, and are
navigated with next/previous, bookmarks (0-9) or by uuid.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPanel(cmd, opts)
		},
	}
	root.PersistentFlags().StringVarP(&opts.config, "config", "c", "", "Settings file")
	root.PersistentFlags().StringVarP(&opts.layout, "layout", "l", "", "Page layout file (overrides settings)")
	root.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "Write a debug log")

	inspect := &cobra.Command{
		Use:   "inspect",
		Short: "Load the layout and print the page table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd, opts)
		},
	}
	inspect.Flags().StringVar(&opts.export, "export", "", "Also write the loaded layout to this YAML file")
	root.AddCommand(inspect)

	return root
}

// panel is everything the commands share after startup.
type panel struct {
	settings Settings
	pages    *page.Manager[panelPage]
	title    string
	log      *slog.Logger
}

func setup(opts options) (*panel, error) {
	s, err := LoadSettings(opts.config)
	if err != nil {
		return nil, err
	}
	if opts.layout != "" {
		s.Layout = opts.layout
	}
	if opts.debug {
		s.Log.Enabled = true
		s.Log.Level = "debug"
	}
	log := newLogger(s.Log)

	layout, err := LoadLayout(s.Layout)
	if err != nil {
		return nil, err
	}
	title := s.Title
	if layout.Title != "" {
		title = layout.Title
	}

	pages := page.NewManager[panelPage](page.WithLogger(log))
	if err := layout.Apply(pages, log); err != nil {
		return nil, err
	}
	return &panel{settings: s, pages: pages, title: title, log: log}, nil
}

func runPanel(_ *cobra.Command, opts options) error {
	p, err := setup(opts)
	if err != nil {
		return err
	}
	m := newModel(p.title, p.pages, p.log)
	if p.settings.Plugins.Enabled {
		src := newPluggableSource(p.settings.Plugins, p.log)
		event := pluggable.EventType(p.settings.Plugins.Event)
		m.plugins = func(existing []string) tea.Cmd {
			return runPagePlugins(src, event, existing, p.log)
		}
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run panel: %w", err)
	}
	return nil
}

func runInspect(cmd *cobra.Command, opts options) error {
	p, err := setup(opts)
	if err != nil {
		return err
	}
	printPageTable(cmd.OutOrStdout(), p.title, p.pages)
	if opts.export != "" {
		if err := layoutOf(p.title, p.pages).WriteYAML(opts.export); err != nil {
			return fmt.Errorf("export layout: %w", err)
		}
		p.log.Info("layout exported", "path", opts.export)
	}
	return nil
}

func printPageTable(w io.Writer, title string, pages *page.Manager[panelPage]) {
	head := lipgloss.NewStyle().Bold(true)
	muted := lipgloss.NewStyle().Foreground(panelMuted)

	snap := pages.Snapshot()
	fmt.Fprintln(w, head.Render(title))
	fmt.Fprintln(w, head.Render(fmt.Sprintf("  %-3s %-20s %-24s %-8s %s", "#", "UUID", "TITLE", "HIDDEN", "BOOKMARKS")))
	for i, p := range pages.All() {
		marker := " "
		if i == snap.Current {
			marker = "*"
		}
		ids := make([]string, 0, len(snap.Pages[i].Bookmarks))
		for _, id := range snap.Pages[i].Bookmarks {
			ids = append(ids, fmt.Sprint(id))
		}
		line := fmt.Sprintf("%s %-3d %-20s %-24s %-8t %s", marker, i, p.UUID(), p.Title(), p.Hidden(), strings.Join(ids, ","))
		if p.Hidden() {
			line = muted.Render(line)
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "%d page(s)\n", pages.Len())
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
