package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/diaglens/diaglens/pkg/explore"
)

var exploreDataset string

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactively explore a diagnostic dataset",
	Long: `Launch an interactive TUI over a diagnostic dataset.

Features:
  - Query field re-filtering on every keystroke
  - Two panes: matching errors and matching bindings
  - Module cycling (Ctrl-n / Ctrl-p) or browsing all modules at once
  - Range queries like "8", "1:2-3:4", "1:2-3 text"`,
	RunE: runExplore,
}

func init() {
	exploreCmd.Flags().StringVar(&exploreDataset, "dataset", "trace.yaml", "Path to dataset file or .db datastore")
	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	ds, err := openDataset(exploreDataset)
	if err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	model := explore.New(ds)

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running explore TUI: %w", err)
	}

	return nil
}
