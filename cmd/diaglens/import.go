package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diaglens/diaglens/pkg/dataset"
	"github.com/diaglens/diaglens/pkg/store"
)

var (
	importDataset   string
	importDatastore string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a dataset file into a SQLite datastore",
	Long: `Read a YAML/JSON diagnostic dump and persist it into a SQLite datastore,
so large traces can be imported once and explored repeatedly. Re-importing
a module that is already present leaves the stored copy untouched.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().StringVar(&importDataset, "dataset", "trace.yaml", "Path to dataset file")
	importCmd.Flags().StringVar(&importDatastore, "datastore", "trace.db", "Path to SQLite datastore to write")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	ds, err := dataset.LoadFile(importDataset)
	if err != nil {
		return err
	}

	s, err := store.New(store.Config{Path: importDatastore})
	if err != nil {
		return fmt.Errorf("opening datastore: %w", err)
	}
	defer s.Close()

	if err := s.ImportDataset(ds); err != nil {
		return fmt.Errorf("importing dataset: %w", err)
	}

	if !quiet {
		records := 0
		for _, m := range ds.Modules {
			records += len(m.Errors) + len(m.Bindings)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d modules (%d records) into %s\n",
			len(ds.Modules), records, importDatastore)
	}
	return nil
}
