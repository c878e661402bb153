package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var modulesDataset string

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List modules in a dataset",
	RunE:  runModules,
}

func init() {
	modulesCmd.Flags().StringVar(&modulesDataset, "dataset", "trace.yaml", "Path to dataset file or .db datastore")
	rootCmd.AddCommand(modulesCmd)
}

func runModules(cmd *cobra.Command, args []string) error {
	ds, err := openDataset(modulesDataset)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, m := range ds.Modules {
		if verbose {
			fmt.Fprintf(out, "%s\t%d errors\t%d bindings\n", m.Name, len(m.Errors), len(m.Bindings))
		} else {
			fmt.Fprintln(out, m.Name)
		}
	}
	return nil
}
