package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/diaglens/diaglens/pkg/filter"
	"github.com/diaglens/diaglens/pkg/query"
	"github.com/diaglens/diaglens/pkg/types"
)

var (
	queryDataset string
	queryModule  string
	queryColor   string
)

// queryStyles holds color formatters for query output
type queryStyles struct {
	module  *color.Color
	rng     *color.Color
	heading *color.Color
	text    *color.Color
}

// newQueryStyles creates color formatters for query output.
// enabled=false respects --color=never and NO_COLOR.
func newQueryStyles(enabled bool) *queryStyles {
	s := &queryStyles{
		module:  color.New(color.Bold, color.FgHiWhite),
		rng:     color.New(color.FgYellow),
		heading: color.New(color.Bold, color.FgHiBlue),
		text:    color.New(color.FgHiGreen),
	}

	if !enabled {
		s.module.DisableColor()
		s.rng.DisableColor()
		s.heading.DisableColor()
		s.text.DisableColor()
	}

	return s
}

var queryCmd = &cobra.Command{
	Use:   "query [query string]",
	Short: "Run a one-shot range query against a dataset",
	Long: `Parse a location-range query and print every matching error and binding
record. With no query string, everything matches.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringVar(&queryDataset, "dataset", "trace.yaml", "Path to dataset file or .db datastore")
	queryCmd.Flags().StringVar(&queryModule, "module", "", "Restrict the query to one module")
	queryCmd.Flags().StringVar(&queryColor, "color", "auto", "Color output: auto, always, never")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	ds, err := openDataset(queryDataset)
	if err != nil {
		return err
	}

	input := ""
	if len(args) == 1 {
		input = args[0]
	}

	q, err := query.Parse(input)
	if err != nil {
		return err
	}

	scope := *ds
	if queryModule != "" {
		mod := ds.Module(queryModule)
		if mod == nil {
			return fmt.Errorf("unknown module: %s", queryModule)
		}
		scope = types.Dataset{Modules: []types.Module{*mod}}
	}

	results, err := filter.Apply(scope, q)
	if err != nil {
		return err
	}

	enabled := colorEnabled(queryColor)
	printResults(cmd.OutOrStdout(), results, newQueryStyles(enabled))
	return nil
}

// colorEnabled resolves the --color flag against terminal detection.
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}

func printResults(w io.Writer, results []filter.ModuleResult, s *queryStyles) {
	total := 0
	for _, res := range results {
		fmt.Fprintf(w, "%s\n", s.module.Sprintf("module %s", res.Name))

		if len(res.Errors) > 0 {
			fmt.Fprintf(w, "  %s\n", s.heading.Sprint("errors"))
			for _, e := range res.Errors {
				fmt.Fprintf(w, "    %s  %s\n", s.rng.Sprintf("%-12s", e.Range), e.Message)
				total++
			}
		}

		if len(res.Bindings) > 0 {
			fmt.Fprintf(w, "  %s\n", s.heading.Sprint("bindings"))
			for _, b := range res.Bindings {
				fmt.Fprintf(w, "    %s  %s = %s -> %s\n",
					s.rng.Sprintf("%-12s", b.Range),
					s.text.Sprint(b.Key),
					strings.TrimSpace(b.Binding),
					b.Result,
				)
				total++
			}
		}
	}

	if !quiet {
		fmt.Fprintf(w, "\n%d matching records\n", total)
	}
}
