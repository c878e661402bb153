package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/diaglens/diaglens/pkg/serve"
)

var serveDataset string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as a streaming query server",
	Long: `Run diaglens as a long-lived streaming server that accepts range queries
via stdin and outputs filtered records via stdout using NDJSON format.

This mode is designed for integration with editor and GUI frontends.
The process loads the dataset once at startup and processes requests until
stdin closes or SIGTERM is received.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveDataset, "dataset", "trace.yaml", "Path to dataset file or .db datastore")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ds, err := openDataset(serveDataset)
	if err != nil {
		return err
	}

	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()

	srv := serve.NewServer(ds, cmd.InOrStdin(), cmd.OutOrStdout())
	return srv.Run(ctx)
}
