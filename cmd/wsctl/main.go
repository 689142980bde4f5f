// Command wsctl issues a single command against a running server's
// WebSocket control port and prints the normalized JSON reply.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aena11/rippled/endpoint"
	"github.com/Aena11/rippled/wsclient"
)

var (
	cfgFile string
	useWS2  bool
	timeout time.Duration
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "wsctl <command> [params-json]",
	Short: "Issue a command over a server's WebSocket control port",
	Long: `wsctl resolves a WebSocket endpoint from a server configuration file,
connects, sends one command (with optional JSON parameters), and prints
the normalized reply.`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "server.yaml", "server configuration file")
	rootCmd.Flags().BoolVar(&useWS2, "ws2", false, "resolve the ws2 protocol variant")
	rootCmd.Flags().DurationVar(&timeout, "timeout", wsclient.DefaultInvokeTimeout, "how long to wait for the response")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log traffic to stderr")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := endpoint.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	variant := endpoint.WS
	if useWS2 {
		variant = endpoint.WS2
	}

	ep, err := endpoint.Resolve(cfg, variant)
	if err != nil {
		return err
	}

	var params wsclient.Message
	if len(args) == 2 {
		if err := json.Unmarshal([]byte(args[1]), &params); err != nil {
			return fmt.Errorf("parse params: %w", err)
		}
	}

	opts := []wsclient.ClientOption{wsclient.WithInvokeTimeout(timeout)}
	if verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		opts = append(opts, wsclient.WithLogger(logger))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := wsclient.Connect(ctx, ep.URL(), opts...)
	if err != nil {
		return err
	}
	defer client.Close()

	result := client.Invoke(args[0], params)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
