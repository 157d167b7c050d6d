package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/albertb/distancegraph/internal"
)

var (
	configPath string
	verbose    bool
	fake       bool
	window     string
	nowFlag    string
	img        string
	addr       string
	backend    string
)

var rootCmd = &cobra.Command{
	Use:           "distancegraph",
	Short:         "Chart walking and running distance",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the distance chart to a PNG",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, internal.Backend(backend))
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the distance screen over HTTP for development",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, internal.BackendDev)
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print distance totals and averages",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, internal.BackendSummary)
	},
}

func init() {
	defaultConfigPath := "config.yaml"
	if home, err := os.UserHomeDir(); err == nil {
		defaultConfigPath = filepath.Join(home, ".config", "distancegraph", "config.yaml")
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to the config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
	rootCmd.PersistentFlags().BoolVar(&fake, "fake", false, "use generated distance data instead of the configured source")
	rootCmd.PersistentFlags().StringVar(&window, "window", "", "time window to chart: day, week, month or year (default from config)")
	rootCmd.PersistentFlags().StringVar(&nowFlag, "now", "", "RFC3339 instant to compute the chart at (default: current time)")

	renderCmd.Flags().StringVar(&img, "img", "distance.png", "the path to save the rendered image")
	renderCmd.Flags().StringVar(&backend, "backend", string(internal.BackendRaster), "raster (chart only) or browser (whole screen, needs Chrome)")
	serveCmd.Flags().StringVar(&addr, "addr", ":9999", "the address the webserver should listen on")

	rootCmd.AddCommand(renderCmd, serveCmd, summaryCmd)
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(cmd *cobra.Command, b internal.Backend) error {
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	if _, err := internal.ParseBackend(string(b)); err != nil {
		return err
	}

	configFile, err := os.Open(configPath)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer configFile.Close()

	cfg, err := internal.ReadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var now time.Time
	if nowFlag != "" {
		if now, err = time.Parse(time.RFC3339, nowFlag); err != nil {
			return fmt.Errorf("failed to parse --now: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	return internal.Run(ctx, cfg, internal.RunOptions{
		Backend: b,
		Fake:    fake,
		Window:  window,
		Now:     now,
		Img:     img,
		Addr:    addr,
		Out:     cmd.OutOrStdout(),
	}, logger)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "distancegraph:", err)
		os.Exit(1)
	}
}
