// Package cli provides the jobapi command line, built on Cobra.
//
//	jobapi
//	├── serve      start the HTTP server
//	│   ├── --host, --port
//	│   └── --seed load the sample jobs
//	└── version
//
// The persistent --config/-c flag points at a YAML file; environment
// variables (JOBAPI_HOST, JOBAPI_PORT, JOBAPI_LOG_LEVEL, JOBAPI_LOG_FORMAT)
// override it.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"jobservice/api/config"
	"jobservice/api/metrics"
	"jobservice/api/models"
	"jobservice/api/server"
	"jobservice/api/store"
)

// Version is overridden at build time with -ldflags "-X jobservice/api/internal/cli.Version=...".
var Version = "dev"

// BuildCLI returns the root command.
func BuildCLI() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "jobapi",
		Short:         "Job API: CRUD over an in-memory job collection",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (YAML)")

	rootCmd.AddCommand(buildServeCommand(&configFile))
	rootCmd.AddCommand(buildVersionCommand())

	return rootCmd
}

// buildServeCommand reads the config path through configFile, which the root
// command's persistent flag fills in before RunE.
func buildServeCommand(configFile *string) *cobra.Command {
	var host string
	var port int
	var seed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Job API HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			flags := cmd.Flags()
			if flags.Changed("host") {
				cfg.Server.Host = host
			}
			if flags.Changed("port") {
				cfg.Server.Port = port
			}
			if flags.Changed("seed") {
				cfg.Seed.Enabled = seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "host to bind (overrides config)")
	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (overrides config)")
	cmd.Flags().BoolVar(&seed, "seed", false, "load the sample jobs at startup")

	return cmd
}

func buildVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}

func runServer(ctx context.Context, cfg *config.Config) error {
	if err := config.InitLogger(cfg.Log); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger := config.Log

	jobStore := store.NewMemoryStore(models.Now)
	if cfg.Seed.Enabled {
		if err := store.Seed(jobStore, store.SampleJobs()...); err != nil {
			return fmt.Errorf("failed to seed store: %w", err)
		}
		logger.Infof("Seeded store with %d jobs", jobStore.Len())
	}

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector()
		collector.SetStored(jobStore.Len())
	}

	app := server.New(server.Dependencies{
		Config:  cfg,
		Logger:  logger,
		Store:   jobStore,
		Metrics: collector,
	})

	return server.Run(ctx, app, cfg.Address(), cfg.Server.ShutdownTimeout, logger)
}
