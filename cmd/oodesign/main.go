package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"oodesign/internal/config"
	"oodesign/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string

	cfg  *config.Config
	logs *logging.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "oodesign",
	Short: "Object-oriented design demos: shape areas and numerical integration",
	Long: `oodesign runs two small demonstrations of polymorphism.

  area       sums the areas of the configured shapes through the Shape interface
  integrate  approximates a definite integral, swapping the integration
             strategy (trapezoidal, Simpson) on one Integrator between calls

Inputs come from the YAML config file (--config). Run without arguments to
run both demos.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			loaded.Logging.Level = "debug"
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("invalid config %s: %w", configPath, err)
		}

		l, err := logging.New(loaded.Logging)
		if err != nil {
			return err
		}
		cfg = loaded
		logs = l.With(zap.String("run_id", uuid.NewString()))
		logs.For(logging.CategoryBoot).Debug("config loaded",
			zap.String("path", configPath),
			zap.String("command", cmd.Name()))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logs != nil {
			_ = logs.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runArea(cmd, args); err != nil {
			return err
		}
		return runIntegrate(cmd, args)
	},
}

// areaCmd sums shape areas
var areaCmd = &cobra.Command{
	Use:   "area",
	Short: "Print the total area of the configured shapes",
	Args:  cobra.NoArgs,
	RunE:  runArea,
}

// integrateCmd runs each configured strategy on one Integrator
var integrateCmd = &cobra.Command{
	Use:   "integrate",
	Short: "Approximate the configured integral with each strategy in turn",
	Long: `Builds one Integrator with the first configured strategy, integrates,
then switches to each following strategy with SetStrategy and integrates again.

Simpson's rule needs an even number of subintervals; an odd partitions value
is raised by one for Simpson only.`,
	Args: cobra.NoArgs,
	RunE: runIntegrate,
}

// sweepCmd compares strategies over several partition counts
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Compare every strategy over the configured partition counts",
	Args:  cobra.NoArgs,
	RunE:  runSweep,
}

// configCmd prints the effective configuration
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cfg.Write(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file (defaults are used if missing)")

	rootCmd.AddCommand(areaCmd)
	rootCmd.AddCommand(integrateCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
