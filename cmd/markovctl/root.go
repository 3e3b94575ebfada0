package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/markov/chain"
	"github.com/katalvlaran/markov/matrix"
)

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	logLevel string
	eps      float64
	relEps   float64
	format   string
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:   "markovctl",
		Short: "markovctl analyzes discrete-time Markov chains",
		Long: `markovctl loads a row-stochastic transition matrix from a YAML or JSON file
and reports irreducibility, aperiodicity, the stationary distribution,
reversibility and committor probabilities.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Float64Var(&g.eps, "eps", matrix.DefaultAbsEpsilon, "Absolute tolerance for stochasticity, eigenvalue and reversibility comparisons")
	rootCmd.PersistentFlags().Float64Var(&g.relEps, "rel-eps", matrix.DefaultRelEpsilon, "Relative tolerance, scaled by the magnitude of the reference value")
	rootCmd.PersistentFlags().StringVar(&g.format, "format", formatYAML, "Output format (yaml, json)")

	rootCmd.AddCommand(
		newAnalyzeCmd(g),
		newCommittorCmd(g),
		newGenerateCmd(g),
	)

	return rootCmd
}

// logger builds the stderr logger for one invocation.
func (g *globalFlags) logger(cmd *cobra.Command) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(g.logLevel))); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", g.logLevel, err)
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})), nil
}

// chainOptions translates the global flags into model options.
func (g *globalFlags) chainOptions(cmd *cobra.Command) ([]chain.Option, error) {
	if !(matrix.Tolerance{Abs: g.eps}).Valid() {
		return nil, fmt.Errorf("invalid --eps %g: must be finite and non-negative", g.eps)
	}
	if !(matrix.Tolerance{Rel: g.relEps}).Valid() {
		return nil, fmt.Errorf("invalid --rel-eps %g: must be finite and non-negative", g.relEps)
	}
	logger, err := g.logger(cmd)
	if err != nil {
		return nil, err
	}

	return []chain.Option{chain.WithTolerance(g.eps, g.relEps), chain.WithLogger(logger)}, nil
}
