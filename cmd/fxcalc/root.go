package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/SscSPs/currency_calculator/internal/adapters/static"
	"github.com/SscSPs/currency_calculator/internal/apperrors"
	portsrepo "github.com/SscSPs/currency_calculator/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_calculator/internal/core/ports/services"
	"github.com/SscSPs/currency_calculator/internal/core/services"
	"github.com/SscSPs/currency_calculator/internal/platform/config"
	"github.com/SscSPs/currency_calculator/internal/platform/metrics"
	"github.com/spf13/cobra"
)

// errReported marks failures whose message was already written to the output.
var errReported = errors.New("reported")

// app carries what the commands share: writers, flag values and the loaded tables.
type app struct {
	out    io.Writer
	errOut io.Writer

	matrixPath string
	tablesPath string
	logLevel   string
	explain    bool

	cfg    *config.Config
	logger *slog.Logger
	repos  *portsrepo.RepositoryProvider
}

// newRootCmd creates the root command for fxcalc
func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:   "fxcalc <ccy1> <amount> in <ccy2>",
		Short: "FX cross-rate currency calculator",
		Long: `Converts an amount between two currencies using the quoted rate table and
the cross-reference matrix. Results are truncated to the destination's precision.

Example:
  fxcalc AUD 100.00 in USD
  fxcalc --explain NOK -100 in JPY`,
		Args:              cobra.ArbitraryArgs,
		PersistentPreRunE: a.bootstrap,
		RunE:              a.runConvert,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVar(&a.matrixPath, "matrix", "", "Cross-reference matrix properties file (default: built-in, or CROSS_MATRIX_FILE)")
	rootCmd.PersistentFlags().StringVar(&a.tablesPath, "tables", "", "YAML file overriding the rate and precision tables (or FX_TABLES_FILE)")
	rootCmd.PersistentFlags().StringVarP(&a.logLevel, "log-level", "l", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&a.explain, "explain", false, "Print how the rate was resolved")
	// Amounts may be negative; everything after the first positional is an argument.
	rootCmd.Flags().SetInterspersed(false)

	rootCmd.AddCommand(newServeCmd(a), newCurrenciesCmd(a))
	return rootCmd
}

// bootstrap loads configuration, applies flag overrides, builds the logger and
// loads the tables once for whichever command runs.
func (a *app) bootstrap(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return apperrors.Wrap(fmt.Errorf("failed to load config: %w", err))
	}
	if cmd.Flags().Changed("matrix") {
		cfg.CrossMatrixFile = a.matrixPath
	}
	if cmd.Flags().Changed("tables") {
		cfg.FXTablesFile = a.tablesPath
	}
	if cmd.Flags().Changed("log-level") {
		level, err := config.ParseLogLevel(a.logLevel)
		if err != nil {
			return err
		}
		cfg.LogLevel = level
	}
	a.cfg = cfg

	a.logger = slog.New(slog.NewJSONHandler(a.errOut, &slog.HandlerOptions{Level: cfg.LogLevel}))

	repos, err := static.LoadRepositories(cfg.CrossMatrixFile, cfg.FXTablesFile)
	if err != nil {
		return apperrors.Wrap(fmt.Errorf("failed to load tables: %w", err))
	}
	a.repos = repos
	a.logger.Debug("Tables loaded",
		slog.Int("matrix_entries", repos.MatrixRepo.Len()),
		slog.String("matrix_file", cfg.CrossMatrixFile),
		slog.String("tables_file", cfg.FXTablesFile))
	return nil
}

// services wires the service container over the loaded tables.
func (a *app) services(m *metrics.Metrics) *portssvc.ServiceContainer {
	return services.NewServiceContainer(a.cfg, *a.repos, a.logger, m)
}
