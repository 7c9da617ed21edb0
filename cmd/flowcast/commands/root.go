package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"flowcast/internal/clierr"
	"flowcast/internal/config"
	"flowcast/internal/logging"
	"flowcast/internal/report"
	"flowcast/internal/simulation"
	"flowcast/internal/stats"
	"flowcast/internal/visuals"
	"flowcast/internal/workitem"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig

	createdField   string
	resolvedField  string
	statusField    string
	issueTypeField string
	simulations    int
	periodToken    string
	seed           int64
	showCharts     bool
)

var rootCmd = &cobra.Command{
	Use:   "flowcast <export.csv>",
	Short: "Monte Carlo completion forecasts from a work-item CSV export",
	Long: `Flowcast derives historical cycle-time and throughput statistics from a
Jira-style CSV export and resamples them to forecast when the remaining
backlog will be done, reported at the 50/75/85/95 percentiles.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(cmd, args); err != nil {
			return clierr.Usage(err)
		}
		return nil
	},
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		log.Debug().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("flowcast starting")
	},
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	period, err := stats.ParsePeriod(periodToken)
	if err != nil {
		return clierr.Usage(err)
	}
	if simulations < 0 {
		return clierr.Usagef("--simulations must not be negative, got %d", simulations)
	}

	path := args[0]
	if _, err := os.Stat(path); err != nil {
		return clierr.Usage(err)
	}

	fields := workitem.FieldMap{
		Created:   createdField,
		Resolved:  resolvedField,
		Status:    statusField,
		IssueType: issueTypeField,
	}
	records, err := workitem.LoadCSV(path, fields)
	if err != nil {
		return clierr.Data(err)
	}

	part, err := stats.Partition(records, stats.ClassifierConfig{TerminalStatuses: cfg.TerminalStatuses})
	if err != nil {
		return clierr.Data(err)
	}
	log.Info().
		Int("completed", len(part.Completed)).
		Int("remaining", len(part.Remaining)).
		Int("droppedNegativeCycleTimes", part.DroppedNegative).
		Msg("Classified work items")

	cycleTimes := part.CycleTimes()
	series := stats.BuildThroughputSeries(part.Completed, cycleTimes, period)

	engineSeed := seed
	if engineSeed == 0 {
		engineSeed = time.Now().UnixNano()
	}
	engine := simulation.NewEngine(series, simulation.Config{
		Trials:     simulations,
		Seed:       engineSeed,
		CycleTimes: cycleTimes,
	})

	log.Info().Int("trials", simulations).Str("period", string(period)).Msg("Running Monte Carlo simulation")
	res, err := engine.Run(cmd.Context(), len(part.Remaining))
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return clierr.Data(err)
	}

	report.WriteSummary(cmd.OutOrStdout(), res, len(part.Completed), len(part.Remaining))

	if showCharts {
		for _, chart := range []string{
			visuals.GenerateThroughputChart(series),
			visuals.GenerateCycleTimeChart(cycleTimes),
			visuals.GenerateForecastChart(res),
		} {
			if chart != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s\n", chart)
			}
		}
	}

	return nil
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return clierr.Usage(err)
	})

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	rootCmd.Flags().StringVar(&createdField, "created", "Created", "column name for the created date")
	rootCmd.Flags().StringVar(&resolvedField, "resolved", "Resolved", "column name for the resolved date")
	rootCmd.Flags().StringVar(&statusField, "status", "Status", "column name for the status field")
	rootCmd.Flags().StringVar(&issueTypeField, "issue-type", "Issue Type", "column name for the issue type")
	rootCmd.Flags().IntVar(&simulations, "simulations", 1000, "number of Monte Carlo simulations")
	rootCmd.Flags().StringVar(&periodToken, "period", "W", "throughput period: D (daily), W (weekly) or M (monthly)")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible forecasts (0 uses the clock)")
	rootCmd.Flags().BoolVar(&showCharts, "charts", false, "render mermaid charts of the inputs and the forecast")
}
