/*
Package cli is the calendar command line tool.

PURPOSE:
  Exposes the calendar engine for inspection from a shell: which day,
  week or month an instant falls in, the recent-week catalog, interval
  expansion and timestamp arithmetic.

COMPOSITION:
  The root command's pre-run hook is the composition root. It loads Config,
  builds the zap logger, a private Prometheus registry with the engine's
  metrics, a DayCache centred on "now", and a Utility reporting bad input
  to the logger. Subcommands only read from the resulting app.

CONFIGURATION (lowest to highest precedence):
  1. DefaultConfig
  2. yaml file from --config or CALENDAR_CONFIG
  3. CALENDAR_LOG_LEVEL, CALENDAR_METRICS, CALENDAR_CATALOG_LIMIT
  4. --log-level, --metrics

EXAMPLES:
  calendar day 2003-11-03
  calendar weeks --now 2024-07-04
  calendar interval month 2003-07-01 2004-01-01
  calendar tstamp diff 2007-08-01T01:00:00 2007-08-01T01:01:20.200
*/
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/warp/calendar-engine/interval"
	"github.com/warp/calendar-engine/metrics"
	"github.com/warp/calendar-engine/period"
	"github.com/warp/calendar-engine/tstamp"
)

// app holds everything a subcommand needs; built once per invocation.
type app struct {
	// flags
	configPath string
	logLevel   string
	metricsOn  bool
	nowFlag    string

	cfg      Config
	logger   *zap.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	cache    *period.DayCache
	utility  *interval.Utility
	now      time.Time
}

// NewRootCommand builds the command tree writing results to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:               "calendar",
		Short:             "Inspect calendar days, weeks, months and intervals",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd.OutOrStdout())
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "yaml config file (default $"+envConfig+")")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.BoolVar(&a.metricsOn, "metrics", false, "print collected metrics after the command")
	pf.StringVar(&a.nowFlag, "now", "", "pretend the current time is this timestamp")

	root.AddCommand(
		a.dayCommand(),
		a.weekCommand(),
		a.weeksCommand(),
		a.monthCommand(),
		a.intervalCommand(),
		a.tstampCommand(),
	)
	return root
}

// Execute runs the tool against os.Args and stdout.
func Execute() error {
	return NewRootCommand(os.Stdout).Execute()
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if cmd.Flags().Changed("metrics") {
		cfg.Metrics = a.metricsOn
	}
	a.cfg = cfg

	a.logger, err = NewLogger(cfg.LogLevel)
	if err != nil {
		return err
	}

	a.now = time.Now()
	if a.nowFlag != "" {
		a.now, err = tstamp.Parse(a.nowFlag)
		if err != nil {
			return fmt.Errorf("--now: %w", err)
		}
	}

	a.registry = prometheus.NewRegistry()
	a.metrics = metrics.New(a.registry)
	a.cache = period.NewDayCache(a.now, period.WithObserver(a.metrics))
	a.utility = interval.NewUtility(
		interval.WithClock(func() time.Time { return a.now }),
		interval.WithDiagnostics(a.logger.Sugar()),
		interval.WithCatalogObserver(a.metrics),
	)

	a.logger.Debug("calendar ready",
		zap.String("command", cmd.CommandPath()),
		zap.Time("now", a.now),
		zap.String("zone", period.ZoneName),
	)
	return nil
}

func (a *app) teardown(out io.Writer) error {
	if a.logger != nil {
		_ = a.logger.Sync() // EINVAL on terminals
	}
	if !a.cfg.Metrics || a.registry == nil {
		return nil
	}
	return metrics.WriteText(out, a.registry)
}
