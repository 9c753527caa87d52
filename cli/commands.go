package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/warp/calendar-engine/interval"
	"github.com/warp/calendar-engine/period"
	"github.com/warp/calendar-engine/tstamp"
)

// =============================================================================
// INPUT HELPERS
// =============================================================================

// parseDay accepts dd-Mon-yyyy, yyyy-MM-dd or any timestamp form. Timestamps
// go through the DayCache.
func (a *app) parseDay(s string) (period.Day, error) {
	if d, err := period.Parse(s); err == nil {
		return d, nil
	}
	if d, err := period.ParseSimple(s); err == nil {
		return d, nil
	}
	t, err := tstamp.Parse(s)
	if err != nil {
		a.logger.Debug("unrecognised day", zap.String("input", s), zap.Error(err))
		return period.Day{}, fmt.Errorf("day %q: %w", s, err)
	}
	return a.cache.GetTime(t), nil
}

// dayArg is the day named by args[0], or today.
func (a *app) dayArg(args []string) (period.Day, error) {
	if len(args) == 0 {
		return a.cache.GetTime(a.now), nil
	}
	return a.parseDay(args[0])
}

func (a *app) parseTime(s string) (time.Time, error) {
	t, err := tstamp.Parse(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp %q: %w", s, err)
	}
	return t, nil
}

// =============================================================================
// PERIOD COMMANDS
// =============================================================================

func (a *app) dayCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "day [DATE]",
		Short:   "Show the calendar day containing DATE (default today)",
		Example: "calendar day 03-Nov-2003",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := a.dayArg(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "day:        %s\n", day)
			fmt.Fprintf(out, "simple:     %s\n", day.SimpleString())
			fmt.Fprintf(out, "weekday:    %s\n", day.Weekday())
			fmt.Fprintf(out, "week:       %s\n", period.WeekOf(day).Label())
			fmt.Fprintf(out, "month:      %s\n", period.MonthOf(day))
			fmt.Fprintf(out, "first tick: %d\n", day.FirstTick())
			fmt.Fprintf(out, "last tick:  %d\n", day.LastTick())
			return nil
		},
	}
}

func (a *app) weekCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "week [DATE|LABEL]",
		Short:   "Show the week containing DATE, or the week a catalog label names",
		Example: "calendar week \"28-Dec-2003 to 03-Jan-2004\"",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var week period.Week
			if len(args) == 1 && strings.Contains(args[0], " to ") {
				w, err := a.utility.ParseWeek(args[0])
				if err != nil {
					return err
				}
				week = w
			} else {
				day, err := a.dayArg(args)
				if err != nil {
					return err
				}
				week = period.WeekOf(day)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, week.Label())
			for _, d := range week.Days() {
				fmt.Fprintf(out, "  %s %s\n", d.Weekday().String()[:3], d)
			}
			return nil
		},
	}
}

func (a *app) weeksCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "weeks",
		Short: "List the recent-week catalog, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			weeks := a.utility.WeekOptions()
			if len(weeks) > a.cfg.CatalogLimit {
				weeks = weeks[:a.cfg.CatalogLimit]
			}
			return writeLines(cmd.OutOrStdout(), weeks)
		},
	}
}

func (a *app) monthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "month [DATE]",
		Short: "Show the month containing DATE (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := a.dayArg(args)
			if err != nil {
				return err
			}
			m := period.MonthOf(day)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "month:      %s\n", m)
			fmt.Fprintf(out, "days:       %d\n", m.NumDays())
			fmt.Fprintf(out, "first week: %s\n", m.FirstWeek().Label())
			fmt.Fprintf(out, "last week:  %s\n", m.LastWeek().Label())
			return nil
		},
	}
}

// =============================================================================
// INTERVAL COMMANDS
// =============================================================================

func (a *app) intervalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interval",
		Short: "Expand an inclusive interval of days, weeks or months",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "day START END",
		Short:   "List every day from START to END",
		Example: "calendar interval day 2003-11-03 2003-11-10",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := a.dayPair(args)
			if err != nil {
				return err
			}
			iv, err := interval.NewDayInterval(start, end)
			if err != nil {
				return err
			}
			return writeInterval[period.Day](cmd.OutOrStdout(), iv, iv.Iterator())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "week START END",
		Short:   "List every week from START to END; dates or catalog labels",
		Example: "calendar interval week 03-Mar-2005 17-Mar-2005",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			iv, err := a.weekInterval(args)
			if err != nil {
				return err
			}
			return writeInterval[period.Week](cmd.OutOrStdout(), iv, iv.Iterator())
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "month START END",
		Short:   "List every month from the month of START to the month of END",
		Example: "calendar interval month 2003-07-01 2004-01-01",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end, err := a.dayPair(args)
			if err != nil {
				return err
			}
			iv, err := interval.NewMonthInterval(period.MonthOf(start), period.MonthOf(end))
			if err != nil {
				return err
			}
			return writeInterval[period.Month](cmd.OutOrStdout(), iv, iv.Iterator())
		},
	})
	return cmd
}

func (a *app) dayPair(args []string) (period.Day, period.Day, error) {
	start, err := a.parseDay(args[0])
	if err != nil {
		return period.Day{}, period.Day{}, err
	}
	end, err := a.parseDay(args[1])
	if err != nil {
		return period.Day{}, period.Day{}, err
	}
	return start, end, nil
}

// weekInterval reads catalog labels when given, plain dates otherwise.
func (a *app) weekInterval(args []string) (interval.WeekInterval, error) {
	if strings.Contains(args[0], " to ") || strings.Contains(args[1], " to ") {
		return a.utility.WeekInterval(args[0], args[1])
	}
	start, end, err := a.dayPair(args)
	if err != nil {
		return interval.WeekInterval{}, err
	}
	return interval.NewWeekInterval(period.WeekOf(start), period.WeekOf(end))
}

// periodIterator is the part of *interval.Iterator the writer needs.
type periodIterator[P period.TimePeriod] interface {
	HasNext() bool
	Next() (P, error)
}

func writeInterval[P period.TimePeriod](out io.Writer, iv interval.Interval, it periodIterator[P]) error {
	fmt.Fprintf(out, "%s (%d)\n", iv, iv.Len())
	for it.HasNext() {
		p, err := it.Next()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "  %s\n", label(p))
	}
	return nil
}

func label(p period.TimePeriod) string {
	if w, ok := p.(period.Week); ok {
		return w.Label()
	}
	return p.String()
}

// =============================================================================
// TSTAMP COMMANDS
// =============================================================================

func (a *app) tstampCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tstamp",
		Short: "Timestamp arithmetic at millisecond resolution",
	}

	cmd.AddCommand(&cobra.Command{
		Use:     "diff A B",
		Short:   "Print B minus A in milliseconds",
		Example: "calendar tstamp diff 2007-08-01T01:00:00 2007-08-01T01:01:20.200",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ta, tb, err := a.timePair(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tstamp.Diff(ta, tb))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:     "between A B",
		Short:   "Print the number of days from A to B",
		Example: "calendar tstamp between 2024-03-01 2024-04-01",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ta, tb, err := a.timePair(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tstamp.DaysBetween(ta, tb))
			return nil
		},
	})

	var days, hours, minutes, seconds int
	inc := &cobra.Command{
		Use:     "inc T",
		Short:   "Shift T by the given days, hours, minutes and seconds",
		Example: "calendar tstamp inc 2007-08-01 --days 1 --hours 2",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := a.parseTime(args[0])
			if err != nil {
				return err
			}
			t = tstamp.IncrementDays(t, days)
			t = tstamp.IncrementHours(t, hours)
			t = tstamp.IncrementMinutes(t, minutes)
			t = tstamp.IncrementSeconds(t, seconds)

			if tstamp.IsBogusStartTime(t) {
				a.logger.Warn("timestamp predates 2000-01-01", zap.String("result", tstamp.Format(t)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), tstamp.Format(t))
			return nil
		},
	}
	inc.Flags().IntVar(&days, "days", 0, "calendar days to add")
	inc.Flags().IntVar(&hours, "hours", 0, "hours to add")
	inc.Flags().IntVar(&minutes, "minutes", 0, "minutes to add")
	inc.Flags().IntVar(&seconds, "seconds", 0, "seconds to add")
	cmd.AddCommand(inc)

	return cmd
}

func (a *app) timePair(args []string) (time.Time, time.Time, error) {
	ta, err := a.parseTime(args[0])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	tb, err := a.parseTime(args[1])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return ta, tb, nil
}

func writeLines(out io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := fmt.Fprintln(out, l); err != nil {
			return err
		}
	}
	return nil
}
