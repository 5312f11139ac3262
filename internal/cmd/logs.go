package cmd

import (
	"fmt"
	"io"
	"maps"
	"os"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/Iron-Ham/scoreboard/internal/config"
	"github.com/Iron-Ham/scoreboard/internal/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the terminal board's log",
	Long: `View and filter the terminal board's log, rotated files included.

Examples:
  # Show the last 50 entries
  scoreboard logs

  # Show everything
  scoreboard logs -n 0

  # Only warnings and errors from the last hour
  scoreboard logs --level warn --since 1h

  # Score changes only
  scoreboard logs --component board --grep "score"`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

type logsOptions struct {
	tail      int
	level     string
	since     string
	grep      string
	component string
}

var logsOpts logsOptions

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().IntVarP(&logsOpts.tail, "tail", "n", 50, "Number of entries to show (0 for all)")
	logsCmd.Flags().StringVar(&logsOpts.level, "level", "", "Filter by minimum level (debug/info/warn/error)")
	logsCmd.Flags().StringVar(&logsOpts.since, "since", "", "Show entries since duration ago (e.g., 1h, 30m)")
	logsCmd.Flags().StringVar(&logsOpts.grep, "grep", "", "Filter entries matching pattern (regex)")
	logsCmd.Flags().StringVar(&logsOpts.component, "component", "", "Filter by component (board/tui/web)")
}

func runLogs(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	return printLogs(cmd.OutOrStdout(), cfg.Logging.LogFile(), cfg.Logging.MaxBackups, logsOpts, time.Now())
}

// printLogs writes the entries of the log at path selected by opts to out.
func printLogs(out io.Writer, path string, maxBackups int, opts logsOptions, now time.Time) error {
	filter, err := opts.filter(now)
	if err != nil {
		return err
	}

	entries, err := logging.ReadEntries(path, maxBackups, filter)
	if os.IsNotExist(err) {
		fmt.Fprintln(out, "No logs found.")
		fmt.Fprintln(out, "Logs are stored at:", path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read logs: %w", err)
	}

	if opts.tail > 0 && len(entries) > opts.tail {
		entries = entries[len(entries)-opts.tail:]
	}

	styles := newLogStyles(lipgloss.NewRenderer(out))
	for _, e := range entries {
		fmt.Fprintln(out, styles.format(e))
	}
	return nil
}

func (o logsOptions) filter(now time.Time) (logging.Filter, error) {
	f := logging.Filter{Component: o.component}

	if o.level != "" {
		if !logging.IsValidLevel(o.level) {
			return f, fmt.Errorf("invalid level %q: must be one of %s", o.level, strings.Join(config.ValidLogLevels(), ", "))
		}
		f.MinLevel = o.level
	}
	if o.since != "" {
		d, err := time.ParseDuration(o.since)
		if err != nil {
			return f, fmt.Errorf("invalid --since duration %q: %w", o.since, err)
		}
		f.Since = now.Add(-d)
	}
	if o.grep != "" {
		re, err := regexp.Compile(o.grep)
		if err != nil {
			return f, fmt.Errorf("invalid --grep pattern: %w", err)
		}
		f.Pattern = re
	}
	return f, nil
}

type logStyles struct {
	time   lipgloss.Style
	levels map[string]lipgloss.Style
	key    lipgloss.Style
}

func newLogStyles(r *lipgloss.Renderer) logStyles {
	return logStyles{
		time: r.NewStyle().Foreground(lipgloss.Color("8")),
		levels: map[string]lipgloss.Style{
			logging.LevelDebug: r.NewStyle().Foreground(lipgloss.Color("8")),
			logging.LevelInfo:  r.NewStyle().Foreground(lipgloss.Color("4")),
			logging.LevelWarn:  r.NewStyle().Foreground(lipgloss.Color("3")),
			logging.LevelError: r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		},
		key: r.NewStyle().Foreground(lipgloss.Color("6")),
	}
}

func (s logStyles) format(e logging.Entry) string {
	var sb strings.Builder

	sb.WriteString(s.time.Render("[" + e.Time.Local().Format("15:04:05.000") + "]"))
	sb.WriteString(" ")
	level := strings.ToUpper(e.Level)
	sb.WriteString(s.levels[level].Render("[" + level + "]"))
	sb.WriteString(" ")
	sb.WriteString(e.Msg)

	field := func(key string, value any) {
		sb.WriteString(" ")
		sb.WriteString(s.key.Render(key + "="))
		fmt.Fprintf(&sb, "%v", value)
	}
	if e.Component != "" {
		field("component", e.Component)
	}
	if e.Team != "" {
		field("team", e.Team)
	}
	for _, key := range slices.Sorted(maps.Keys(e.Attrs)) {
		field(key, e.Attrs[key])
	}

	return sb.String()
}
