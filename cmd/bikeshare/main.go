// Package main provides the CLI entrypoint for bikeshare.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bsatish290/pdsnd-github/internal/browse"
	"github.com/bsatish290/pdsnd-github/internal/config"
	"github.com/bsatish290/pdsnd-github/internal/dataset"
	"github.com/bsatish290/pdsnd-github/internal/model"
	"github.com/bsatish290/pdsnd-github/internal/prompt"
	"github.com/bsatish290/pdsnd-github/internal/session"
	"github.com/bsatish290/pdsnd-github/internal/stats"
	"github.com/bsatish290/pdsnd-github/internal/style"
)

const (
	defaultDataDir  = "."
	defaultLogLevel = "warn"
)

var (
	dataDir  string
	noColor  bool
	logLevel string

	selectCity  string
	selectMonth string
	selectDay   string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bikeshare",
		Short:         "Explore US bikeshare trip data",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runSessionCmd,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir, "directory holding the city CSV files")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level: debug, info, warn, error")

	rootCmd.AddCommand(newReportCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newCitiesCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// settings is the merged result of flags and the config file.
type settings struct {
	catalog model.Catalog
	color   bool
	log     *slog.Logger
}

func loadSettings(cmd *cobra.Command) (settings, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return settings{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "data-dir", &dataDir, fileCfg.Data.Dir)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Output.LogLevel)
	color := !noColor
	if fileCfg.Output.Color != nil && !cmd.Flags().Changed("no-color") {
		color = *fileCfg.Output.Color
	}

	logger, err := newLogger(logLevel)
	if err != nil {
		return settings{}, err
	}
	cat := model.NewCatalog(dataDir)
	logger.Debug("settings resolved", "data_dir", cat.DataDir(), "color", color)
	return settings{
		catalog: cat,
		color:   color,
		log:     logger,
	}, nil
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

func runSessionCmd(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	styles := style.New(out, s.color)
	console := prompt.NewConsole(cmd.InOrStdin(), out, styles)
	return session.NewRunner(s.catalog, console, styles, s.log).Run(cmd.Context())
}

func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&selectCity, "city", "", "city: Chicago, New York City or Washington")
	cmd.Flags().StringVar(&selectMonth, "month", "", "filter by month (January-June)")
	cmd.Flags().StringVar(&selectDay, "day", "", "filter by day of week (1=Monday .. 7=Sunday)")
	cmd.MarkFlagsMutuallyExclusive("month", "day")
	if err := cmd.MarkFlagRequired("city"); err != nil {
		panic(err)
	}
}

func selection() model.Selection {
	return model.Selection{
		City:  strings.TrimSpace(selectCity),
		Month: strings.TrimSpace(selectMonth),
		Day:   strings.TrimSpace(selectDay),
	}
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print trip statistics without prompting",
		Args:  cobra.NoArgs,
		RunE:  runReportCmd,
	}
	addSelectionFlags(cmd)
	return cmd
}

func runReportCmd(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	sel := selection()
	ds, err := dataset.NewLoader(s.catalog, s.log).Load(cmd.Context(), sel)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	styles := style.New(out, s.color)
	if _, err := fmt.Fprintln(out, styles.Label.Render(session.FilterSummary(s.catalog, sel))); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return stats.NewReporter(out, s.catalog, styles).Run(ds)
}

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Scroll through filtered trips in a table",
		Args:  cobra.NoArgs,
		RunE:  runBrowseCmd,
	}
	addSelectionFlags(cmd)
	return cmd
}

func runBrowseCmd(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("browse needs an interactive terminal; use 'bikeshare report' instead")
	}
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	sel := selection()
	ds, err := dataset.NewLoader(s.catalog, s.log).Load(cmd.Context(), sel)
	if err != nil {
		return err
	}
	m := browse.NewModel(ds, session.FilterSummary(s.catalog, sel))
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}

func newCitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List cities and their data files",
		Args:  cobra.NoArgs,
		RunE:  runCitiesCmd,
	}
}

func runCitiesCmd(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, 3)
	for _, city := range s.catalog.Cities() {
		path, _ := s.catalog.CityFile(city.Name)
		status := "ok"
		if _, err := os.Stat(path); err != nil {
			if !os.IsNotExist(err) {
				return fmt.Errorf("failed to stat %s: %w", path, err)
			}
			status = "missing"
		}
		rows = append(rows, []string{city.Name, path, status})
	}
	for _, line := range stats.FormatTable([]string{"City", "File", "Status"}, rows, nil) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# bikeshare configuration
# Uncomment a value to enable it. CLI flags override config values.

[data]
# dir = %q              # Directory holding chicago.csv, new_york_city.csv, washington.csv

[output]
# color = true            # Colored headings and notices
# log-level = %q       # debug, info, warn or error
`,
		defaultDataDir,
		defaultLogLevel,
	)
}
