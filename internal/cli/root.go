// Package cli provides the command-line interface for csvpeek.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leapstack-labs/csvpeek/internal/cli/config"
	"github.com/leapstack-labs/csvpeek/internal/cli/output"
	"github.com/leapstack-labs/csvpeek/internal/pager"
	"github.com/leapstack-labs/csvpeek/internal/render"
	"github.com/leapstack-labs/csvpeek/internal/source"
	"github.com/leapstack-labs/csvpeek/pkg/classify"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "csvpeek <file>",
		Short: "csvpeek - Color-coded CSV and TSV viewer",
		Long: `csvpeek renders CSV and TSV files as bordered terminal tables with
per-cell coloring by inferred data type (integer, float, date, boolean,
empty, text).

By default it prints a static table of the first rows. With --pager it
opens an interactive full-screen view with less-style key bindings.`,
		Version:       Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd, cfgFile, args[0])
		},
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	flags := rootCmd.Flags()
	flags.IntP("rows", "n", config.DefaultRows, "Maximum rows to display in static mode (0 for all)")
	flags.BoolP("row-numbers", "r", false, "Show a row-number column")
	flags.IntP("width", "w", 0, "Maximum column width in display cells (0 for unlimited)")
	flags.StringP("delimiter", "d", config.DefaultDelimiter, `Field delimiter (use \t for tab)`)
	flags.Bool("no-header", false, "Treat the first row as data and synthesize column names")
	flags.StringVarP(&cfgFile, "colorscheme", "c", "", "Path to a color scheme file (default: ~/.config/csvpeek/config.toml)")
	flags.BoolP("pager", "p", false, "Open the file in the interactive pager")
	flags.Bool("zebra", false, "Alternate row background colors")
	flags.BoolP("verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "csvpeek %s (built %s, commit %s)\n", Version, BuildDate, GitCommit)
		},
	}
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func runView(cmd *cobra.Command, cfgFile, path string) error {
	logger := newLogger(cmd, slog.LevelWarn)

	cfg, err := config.Load(cfgFile, cmd.Flags(), logger)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		logger = newLogger(cmd, slog.LevelDebug)
	}

	renderer := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ModeAuto)

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer f.Close()

	src := source.New(f, cfg.DelimiterRune(), source.WithLogger(logger))
	header, data, err := resolveHeader(src, cfg.NoHeader)
	if err != nil {
		return err
	}

	formatter := render.NewFormatter(
		len(header),
		classify.Classifier{DayFirst: cfg.DayFirst},
		render.Mapper{Palette: paletteFrom(cfg), Zebra: cfg.Zebra},
		cfg.Width,
	)

	if cfg.Interactive {
		return runPager(cfg, header, data, formatter)
	}
	return runStatic(cfg, renderer, logger, path, src, header, data, formatter)
}

func newLogger(cmd *cobra.Command, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// resolveHeader reads or synthesizes the header row and returns the view
// over the remaining data rows. With a real header the data view skips
// row 0; without one every row, the first included, is data.
func resolveHeader(src *source.Source, noHeader bool) ([]string, source.Rows, error) {
	first, ok := src.RowAt(0)
	if !ok {
		if err := src.Err(); err != nil {
			return nil, nil, err
		}
		return nil, src, nil
	}
	if noHeader {
		header := make([]string, len(first))
		for i := range header {
			header[i] = fmt.Sprintf("col%d", i)
		}
		return header, src, nil
	}
	return first, source.Skip(src, 1), nil
}

// paletteFrom translates validated config colors into a render palette.
// Keys left empty in the config keep their built-in default.
func paletteFrom(cfg *config.Config) render.Palette {
	pal := render.DefaultPalette()
	set := func(dst *lipgloss.Color, hex string) {
		if hex != "" {
			*dst = lipgloss.Color(hex)
		}
	}
	set(&pal.Text, cfg.DataTypes.Text)
	set(&pal.Date, cfg.DataTypes.Date)
	set(&pal.Float, cfg.DataTypes.Float)
	set(&pal.Integer, cfg.DataTypes.Integer)
	set(&pal.Boolean, cfg.DataTypes.Boolean)
	set(&pal.Empty, cfg.DataTypes.Empty)
	set(&pal.Header, cfg.Header)
	set(&pal.RowIndex, cfg.RowIndex)
	set(&pal.BackgroundEven, cfg.Background.Even)
	set(&pal.BackgroundOdd, cfg.Background.Odd)
	return pal
}

func runStatic(cfg *config.Config, renderer *output.Renderer, logger *slog.Logger, path string, src *source.Source, header []string, data source.Rows, formatter *render.Formatter) error {
	total := data.ReadToEnd()

	shown := total
	if cfg.Rows > 0 && cfg.Rows < total {
		shown = cfg.Rows
	}
	rows := make([][]string, 0, shown)
	for i := 0; i < shown; i++ {
		row, ok := data.RowAt(i)
		if !ok {
			break
		}
		rows = append(rows, row)
	}

	styles := renderer.Styles()
	renderer.Println(styles.Label.Render("File:"), styles.Value.Render(filepath.Base(path)))
	renderer.Println(styles.Label.Render("Rows:"), styles.Value.Render(fmt.Sprintf("%d", total)))
	renderer.Println(styles.Label.Render("Columns:"), styles.Value.Render(fmt.Sprintf("%d", len(header))))
	renderer.Println()

	if len(header) == 0 {
		renderer.Println(styles.Muted.Render("(empty file)"))
		return src.Err()
	}

	renderer.Println(render.Table(header, rows, formatter, render.TableOptions{
		RowNumbers:    cfg.RowNumbers,
		StartIndex:    1,
		MaxTableWidth: terminalWidth(),
	}))

	if shown < total {
		renderer.Println(styles.Muted.Render(fmt.Sprintf("Showing %d of %d rows", shown, total)))
	}
	if cfg.Verbose {
		if dropped := formatter.DroppedFields(); dropped > 0 {
			logger.Warn("rows had extra fields beyond the header width", "dropped_fields", dropped)
		}
	}
	return src.Err()
}

func runPager(cfg *config.Config, header []string, data source.Rows, formatter *render.Formatter) error {
	if len(header) == 0 {
		return fmt.Errorf("nothing to page: file has no rows")
	}

	machine := pager.NewMachine(data, pagerHeight(), cfg.Pager.ScrollSingleLine, cfg.Pager.ScrollMultiLine)
	model := pager.NewModel(machine, formatter, header, render.TableOptions{
		RowNumbers:    cfg.RowNumbers,
		MaxTableWidth: terminalWidth(),
	})
	return pager.Run(model)
}

// terminalWidth returns the stdout width, or 0 when stdout is not a
// terminal so the table renders unconstrained.
func terminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 0
}

// pagerHeight returns an initial window height in data rows. The running
// program resizes on the first WindowSizeMsg, so this only covers the
// frames rendered before that message arrives.
func pagerHeight() int {
	if _, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && h > 0 {
		return pager.FitHeight(h)
	}
	return pager.FitHeight(24)
}
