// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package commands builds the cobra commands behind the search binaries.
// Each binary is a single command with no subcommands; they share the
// configuration, logging, history and output flags set up here.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/pdiddy/search-tools/internal/config"
	"github.com/pdiddy/search-tools/internal/history"
	"github.com/pdiddy/search-tools/internal/render"
	"github.com/pdiddy/search-tools/internal/secrets"
	"github.com/pdiddy/search-tools/pkg/types"
)

// DefaultSecretsDir is read relative to the working directory.
const DefaultSecretsDir = ".secrets/"

// App carries the state shared by one command invocation.
type App struct {
	Version    string
	In         io.Reader
	Out        io.Writer
	Err        io.Writer
	Viper      *viper.Viper
	SecretsDir string
	Now        func() time.Time

	cfgFile string
	verbose bool
	format  *render.Format

	log zerolog.Logger
	cfg types.Config
}

// NewApp returns an App wired to the process streams.
func NewApp(version string) *App {
	return &App{
		Version:    version,
		In:         os.Stdin,
		Out:        os.Stdout,
		Err:        os.Stderr,
		Viper:      viper.New(),
		SecretsDir: DefaultSecretsDir,
		Now:        time.Now,
		log:        zerolog.Nop(),
	}
}

// Execute runs cmd and returns the process exit code. Errors are printed
// once by cobra.
func Execute(cmd *cobra.Command) int {
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		return 1
	}
	return 0
}

// root adds the flags every binary shares and the setup hook.
func (a *App) root(cmd *cobra.Command) *cobra.Command {
	cmd.Version = a.Version
	cmd.SilenceUsage = true
	cmd.SetIn(a.In)
	cmd.SetOut(a.Out)
	cmd.SetErr(a.Err)
	cmd.PersistentPreRunE = a.setup

	f := cmd.PersistentFlags()
	f.StringVar(&a.cfgFile, "config", "", "config file (default: ./search-tools.yaml or ~/.config/search-tools/search-tools.yaml)")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "log requests and responses to stderr")
	enumFlag(f, render.Formats, &a.format, "format", "output format")
	f.String("history-dir", "", "append raw responses to <dir>/<YYYY-MM-DD>.json (env SEARCH_HISTORY_DIR)")
	return cmd
}

// setup loads configuration and secrets once, before the command runs.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	level := zerolog.WarnLevel
	if a.verbose {
		level = zerolog.DebugLevel
	}
	a.log = zerolog.New(zerolog.ConsoleWriter{
		Out:        a.Err,
		NoColor:    !isTerminal(a.Err),
		TimeFormat: time.TimeOnly,
	}).Level(level).With().Timestamp().Logger()

	config.Bind(a.Viper)
	if f := cmd.Flags().Lookup("history-dir"); f != nil {
		if err := a.Viper.BindPFlag(config.KeyHistoryDir, f); err != nil {
			return fmt.Errorf("binding history-dir flag: %w", err)
		}
	}

	used, err := config.ReadFile(a.Viper, a.cfgFile)
	if err != nil {
		return err
	}
	if used != "" {
		fmt.Fprintln(a.Err, "Using config file:", used)
	}

	s, err := secrets.Load(a.SecretsDir, a.log)
	if err != nil {
		return err
	}
	if len(s) > 0 {
		fmt.Fprintf(a.Err, "Loaded secrets: %v\n", s.Names())
	}

	a.cfg = config.Load(a.Viper, s)
	a.log.Debug().
		Dur("timeout", a.cfg.HTTP.Timeout).
		Str("history_dir", a.cfg.History.Dir).
		Msg("configuration loaded")
	return nil
}

func (a *App) renderer() *render.Renderer {
	format := render.FormatText
	if a.format != nil {
		format = *a.format
	}
	return render.New(a.Out, format)
}

// record appends raw to the history file and indexes the run. It does
// nothing when no history directory is configured.
func (a *App) record(ctx context.Context, source, query string, items int, raw []byte) error {
	dir := a.cfg.History.Dir
	if dir == "" {
		return nil
	}

	now := a.Now()
	path, n, err := history.Append(dir, now, raw, a.log)
	if err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	a.log.Debug().Str("file", path).Int("entries", n).Msg("appended history")

	idx, err := history.OpenIndex(dir)
	if err != nil {
		return fmt.Errorf("saving history: %w", err)
	}
	defer idx.Close()

	return idx.Record(ctx, &history.Run{
		Source:  source,
		Query:   query,
		Items:   items,
		File:    path,
		Created: now,
	})
}

// queryText returns flag when set, otherwise the positional arguments
// joined by spaces.
func queryText(flag string, args []string) string {
	if flag != "" {
		return flag
	}
	return strings.Join(args, " ")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
