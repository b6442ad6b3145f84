// Package main provides the folio binary: a terminal portfolio with a
// filterable skills section and a project detail overlay.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/trace"
	"folio/internal/ui"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "folio"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// flags are the command-line overrides applied on top of the environment.
type flags struct {
	contentPath string
	logFile     string
	logLevel    string
	noMouse     bool
	watch       bool
}

func (f *flags) config(cmd *cobra.Command) config.Config {
	cfg := config.FromEnv()
	if cmd.Flags().Changed("content") {
		cfg.ContentPath = f.contentPath
	}
	if cmd.Flags().Changed("log-file") {
		cfg.LogFile = f.logFile
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = config.ParseLevel(f.logLevel)
	}
	if f.noMouse {
		cfg.Mouse = false
	}
	if f.watch {
		cfg.Watch = true
	}
	return cfg
}

func rootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Terminal portfolio",
		Long: `Folio renders a single-page portfolio in the terminal: profile,
skills with a category and text filter, experience, project cards with a
detail overlay, education and contact links.

Content comes from a YAML file (--content or FOLIO_CONTENT) or the built-in set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), f.config(cmd))
		},
	}

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	cmd.PersistentFlags().StringVarP(&f.contentPath, "content", "c", "", "Content file path (YAML)")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "Append logs to this file")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&f.noMouse, "no-mouse", false, "Disable mouse capture")
	cmd.Flags().BoolVarP(&f.watch, "watch", "w", false, "Reload the content file when it changes")

	cmd.AddCommand(
		skillsCmd(f),
		projectsCmd(f),
		exportCmd(f),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)

	return cmd
}

func run(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer cancel()

	logger, closer, err := cfg.OpenLogger()
	if err != nil {
		return err
	}
	defer closer.Close()
	logger = logger.With("session", cfg.SessionID)

	portfolio, err := cfg.LoadPortfolio()
	if err != nil {
		return errors.Wrap(err, "load content")
	}

	tracer, err := trace.NewOTLP(ctx, cfg.OTLPEndpoint, cfg.ServiceName)
	if err != nil {
		logger.Warn("trace export disabled", "err", err)
		tracer = nil
	}
	tracer.StartSession(ctx, map[string]string{"session": cfg.SessionID})
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown", "err", err)
		}
	}()

	logger.Info("folio starting",
		"version", Version,
		"content", cfg.ContentPath,
		"projects", len(portfolio.Projects),
		"skills", portfolio.SkillCount())

	model := ui.NewAppModel(portfolio, ui.WithLogger(logger), ui.WithTracer(tracer))
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	prog := tea.NewProgram(model.AsTeaModel(), opts...)

	if cfg.Watch {
		path, err := cfg.ResolveContentPath()
		if err != nil {
			return err
		}
		go func() {
			err := content.Watch(ctx, path, content.DefaultDebounce, func(p *content.Portfolio, err error) {
				prog.Send(ui.ContentReloadedMsg{Portfolio: p, Err: err})
			})
			if err != nil {
				logger.Warn("content watch stopped", "path", path, "err", err)
			}
		}()
	}

	if _, err := prog.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return errors.Wrap(err, "run ui")
	}
	logger.Info("folio exited")
	return nil
}
