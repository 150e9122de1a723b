package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docqa"
	"github.com/fwojciec/docqa/config"
	qaprom "github.com/fwojciec/docqa/prometheus"
	qaslog "github.com/fwojciec/docqa/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Dotenv files read before the environment. Empty means ".env".
	EnvFiles []string

	// Asker replaces the wired session pipeline for end-to-end testing.
	Asker docqa.Asker
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(m.EnvFiles...)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Config: cfg,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docqa"),
		kong.Description("Answer questions from web pages and PDF documents."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		Vars(cfg),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docqa --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if cli.Verbose {
		level = "debug"
	}
	deps.Logger = qaslog.NewLogger(stderr, level, cli.LogFormat)
	deps.Metrics = qaprom.NewMetrics()

	var backend BackendFlags
	switch {
	case strings.HasPrefix(kongCtx.Command(), "ask"):
		backend = cli.Ask.BackendFlags
	case strings.HasPrefix(kongCtx.Command(), "serve"):
		backend = cli.Serve.BackendFlags
	}

	if m.Asker != nil {
		deps.Asker = m.Asker
	} else {
		asker, closeFn, err := buildAsker(ctx, cfg, backend, deps.Logger, deps.Metrics)
		if err != nil {
			fmt.Fprintf(stderr, "error: %s\n", docqa.ErrorMessage(err))
			return err
		}
		defer closeFn()
		deps.Asker = asker
	}

	return kongCtx.Run(deps)
}
