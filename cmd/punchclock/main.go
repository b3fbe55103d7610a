package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/punchclock/internal/config"
	"git.home.luguber.info/inful/punchclock/internal/errors"
	"git.home.luguber.info/inful/punchclock/internal/punchlog"
	"git.home.luguber.info/inful/punchclock/internal/report"
)

var CLI struct {
	In      bool   `short:"i" xor:"action" help:"Punch in."`
	Out     bool   `short:"o" xor:"action" help:"Punch out."`
	Reset   bool   `short:"r" xor:"action" help:"Delete the stored clock punches."`
	Log     string `short:"l" help:"Punch log file (overrides configuration)."`
	Config  string `short:"c" help:"Configuration file path."`
	Verbose bool   `short:"v" help:"Enable verbose logging."`
}

// action is the single mutation (or none) applied in one invocation.
type action string

const (
	actionStatus action = "status"
	actionIn     action = "in"
	actionOut    action = "out"
	actionReset  action = "reset"
)

func main() {
	kong.Parse(&CLI,
		kong.Name("punchclock"),
		kong.Description("Personal punch clock: records clock punches and reports worked time."),
	)

	// Set up logging
	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	adapter := errors.NewCLIErrorAdapter(CLI.Verbose, logger)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		adapter.LogError(err)
		os.Exit(adapter.ExitCodeFor(err))
	}

	logPath := cfg.LogPath
	if CLI.Log != "" {
		logPath = CLI.Log
	}

	if err := run(selectedAction(), logPath, os.Stdout, punchlog.RealClock{}); err != nil {
		adapter.LogError(err)
		os.Exit(adapter.ExitCodeFor(err))
	}
}

func selectedAction() action {
	switch {
	case CLI.In:
		return actionIn
	case CLI.Out:
		return actionOut
	case CLI.Reset:
		return actionReset
	}
	return actionStatus
}

// run performs one invocation: load the log, apply at most one mutation,
// persist the log, then report worked time and clocked state on stdout.
func run(act action, logPath string, stdout io.Writer, clk punchlog.Clock) error {
	clock, err := punchlog.Open(logPath, clk)
	if err != nil {
		return err
	}

	slog.Debug("Punch log loaded", "path", logPath, "rows", len(clock.Rows()), "state", clock.State())

	switch act {
	case actionIn:
		if clock.PunchIn() == punchlog.Ignored {
			slog.Debug("Already clocked in, punch ignored")
		}
	case actionOut:
		if clock.PunchOut() == punchlog.Ignored {
			slog.Debug("Already clocked out, punch ignored")
		}
	case actionReset:
		clock.Reset()
	}

	worked := clock.Sum()
	state := clock.State()

	// The log is persisted on every exit path before the result is reported.
	if err := clock.Close(); err != nil {
		return err
	}

	fmt.Fprintln(stdout, report.Message(worked, state))
	return nil
}
