package sampling

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/plexsphere/samplerun/internal/fsutil"
	"github.com/plexsphere/samplerun/internal/hostinfo"
)

// Result describes a finished run of the sampling program.
type Result struct {
	Invocation Invocation
	ExitCode   int
	Duration   time.Duration
}

// Runner plans and launches the sampling program.
type Runner struct {
	cfg    Config
	logger *slog.Logger

	hostname func() (string, error)
	now      func() time.Time

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a Runner for cfg. The program inherits the process's
// standard streams.
func NewRunner(cfg Config, logger *slog.Logger) *Runner {
	return &Runner{
		cfg:      cfg,
		logger:   logger.With("component", "sampling"),
		hostname: hostinfo.ShortHostname,
		now:      time.Now,
		stdin:    os.Stdin,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// SetOutput redirects the program's stdout and stderr.
func (r *Runner) SetOutput(stdout, stderr io.Writer) {
	r.stdout = stdout
	r.stderr = stderr
}

// Plan resolves the host name and the start time and returns the
// invocation that Run would launch.
func (r *Runner) Plan() (Invocation, error) {
	host, err := r.hostname()
	if err != nil {
		return Invocation{}, fmt.Errorf("sampling: plan: %w", err)
	}
	start := r.now()

	csvfile := Filename(host, start, r.cfg.Interval, r.cfg.Duration)
	if r.cfg.OutDir != "" {
		csvfile = filepath.Join(r.cfg.OutDir, csvfile)
	}

	return Invocation{
		Program:   r.cfg.Program,
		Args:      Args(r.cfg.Interval, r.cfg.Duration, csvfile, r.cfg.Sampler),
		CSVFile:   csvfile,
		Host:      host,
		StartedAt: start,
	}, nil
}

// Run launches inv and waits for the program to exit. ctx only gates the
// launch: once started, the program is always awaited. A non-zero exit is
// reported as *ExitError, a failed start as *LaunchError.
func (r *Runner) Run(ctx context.Context, inv Invocation) (Result, error) {
	result := Result{Invocation: inv}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("sampling: run: %w", err)
	}
	if err := fsutil.EnsureDir(r.cfg.OutDir); err != nil {
		return result, fmt.Errorf("sampling: run: %w", err)
	}

	cmd := exec.Command(inv.Program, inv.Args...)
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	// Catch, never ignore: SIG_IGN survives exec into the program.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigCh)

	r.logger.Info("starting sampler",
		"program", inv.Program,
		"csv_file", inv.CSVFile,
		"sampler", r.cfg.Sampler,
	)
	r.logger.Debug("sampler arguments", "args", inv.Args)

	start := time.Now()
	if err := cmd.Start(); err != nil {
		launchErr := &LaunchError{Program: inv.Program, Err: err}
		result.ExitCode = launchErr.Code()
		r.logger.Error("failed to start sampler", "program", inv.Program, "error", err)
		return result, launchErr
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	var waitErr error
	for waiting := true; waiting; {
		select {
		case sig := <-sigCh:
			r.logger.Info("signal received, waiting for sampler to exit", "signal", sig.String())
		case waitErr = <-done:
			waiting = false
		}
	}
	result.Duration = time.Since(start)

	code, err := exitCode(waitErr)
	if err != nil {
		return result, fmt.Errorf("sampling: wait %s: %w", inv.Program, err)
	}
	result.ExitCode = code

	r.logger.Info("sampler exited",
		"exit_code", code,
		"duration", result.Duration,
	)

	if code != 0 {
		return result, &ExitError{Program: inv.Program, Code: code}
	}
	return result, nil
}

// exitCode maps the error from cmd.Wait to an exit status. A program
// killed by a signal maps to 128+signal.
func exitCode(waitErr error) (int, error) {
	if waitErr == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if !errors.As(waitErr, &exitErr) {
		return 0, waitErr
	}
	if ws, ok := exitErr.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal()), nil
	}
	return exitErr.ExitCode(), nil
}
