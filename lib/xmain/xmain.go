// Package xmain runs the main of a command: it wires the environment, the command
// logger and flags into a State, and turns returned errors into exit codes.
package xmain

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cdr.dev/slog"
	"cdr.dev/slog/sloggers/sloghuman"

	"oss.terrastruct.com/cmdlog"
	"oss.terrastruct.com/xos"

	ctxlog "oss.terrastruct.com/uml/lib/log"
)

type RunFunc func(context.Context, *State) error

// ShutdownTimeout bounds how long run may take to return after a signal.
var ShutdownTimeout = time.Minute

func Main(run RunFunc) {
	name := ""
	args := []string(nil)
	if len(os.Args) > 0 {
		name = os.Args[0]
		args = os.Args[1:]
	}

	ms := &State{
		Name: name,

		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,

		Env: xos.NewEnv(os.Environ()),
	}
	ms.Log = cmdlog.Log(ms.Env, os.Stderr)
	ms.Opts = NewOpts(ms.Env, ms.Log, args)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	err := ms.Main(context.Background(), sigs, run)
	if err != nil {
		code, msg := ms.explain(err)
		if msg != "" {
			ms.Log.Error.Print(msg)
		}
		os.Exit(code)
	}
}

// explain maps an error returned by a RunFunc to an exit code and a message.
func (ms *State) explain(err error) (code int, msg string) {
	var eerr ExitError
	var uerr UsageError
	switch {
	case errors.As(err, &eerr):
		return eerr.Code, eerr.Message
	case errors.As(err, &uerr):
		return 1, fmt.Sprintf("%s\nRun with --help to see usage.", err)
	default:
		return 1, err.Error()
	}
}

// State is everything a command needs from its process.
type State struct {
	Name string

	Stdin  io.Reader
	Stdout io.WriteCloser
	Stderr io.WriteCloser

	Log  *cmdlog.Logger
	Env  *xos.Env
	Opts *Opts
}

// Main calls run with a context that is cancelled on the first signal. A second
// signal is not waited for: if run does not return within ShutdownTimeout, Main gives up.
func (ms *State) Main(ctx context.Context, sigs <-chan os.Signal, run RunFunc) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- run(ctx, ms)
	}()

	select {
	case err := <-done:
		return err
	case sig := <-sigs:
		ms.Log.Warn.Printf("received signal %v: shutting down...", sig)
		cancel()
		select {
		case err := <-done:
			if err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("failed to shutdown: %w", err)
			}
			if sig == syscall.SIGTERM {
				return nil
			}
			return ExitError{Code: 1}
		case <-time.After(ShutdownTimeout):
			return ExitErrorf(1, "took longer than %v to shutdown: exiting forcefully", ShutdownTimeout)
		}
	}
}

// Context returns ctx carrying a slog logger that writes to the command's stderr.
// Debug output is only enabled when debug is set.
func (ms *State) Context(ctx context.Context, debug bool) context.Context {
	l := slog.Make(sloghuman.Sink(ms.Stderr)).Named(ms.Name)
	if debug {
		l = l.Leveled(slog.LevelDebug)
	}
	return ctxlog.With(ctx, l)
}

type ExitError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func ExitErrorf(code int, msg string, v ...interface{}) ExitError {
	return ExitError{
		Code:    code,
		Message: fmt.Sprintf(msg, v...),
	}
}

func (ee ExitError) Error() string {
	s := fmt.Sprintf("exiting with code %d", ee.Code)
	if ee.Message != "" {
		s += ": " + ee.Message
	}
	return s
}

type UsageError struct {
	Message string `json:"message"`
}

func UsageErrorf(msg string, v ...interface{}) UsageError {
	return UsageError{
		Message: fmt.Sprintf(msg, v...),
	}
}

func (ue UsageError) Error() string {
	return fmt.Sprintf("bad usage: %s", ue.Message)
}

// ReadPath reads fp, or stdin when fp is "-".
func (ms *State) ReadPath(fp string) ([]byte, error) {
	if fp == "-" {
		return io.ReadAll(ms.Stdin)
	}
	return os.ReadFile(fp)
}

// WritePath writes p to fp, or to stdout when fp is "-".
func (ms *State) WritePath(fp string, p []byte) error {
	if fp == "-" {
		_, err := ms.Stdout.Write(p)
		return err
	}
	return os.WriteFile(fp, p, 0644)
}
