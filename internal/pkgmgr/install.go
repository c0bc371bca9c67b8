package pkgmgr

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
)

// Result carries the captured output of an install.
type Result struct {
	Stdout string
	Stderr string
}

// Installer adds dev dependencies to the project in dir.
type Installer interface {
	Install(ctx context.Context, dir string, pkgs []string) (*Result, error)
}

// Exec runs the package manager binary.
type Exec struct {
	// Name is the package manager executable, e.g. "pnpm".
	Name   string
	Logger *slog.Logger
}

// NewExec creates an Exec installer for the named package manager.
func NewExec(name string, logger *slog.Logger) *Exec {
	if logger == nil {
		logger = slog.Default()
	}

	return &Exec{Name: name, Logger: logger}
}

// Args returns the arguments passed to the package manager.
func Args(pkgs []string) []string {
	return append([]string{"add", "-D"}, pkgs...)
}

// Install runs "<pm> add -D <pkgs...>" in dir and blocks until it exits.
// Output is captured, never streamed; the Result is returned even when the
// command fails so diagnostics can be shown.
func (e *Exec) Install(ctx context.Context, dir string, pkgs []string) (*Result, error) {
	args := Args(pkgs)
	e.Logger.Debug("installing dependencies", "pm", e.Name, "dir", dir, "args", args)

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, e.Name, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := &Result{Stdout: stdout.String(), Stderr: stderr.String()}

	if err != nil {
		return res, fmt.Errorf("running %s %v: %w", e.Name, args, err)
	}

	return res, nil
}
