package proc

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"syscall"
)

// Spec describes a single child process.
type Spec struct {
	Name string
	Args []string
	// Env is appended to os.Environ().
	Env []string
}

func (s Spec) String() string {
	parts := make([]string, 0, len(s.Env)+1+len(s.Args))
	parts = append(parts, s.Env...)
	parts = append(parts, s.Name)
	parts = append(parts, s.Args...)
	return strings.Join(parts, " ")
}

// Runner starts the process described by spec and waits for it.
type Runner func(ctx context.Context, spec Spec) error

// Run is the os/exec Runner. Stdio is inherited. While the child runs,
// sgl survives interrupts so it can wait for the child, and relays the
// signals the child would not otherwise see.
func Run(ctx context.Context, spec Spec) error {
	cmd := exec.CommandContext(ctx, spec.Name, spec.Args...)
	if len(spec.Env) > 0 {
		cmd.Env = append(os.Environ(), spec.Env...)
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", spec.Name, err)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case sig := <-sigCh:
			if relayed(sig) {
				_ = cmd.Process.Signal(sig)
			}
		case <-done:
		}
	}()

	return cmd.Wait()
}

// relayed reports whether sig must be passed on to the child. A terminal
// Ctrl-C already reaches the whole foreground process group; sending it
// again would deliver a second interrupt.
func relayed(sig os.Signal) bool {
	return sig != os.Interrupt
}

// ExitCode extracts the exit status of a process that ran and failed.
// It reports false for errors that happened before the process started.
func ExitCode(err error) (int, bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return 0, false
}
