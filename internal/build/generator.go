package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/smartgl/sgl/internal/proc"
	"github.com/smartgl/sgl/internal/project"
)

// Result describes a finished generator invocation.
type Result struct {
	// Requested is the mode the user asked for; Mode is what ran.
	Requested Mode
	Mode      Mode
	Path      string
	Duration  time.Duration

	// ExitCode is only meaningful when Exited is true.
	ExitCode int
	Exited   bool
}

// Overridden reports whether the platform replaced the requested mode.
func (r *Result) Overridden() bool { return r.Requested != r.Mode }

// Generator runs the platform's premake binary shipped under ScriptsDir.
type Generator struct {
	cfg *project.Config
	run proc.Runner
}

// NewGenerator creates a Generator. A nil runner means proc.Run.
func NewGenerator(cfg *project.Config, run proc.Runner) *Generator {
	if run == nil {
		run = proc.Run
	}
	return &Generator{cfg: cfg, run: run}
}

// Path returns <scripts>/<platform>/<generator>[.exe].
func (g *Generator) Path() string {
	name := g.cfg.Generator + g.cfg.Platform.ExeSuffix()
	return filepath.Join(g.cfg.ScriptsDir, g.cfg.Platform.String(), name)
}

// Spec returns the process spec for mode after the platform override.
func (g *Generator) Spec(mode Mode) proc.Spec {
	return proc.Spec{
		Name: g.Path(),
		Args: []string{mode.For(g.cfg.Platform).String()},
	}
}

// Run invokes the generator once. The generator's own exit status is
// recorded in the Result but is not an error; only failing to start it is.
func (g *Generator) Run(ctx context.Context, mode Mode) (*Result, error) {
	if !mode.Valid() {
		return nil, ErrInvalidMode
	}

	spec := g.Spec(mode)
	res := &Result{
		Requested: mode,
		Mode:      mode.For(g.cfg.Platform),
		Path:      spec.Name,
	}

	if _, err := os.Stat(spec.Name); err != nil {
		return res, fmt.Errorf("generator: %w", err)
	}

	start := time.Now()
	err := g.run(ctx, spec)
	res.Duration = time.Since(start)

	if err != nil {
		code, ok := proc.ExitCode(err)
		if !ok {
			return res, fmt.Errorf("generator: %w", err)
		}
		res.ExitCode, res.Exited = code, true
		return res, nil
	}
	res.Exited = true
	return res, nil
}
