package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartgl/sgl/internal/launch"
	"github.com/smartgl/sgl/internal/proc"
	"github.com/smartgl/sgl/internal/tui"
	"github.com/smartgl/sgl/internal/ui"
)

type runFlags struct {
	interactive bool
	list        bool
}

func newRunCmd(s *state) *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "run <application> [-- arguments...]",
		Short: "Launch a built application",
		Long: `Run starts <root>/<application>/<application>, or the .exe next to it.

On linux the application is started with LIBGL_ALWAYS_SOFTWARE=1 so it renders
through Mesa's software rasteriser. Arguments after -- are passed to the
application.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runRun(cmd, args, f)
		},
	}

	fl := cmd.Flags()
	fl.BoolVarP(&f.interactive, "interactive", "i", false, "choose the application interactively")
	fl.BoolVarP(&f.list, "list", "l", false, "list runnable applications")
	return cmd
}

func (s *state) runRun(cmd *cobra.Command, args []string, f runFlags) error {
	name, appArgs := splitRunArgs(args, cmd.ArgsLenAtDash())

	if f.list {
		return s.listApps(cmd)
	}
	if name == "" && !f.interactive {
		return launch.ErrNoApplication
	}

	cfg, err := s.load(cmd)
	if err != nil {
		return err
	}

	var app *launch.App
	if name == "" {
		apps, err := launch.Discover(cfg.Root, cfg.Platform)
		if err != nil {
			return fmt.Errorf("discover: %w", err)
		}
		if app, err = tui.SelectApp(apps); err != nil {
			return err
		}
	} else if app, err = launch.Resolve(cfg.Root, name, cfg.Platform); err != nil {
		return err
	}

	spec := app.Spec(cfg.Platform, appArgs)
	s.ui.Println("Running Application...")
	if cfg.Verbose {
		s.ui.Label("exec", spec.String())
	}

	err = s.host.run(cmd.Context(), spec)
	if code, ok := proc.ExitCode(err); ok {
		if cfg.Verbose {
			s.ui.Dim("%s exited with status %d", app.Name, code)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("launch: %w", err)
	}
	return nil
}

func (s *state) listApps(cmd *cobra.Command) error {
	cfg, err := s.load(cmd)
	if err != nil {
		return err
	}

	apps, err := launch.Discover(cfg.Root, cfg.Platform)
	if err != nil {
		return fmt.Errorf("discover: %w", err)
	}
	if len(apps) == 0 {
		s.ui.Println("No applications found.")
		return nil
	}

	tbl := ui.NewTable("NAME", "EXECUTABLE")
	for _, a := range apps {
		tbl.AddRow(a.Name, relPath(cfg.Root, a.Exe))
	}
	tbl.Render(s.ui)
	return nil
}

// splitRunArgs separates the application name from the arguments after
// "--". Extra words before "--" are ignored.
func splitRunArgs(args []string, dash int) (name string, appArgs []string) {
	before := args
	if dash >= 0 {
		before, appArgs = args[:dash], args[dash:]
	}
	if len(before) > 0 {
		name = before[0]
	}
	if len(appArgs) == 0 {
		appArgs = nil
	}
	return name, appArgs
}
