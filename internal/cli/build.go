package cli

import (
	"github.com/spf13/cobra"

	"github.com/smartgl/sgl/internal/build"
	"github.com/smartgl/sgl/internal/tui"
	"github.com/smartgl/sgl/internal/ui"
)

type buildFlags struct {
	interactive bool
}

func newBuildCmd(s *state) *cobra.Command {
	var f buildFlags

	cmd := &cobra.Command{
		Use:   "build <vs2019|vs2022|gmake>",
		Short: "Generate project files with premake",
		Long: `Build runs the premake5 generator for the host platform with the given mode.

The generator is looked up as <scripts>/<platform>/premake5, where platform is
win32 or linux. On linux the generator always runs with gmake, whichever mode
was requested.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runBuild(cmd, args, f)
		},
	}

	cmd.Flags().BoolVarP(&f.interactive, "interactive", "i", false, "choose the build mode interactively")
	return cmd
}

func (s *state) runBuild(cmd *cobra.Command, args []string, f buildFlags) error {
	mode, err := s.buildMode(args, f)
	if err != nil {
		return err
	}

	cfg, err := s.load(cmd)
	if err != nil {
		return err
	}

	g := build.NewGenerator(cfg, s.host.run)
	if cfg.Verbose {
		s.ui.Label("generator", g.Path())
	}

	res, err := g.Run(cmd.Context(), mode)
	if err != nil {
		return err
	}

	if !cfg.Verbose {
		return nil
	}
	if res.Overridden() {
		s.ui.Dim("%s requested, %s used on %s", res.Requested, res.Mode, cfg.Platform)
	}
	if res.ExitCode != 0 {
		s.ui.Warn("%s exited with status %d", cfg.Generator, res.ExitCode)
		return nil
	}
	s.ui.Success("%s files generated (%s)", res.Mode, ui.FormatDuration(res.Duration))
	return nil
}

func (s *state) buildMode(args []string, f buildFlags) (build.Mode, error) {
	if len(args) == 0 && f.interactive {
		return tui.SelectMode(s.platform)
	}
	if len(args) == 0 {
		return "", build.ErrInvalidMode
	}
	return build.ParseMode(args[0])
}
