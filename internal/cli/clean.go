package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/smartgl/sgl/internal/clean"
)

func newCleanCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove generated build files",
		Long: `Clean deletes the build directory under the project root, then removes every
.sln, .vcxproj, .vcxproj.filters, .vcxproj.user and Makefile in the project
tree. Failures are reported and skipped. There is no confirmation.`,
		Args: cobra.ArbitraryArgs,
		RunE: s.runClean,
	}
}

func (s *state) runClean(cmd *cobra.Command, _ []string) error {
	cfg, err := s.load(cmd)
	if err != nil {
		return err
	}

	s.ui.Println("Cleaning project...")

	c := clean.New(cfg.Root, cfg.BuildPath(), cfg.Extensions)
	if cfg.Verbose {
		c.OnRemove = func(path string) {
			s.ui.Step("removed %s", relPath(cfg.Root, path))
		}
	}

	r := c.Run()

	if r.BuildDirMissing {
		s.ui.Warn("Directory does not exist: %s", r.BuildDir)
	}
	for _, f := range r.Failed {
		s.ui.Error("Failed to remove %s: %v", f.Path, f.Err)
	}
	if cfg.Verbose {
		s.ui.Success("removed %d path(s), %d failure(s)", len(r.Removed), len(r.Failed))
	}
	return nil
}

func relPath(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
