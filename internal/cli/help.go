package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartgl/sgl/internal/platform"
)

func newHelpCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "List available commands",
		Long: `Help lists the available commands. With a command name it prints that
command's usage and flags.`,
		Args: cobra.ArbitraryArgs,
		RunE: s.runHelp,
	}
}

func (s *state) runHelp(cmd *cobra.Command, args []string) error {
	root := cmd.Root()

	if len(args) > 0 {
		if c, _, err := root.Find(args); err == nil && c != root {
			return c.Help()
		}
	}

	s.ui.Println(availableCommands())
	s.ui.Println("")
	for _, name := range commandNames {
		if c, _, err := root.Find([]string{name}); err == nil && c != root {
			s.ui.Label(name, c.Short)
		}
	}
	s.ui.Println("")
	s.ui.Label("platforms", strings.Join(platform.List(), ", "))
	return nil
}
