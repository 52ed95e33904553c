package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smartgl/sgl/internal/build"
	"github.com/smartgl/sgl/internal/launch"
	"github.com/smartgl/sgl/internal/platform"
	"github.com/smartgl/sgl/internal/proc"
	"github.com/smartgl/sgl/internal/project"
	"github.com/smartgl/sgl/internal/ui"
)

// commandNames is the order commands are listed in usage messages.
var commandNames = []string{"build", "clean", "run", "help"}

const msgUnsupported = "Unsupported OS detected"

var errInvalidCommand = errors.New("invalid command")

// host is the ambient state read once per process.
type host struct {
	goos string
	run  proc.Runner
	out  io.Writer
	// scriptsDir overrides the executable's directory when set.
	scriptsDir string
}

func defaultHost() *host {
	return &host{goos: runtime.GOOS, run: proc.Run, out: os.Stdout}
}

type globalFlags struct {
	root       string
	scriptsDir string
	config     string
	verbose    bool
}

// state is shared by the commands of one invocation.
type state struct {
	host     *host
	platform platform.Platform
	flags    globalFlags
	ui       *ui.Printer
	cfg      *project.Config
}

// Execute runs the dispatcher against os.Args.
func Execute() error {
	return execute(context.Background(), defaultHost(), os.Args[1:])
}

func execute(ctx context.Context, h *host, args []string) error {
	p := ui.New(h.out)

	plat, err := platform.Detect(h.goos)
	if err != nil {
		p.Error(msgUnsupported)
		return nil
	}

	if args == nil {
		args = []string{}
	}

	s := &state{host: h, platform: plat, ui: p}
	root := newRootCmd(s)
	root.SetArgs(args)
	root.SetOut(h.out)
	root.SetErr(h.out)

	if err := root.ExecuteContext(ctx); err != nil {
		p.Error("%s", message(err))
		return err
	}
	return nil
}

func newRootCmd(s *state) *cobra.Command {
	root := &cobra.Command{
		Use:   "sgl",
		Short: "Generate, clean and run the SmartGL projects",
		Long: `sgl drives the SmartGL project tree: it generates IDE or make files with the
premake5 binary shipped next to it, removes generated files, and launches built
applications.

The project root is the parent of the directory holding sgl. An optional
sgl.toml beside the binary overrides the generator name, build directory and
clean suffixes.`,
		Args:              cobra.ArbitraryArgs,
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE:              s.runRoot,
	}

	f := root.PersistentFlags()
	f.StringVar(&s.flags.root, "root", "", "project root (default: parent of the sgl directory)")
	f.StringVar(&s.flags.scriptsDir, "scripts-dir", "", "directory holding the per-platform generators (default: sgl's directory)")
	f.StringVarP(&s.flags.config, "config", "c", "", "config file path (default: sgl.toml beside sgl)")
	f.BoolVarP(&s.flags.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newBuildCmd(s), newCleanCmd(s), newRunCmd(s))
	root.SetHelpCommand(newHelpCmd(s))
	return root
}

func (s *state) runRoot(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		s.ui.Println("No command entered. " + availableCommands())
		return nil
	}
	return fmt.Errorf("%w: %q", errInvalidCommand, args[0])
}

// load resolves the project configuration on first use. --verbose only
// overrides the config file when it was given on the command line.
func (s *state) load(cmd *cobra.Command) (*project.Config, error) {
	if s.cfg != nil {
		return s.cfg, nil
	}

	scriptsDir := s.flags.scriptsDir
	if scriptsDir == "" {
		scriptsDir = s.host.scriptsDir
	}

	lo := project.LoadOptions{
		Platform:   s.platform,
		ScriptsDir: scriptsDir,
		Root:       s.flags.root,
		ConfigPath: s.flags.config,
	}
	if cmd.Flags().Changed("verbose") {
		lo.Verbose = &s.flags.verbose
	}

	cfg, err := project.Load(lo)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.Verbose {
		s.ui.Label("platform", cfg.Platform.String())
		s.ui.Label("root", cfg.Root)
		s.ui.Label("scripts", cfg.ScriptsDir)
	}
	s.cfg = cfg
	return cfg, nil
}

func availableCommands() string {
	return "Available commands are: " + strings.Join(commandNames, ", ")
}

// message maps an error to the line shown to the user.
func message(err error) string {
	switch {
	case errors.Is(err, errInvalidCommand):
		return "Invalid command. " + availableCommands()
	case errors.Is(err, build.ErrInvalidMode):
		return "Invalid build mode. Available build modes are: " + strings.Join(build.ModeNames(), ", ")
	case errors.Is(err, launch.ErrNoApplication):
		return "No application entered."
	case errors.Is(err, launch.ErrAppNotFound):
		return "Application does not exist."
	case errors.Is(err, launch.ErrExeNotFound):
		return "Executable does not exist."
	default:
		return err.Error()
	}
}
