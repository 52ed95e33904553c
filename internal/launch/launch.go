package launch

import (
	"errors"
	"os"
	"path/filepath"
	"slices"

	"github.com/smartgl/sgl/internal/platform"
	"github.com/smartgl/sgl/internal/proc"
)

// SoftwareRenderEnv forces Mesa's software rasteriser for launched apps.
const SoftwareRenderEnv = "LIBGL_ALWAYS_SOFTWARE=1"

const exeSuffix = ".exe"

var (
	ErrNoApplication = errors.New("no application entered")
	ErrAppNotFound   = errors.New("application does not exist")
	ErrExeNotFound   = errors.New("executable does not exist")
)

// App is a project subdirectory holding an executable of the same name.
type App struct {
	Name string
	Exe  string
}

// Resolve finds <root>/<name>/<name>, with or without .exe. The platform's
// own form is preferred when both exist.
func Resolve(root, name string, p platform.Platform) (*App, error) {
	if name == "" {
		return nil, ErrNoApplication
	}
	if name != filepath.Base(name) || name == "." || name == ".." {
		return nil, ErrAppNotFound
	}

	dir := filepath.Join(root, name)
	if !isDir(dir) {
		return nil, ErrAppNotFound
	}

	exe, ok := findExe(dir, name, p)
	if !ok {
		return nil, ErrExeNotFound
	}
	return &App{Name: name, Exe: exe}, nil
}

func findExe(dir, name string, p platform.Platform) (string, bool) {
	base := filepath.Join(dir, name)
	candidates := []string{base, base + exeSuffix}
	if p.ExeSuffix() != "" {
		slices.Reverse(candidates)
	}
	for _, c := range candidates {
		if isFile(c) {
			return c, true
		}
	}
	return "", false
}

// Spec returns the process spec that starts the app on p.
func (a *App) Spec(p platform.Platform, args []string) proc.Spec {
	spec := proc.Spec{Name: a.Exe, Args: args}
	if p.SoftwareRendering() {
		spec.Env = []string{SoftwareRenderEnv}
	}
	return spec
}

// Discover lists the runnable applications directly under root, sorted by
// name. Directories without a matching executable are skipped.
func Discover(root string, p platform.Platform) ([]*App, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var apps []*App
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		dir := filepath.Join(root, e.Name())
		if exe, ok := findExe(dir, e.Name(), p); ok {
			apps = append(apps, &App{Name: e.Name(), Exe: exe})
		}
	}
	return apps, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
