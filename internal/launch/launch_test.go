package launch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartgl/sgl/internal/platform"
)

func mkApp(t *testing.T, root, name string, files ...string) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), nil, 0o755))
	}
}

func TestResolve_Errors(t *testing.T) {
	root := t.TempDir()
	mkApp(t, root, "NoExe", "NoExe.cpp")
	mkApp(t, root, "WrongName", "Other")
	mkApp(t, root, "DirExe")
	require.NoError(t, os.Mkdir(filepath.Join(root, "DirExe", "DirExe"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "plainfile"), nil, 0o644))

	tests := []struct {
		name string
		app  string
		want error
	}{
		{"empty name", "", ErrNoApplication},
		{"missing dir", "myapp", ErrAppNotFound},
		{"file not dir", "plainfile", ErrAppNotFound},
		{"path traversal", "../etc", ErrAppNotFound},
		{"nested path", "NoExe/sub", ErrAppNotFound},
		{"dot", ".", ErrAppNotFound},
		{"no executable", "NoExe", ErrExeNotFound},
		{"executable named differently", "WrongName", ErrExeNotFound},
		{"executable is a directory", "DirExe", ErrExeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, p := range []platform.Platform{platform.Linux, platform.Windows} {
				app, err := Resolve(root, tt.app, p)
				assert.ErrorIs(t, err, tt.want, "platform %s", p)
				assert.Nil(t, app)
			}
		})
	}
}

func TestResolve_Executable(t *testing.T) {
	root := t.TempDir()
	mkApp(t, root, "Both", "Both", "Both.exe")
	mkApp(t, root, "Bare", "Bare")
	mkApp(t, root, "Suffixed", "Suffixed.exe")

	tests := []struct {
		app      string
		platform platform.Platform
		want     string
	}{
		{"Both", platform.Linux, "Both"},
		{"Both", platform.Windows, "Both.exe"},
		{"Bare", platform.Linux, "Bare"},
		{"Bare", platform.Windows, "Bare"},
		{"Suffixed", platform.Linux, "Suffixed.exe"},
		{"Suffixed", platform.Windows, "Suffixed.exe"},
	}

	for _, tt := range tests {
		t.Run(tt.app+"/"+tt.platform.String(), func(t *testing.T) {
			app, err := Resolve(root, tt.app, tt.platform)
			require.NoError(t, err)
			assert.Equal(t, tt.app, app.Name)
			assert.Equal(t, filepath.Join(root, tt.app, tt.want), app.Exe)
		})
	}
}

func TestSpec(t *testing.T) {
	app := &App{Name: "TP1_Nurbs", Exe: "/p/TP1_Nurbs/TP1_Nurbs"}

	linux := app.Spec(platform.Linux, []string{"--demo"})
	assert.Equal(t, app.Exe, linux.Name)
	assert.Equal(t, []string{"--demo"}, linux.Args)
	assert.Equal(t, []string{"LIBGL_ALWAYS_SOFTWARE=1"}, linux.Env)

	win := app.Spec(platform.Windows, nil)
	assert.Equal(t, app.Exe, win.Name)
	assert.Empty(t, win.Args)
	assert.Empty(t, win.Env)
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	mkApp(t, root, "TP2_Nurbs", "TP2_Nurbs")
	mkApp(t, root, "TP1_Nurbs", "TP1_Nurbs.exe")
	mkApp(t, root, "SmartGL", "SmartGL.h")
	mkApp(t, root, "scripts", "sgl")
	require.NoError(t, os.WriteFile(filepath.Join(root, "premake5.lua"), nil, 0o644))

	apps, err := Discover(root, platform.Linux)
	require.NoError(t, err)

	var names []string
	for _, a := range apps {
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{"TP1_Nurbs", "TP2_Nurbs"}, names)
}

func TestDiscover_MissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "gone"), platform.Linux)
	assert.Error(t, err)
}
