package tui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/smartgl/sgl/internal/build"
	"github.com/smartgl/sgl/internal/launch"
	"github.com/smartgl/sgl/internal/platform"
)

var ErrNoApplications = errors.New("no runnable applications found")

var modeLabels = map[build.Mode]string{
	build.ModeVS2019: "Visual Studio 2019",
	build.ModeVS2022: "Visual Studio 2022",
	build.ModeGmake:  "GNU Make",
}

// SelectMode asks for a build mode. On linux the list is still complete;
// the generator override applies afterwards.
func SelectMode(p platform.Platform) (build.Mode, error) {
	idx := defaultModeIndex(p)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Build Mode").
				Description("Project files to generate").
				Options(modeOptions()...).
				Value(&idx),
		),
	)
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("form: %w", err)
	}
	return build.Modes[idx], nil
}

// SelectApp asks which discovered application to run.
func SelectApp(apps []*launch.App) (*launch.App, error) {
	if len(apps) == 0 {
		return nil, ErrNoApplications
	}

	var idx int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Application").
				Description("Executable to launch").
				Options(indexedOptions(apps, func(a *launch.App) string { return a.Name })...).
				Value(&idx),
		),
	)
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("form: %w", err)
	}
	return apps[idx], nil
}

func modeOptions() []huh.Option[int] {
	return indexedOptions(build.Modes, func(m build.Mode) string {
		return fmt.Sprintf("%s (%s)", m, modeLabels[m])
	})
}

func defaultModeIndex(p platform.Platform) int {
	want := build.ModeVS2022
	if p == platform.Linux {
		want = build.ModeGmake
	}
	for i, m := range build.Modes {
		if m == want {
			return i
		}
	}
	return 0
}

func indexedOptions[T any](items []T, label func(T) string) []huh.Option[int] {
	opts := make([]huh.Option[int], len(items))
	for i, item := range items {
		opts[i] = huh.NewOption(label(item), i)
	}
	return opts
}
