package build

import (
	"errors"

	"github.com/smartgl/sgl/internal/platform"
)

// ErrInvalidMode is returned for a missing or unknown build mode.
var ErrInvalidMode = errors.New("invalid build mode")

// Mode is the premake action that selects which build files are generated.
type Mode string

const (
	ModeVS2019 Mode = "vs2019"
	ModeVS2022 Mode = "vs2022"
	ModeGmake  Mode = "gmake"
)

// Modes lists every accepted mode in display order.
var Modes = []Mode{ModeVS2019, ModeVS2022, ModeGmake}

func (m Mode) Valid() bool {
	return m == ModeVS2019 || m == ModeVS2022 || m == ModeGmake
}

func (m Mode) String() string { return string(m) }

// ParseMode validates a user-supplied mode. Matching is exact.
func ParseMode(s string) (Mode, error) {
	if m := Mode(s); m.Valid() {
		return m, nil
	}
	return "", ErrInvalidMode
}

// For returns the mode actually handed to the generator on p. Linux has
// no Visual Studio, so every mode becomes gmake there.
func (m Mode) For(p platform.Platform) Mode {
	if p == platform.Linux {
		return ModeGmake
	}
	return m
}

// ModeNames returns Modes as strings.
func ModeNames() []string {
	names := make([]string, len(Modes))
	for i, m := range Modes {
		names[i] = string(m)
	}
	return names
}
