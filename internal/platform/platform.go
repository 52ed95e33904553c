package platform

import "errors"

// ErrUnsupported is returned by Detect for hosts without a generator build.
var ErrUnsupported = errors.New("unsupported OS")

// Platform names a supported host. The value doubles as the name of the
// generator subdirectory next to the dispatcher.
type Platform string

const (
	Windows Platform = "win32"
	Linux   Platform = "linux"
)

const exeSuffix = ".exe"

var supported = []struct {
	GOOS     string
	Platform Platform
}{
	{"windows", Windows},
	{"linux", Linux},
}

// Detect maps a GOOS value to a supported Platform.
func Detect(goos string) (Platform, error) {
	for _, s := range supported {
		if s.GOOS == goos {
			return s.Platform, nil
		}
	}
	return "", ErrUnsupported
}

// List returns the supported platform names in detection order.
func List() []string {
	result := make([]string, len(supported))
	for i, s := range supported {
		result[i] = string(s.Platform)
	}
	return result
}

// ExeSuffix returns the suffix appended to executables on p.
func (p Platform) ExeSuffix() string {
	if p == Windows {
		return exeSuffix
	}
	return ""
}

// SoftwareRendering reports whether launched applications get Mesa's
// software rasteriser forced on.
func (p Platform) SoftwareRendering() bool { return p == Linux }

func (p Platform) String() string { return string(p) }
