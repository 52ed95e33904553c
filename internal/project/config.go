package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/smartgl/sgl/internal/platform"
)

const ConfigFile = "sgl.toml"

const (
	DefaultGenerator = "premake5"
	DefaultBuildDir  = "build"
)

// DefaultExtensions are the generated-file suffixes removed by clean.
var DefaultExtensions = []string{".sln", ".vcxproj", ".vcxproj.filters", ".vcxproj.user", "Makefile"}

var ErrConfigNotFound = errors.New("config file not found")

// File is the optional sgl.toml stored next to the dispatcher.
type File struct {
	Generator  string   `toml:"generator"`
	BuildDir   string   `toml:"build-dir"`
	Extensions []string `toml:"extensions"`
	Verbose    bool     `toml:"verbose"`
}

// Config is resolved once per invocation and handed to every command.
// Handlers never consult the working directory or runtime.GOOS themselves.
type Config struct {
	Platform platform.Platform

	// ScriptsDir holds the dispatcher and one generator directory per platform.
	ScriptsDir string
	// Root is the project tree the applications and build files live in.
	Root string

	Generator  string
	BuildDir   string
	Extensions []string
	Verbose    bool
}

// LoadOptions carries the values known before the config file is read.
// Empty fields fall back to defaults.
type LoadOptions struct {
	Platform   platform.Platform
	ScriptsDir string
	Root       string
	ConfigPath string
	// Verbose is set only when the flag was given; it then replaces the
	// file value in either direction.
	Verbose *bool
}

// Load builds the Config for one invocation. A missing sgl.toml is fine;
// a malformed one is not.
func Load(lo LoadOptions) (*Config, error) {
	cfg := &Config{
		Platform:   lo.Platform,
		ScriptsDir: lo.ScriptsDir,
		Root:       lo.Root,
	}

	if cfg.ScriptsDir == "" {
		dir, err := ExecutableDir()
		if err != nil {
			return nil, fmt.Errorf("locate dispatcher: %w", err)
		}
		cfg.ScriptsDir = dir
	}

	path := lo.ConfigPath
	if path == "" {
		path = filepath.Join(cfg.ScriptsDir, ConfigFile)
	}
	f, err := LoadFile(path)
	switch {
	case errors.Is(err, ErrConfigNotFound):
		if lo.ConfigPath != "" {
			return nil, fmt.Errorf("%s: %w", lo.ConfigPath, err)
		}
	case err != nil:
		return nil, err
	default:
		cfg.apply(f)
	}

	if lo.Verbose != nil {
		cfg.Verbose = *lo.Verbose
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile decodes an sgl.toml.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return &f, nil
}

func (c *Config) apply(f *File) {
	c.Generator = f.Generator
	c.BuildDir = f.BuildDir
	c.Extensions = f.Extensions
	c.Verbose = f.Verbose
}

// Normalize applies defaults for unset fields and cleans paths.
func (c *Config) Normalize() {
	c.ScriptsDir = filepath.Clean(c.ScriptsDir)
	if c.Root == "" {
		c.Root = filepath.Dir(c.ScriptsDir)
	} else {
		c.Root = filepath.Clean(c.Root)
	}
	if c.Generator == "" {
		c.Generator = DefaultGenerator
	}
	if c.BuildDir == "" {
		c.BuildDir = DefaultBuildDir
	}
	if len(c.Extensions) == 0 {
		c.Extensions = DefaultExtensions
	}
}

// Validate checks config constraints.
func (c *Config) Validate() error {
	if c.Platform == "" {
		return errors.New("platform not set")
	}
	if c.Generator == "" {
		return errors.New("generator not set")
	}
	if strings.ContainsAny(c.Generator, `/\`) {
		return fmt.Errorf("generator must be a file name, got %q", c.Generator)
	}
	if filepath.IsAbs(c.BuildDir) || !filepath.IsLocal(c.BuildDir) {
		return fmt.Errorf("build-dir must be relative to the project root, got %q", c.BuildDir)
	}
	if len(c.Extensions) == 0 {
		return errors.New("extensions: at least one suffix required")
	}
	for _, ext := range c.Extensions {
		if ext == "" {
			return errors.New("extensions: empty suffix would match every file")
		}
	}
	return nil
}

// BuildPath is the absolute build output directory removed by clean.
func (c *Config) BuildPath() string {
	return filepath.Join(c.Root, c.BuildDir)
}

// ExecutableDir returns the directory of the running binary with symlinks
// resolved.
func ExecutableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}
