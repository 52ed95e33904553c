// Package clean removes the generated build directory and the IDE and make
// files the generator scatters through the project tree.
package clean

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Failure records one path that could not be removed or visited.
type Failure struct {
	Path string
	Err  error
}

// Report is the outcome of a clean. Nothing in it is fatal.
type Report struct {
	BuildDir        string
	BuildDirMissing bool
	Removed         []string
	Failed          []Failure
}

// Cleaner removes BuildPath whole, then deletes generated files under Root.
type Cleaner struct {
	Root       string
	BuildPath  string
	Extensions []string

	// OnRemove, when set, is called after each successful removal.
	OnRemove func(path string)

	removeAll func(string) error
	remove    func(string) error
}

// New creates a Cleaner that removes buildPath and sweeps root.
func New(root, buildPath string, extensions []string) *Cleaner {
	return &Cleaner{
		Root:       root,
		BuildPath:  buildPath,
		Extensions: extensions,
		removeAll:  os.RemoveAll,
		remove:     os.Remove,
	}
}

// Run removes the build directory, then sweeps Root. The two steps are
// independent; a missing build directory does not stop the sweep.
func (c *Cleaner) Run() *Report {
	r := &Report{BuildDir: c.BuildPath}
	c.removeBuildDir(r)
	c.sweep(r)
	return r
}

func (c *Cleaner) removeBuildDir(r *Report) {
	if _, err := os.Lstat(r.BuildDir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.BuildDirMissing = true
			return
		}
		r.Failed = append(r.Failed, Failure{Path: r.BuildDir, Err: err})
		return
	}
	if err := c.removeAll(r.BuildDir); err != nil {
		r.Failed = append(r.Failed, Failure{Path: r.BuildDir, Err: err})
		return
	}
	c.removed(r, r.BuildDir)
}

func (c *Cleaner) sweep(r *Report) {
	_ = filepath.WalkDir(c.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			r.Failed = append(r.Failed, Failure{Path: path, Err: err})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !c.Match(d.Name()) {
			return nil
		}
		if err := c.remove(path); err != nil {
			r.Failed = append(r.Failed, Failure{Path: path, Err: err})
			return nil
		}
		c.removed(r, path)
		return nil
	})
}

func (c *Cleaner) removed(r *Report, path string) {
	r.Removed = append(r.Removed, path)
	if c.OnRemove != nil {
		c.OnRemove(path)
	}
}

// Match reports whether name ends with one of the clean suffixes.
func (c *Cleaner) Match(name string) bool {
	for _, ext := range c.Extensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
