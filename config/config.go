// Package config loads jlv settings from TOML files: a per-user
// config.toml under the OS config directory, overlaid by a jlv.toml or
// .jlv.toml found at the workspace root. Workspace values win over user
// values, and CLI flags win over both (the merge with flags happens in the
// command layer).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"go.jacobcolvin.com/jlv/format"
)

// File is the merged configuration. Nil settings fields were not present in
// any file.
type File struct {
	Format    *string
	Compact   *bool
	NoColor   *bool
	Strict    *bool
	Variables []format.Variable
}

type rawFile struct {
	Config struct {
		Format  *string `toml:"format"`
		Compact *bool   `toml:"compact"`
		NoColor *bool   `toml:"no_color"`
		Strict  *bool   `toml:"strict"`
	} `toml:"config"`
	Variables map[string]string `toml:"variables"`
}

// Load reads and merges every config file that exists. Missing files are
// not an error; unreadable or malformed ones are.
func Load() (*File, error) {
	merged := &File{}

	userDir, err := os.UserConfigDir()
	if err == nil {
		path := filepath.Join(userDir, "jlv", "config.toml")

		f, err := loadPath(path)
		if err != nil {
			return nil, err
		}

		if f != nil {
			slog.Debug("loaded user config", "path", path)
			merged.merge(f)
		}
	}

	wsPath := findWorkspaceConfig()
	if wsPath != "" {
		f, err := loadPath(wsPath)
		if err != nil {
			return nil, err
		}

		if f != nil {
			slog.Debug("loaded workspace config", "path", wsPath)
			merged.merge(f)
		}
	}

	return merged, nil
}

// Apply folds the file's variable entries into vars, preserving the file's
// insertion order.
func (f *File) Apply(vars *format.Variables) {
	for _, v := range f.Variables {
		vars.Set(v.Key, v.Body)
	}
}

func (f *File) merge(other *File) {
	if other.Format != nil {
		f.Format = other.Format
	}

	if other.Compact != nil {
		f.Compact = other.Compact
	}

	if other.NoColor != nil {
		f.NoColor = other.NoColor
	}

	if other.Strict != nil {
		f.Strict = other.Strict
	}

	for _, v := range other.Variables {
		f.setVariable(v.Key, v.Body)
	}
}

func (f *File) setVariable(key, body string) {
	for i := range f.Variables {
		if f.Variables[i].Key == key {
			f.Variables[i].Body = body

			return
		}
	}

	f.Variables = append(f.Variables, format.Variable{Key: key, Body: body})
}

func loadPath(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Fixed well-known locations.
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	return parse(data, path)
}

func parse(data []byte, path string) (*File, error) {
	var raw rawFile

	err := toml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	f := &File{
		Format:  raw.Config.Format,
		Compact: raw.Config.Compact,
		NoColor: raw.Config.NoColor,
		Strict:  raw.Config.Strict,
	}

	// TOML tables decode into maps, which forget declaration order. The
	// variables table is order-sensitive, so recover the order from the
	// source text.
	for _, key := range variableOrder(data) {
		body, ok := raw.Variables[key]
		if !ok {
			continue
		}

		f.Variables = append(f.Variables, format.Variable{Key: key, Body: body})
	}

	return f, nil
}

// variableOrder scans the raw TOML for the [variables] table and returns
// its keys in declaration order.
func variableOrder(data []byte) []string {
	var (
		keys      []string
		inSection bool
	)

	for line := range strings.SplitSeq(string(data), "\n") {
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "[") {
			inSection = strings.TrimSpace(strings.Trim(line, "[]")) == "variables"

			continue
		}

		if !inSection || line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, _, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		key = strings.Trim(key, `"'`)

		if key != "" {
			keys = append(keys, key)
		}
	}

	return keys
}

// findWorkspaceConfig walks up from the working directory to the first
// directory that looks like a workspace root (contains .git, .svn, .jj, or a
// jlv config file) and returns the config file path inside it, or "".
func findWorkspaceConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range []string{"jlv.toml", ".jlv.toml"} {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}

		for _, marker := range []string{".git", ".svn", ".jj"} {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return ""
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}

		dir = parent
	}
}
