// Package loader reads settings files and environment variables into
// nested maps keyed by section, e.g. {"word": {"extraChars": "-"}}.
//
// A file may pull in others with an "@include" key holding a path or a
// list of paths, relative to the including file. Included files sit
// underneath the file that names them. Layers are combined with
// DeepMerge, later layers winning.
package loader

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// MaxIncludeDepth bounds nested @include directives.
const MaxIncludeDepth = 8

// IncludeKey is the top-level key listing files to include.
const IncludeKey = "@include"

// ErrUnsupportedFormat is returned for files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Format is a settings file syntax.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

func (f Format) decode(source string, data []byte) (map[string]any, error) {
	if f == FormatYAML {
		return decodeYAML(source, data)
	}
	return decodeTOML(source, data)
}

// FileSystem is the file access loaders need. Tests substitute an
// in-memory implementation.
type FileSystem interface {
	fs.FS
	// ReadFile reads the entire file at path.
	ReadFile(path string) ([]byte, error)
	// Stat returns file info for path.
	Stat(path string) (fs.FileInfo, error)
}

// OSFS implements FileSystem using the real OS file system.
type OSFS struct{}

// Open implements fs.FS.
func (OSFS) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// ReadFile reads the entire file at path.
func (OSFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// Stat returns file info for path.
func (OSFS) Stat(path string) (fs.FileInfo, error) {
	return os.Stat(path)
}

// DefaultFS returns the default file system (OS).
func DefaultFS() FileSystem {
	return OSFS{}
}

// fileLoader reads one format from a file system.
type fileLoader struct {
	fs     FileSystem
	path   string
	format Format
}

// Load reads the configured path. A missing file yields nil, nil.
func (l *fileLoader) Load() (map[string]any, error) {
	return l.LoadFrom(l.path)
}

// LoadFrom reads path. A missing file yields nil, nil.
func (l *fileLoader) LoadFrom(path string) (map[string]any, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return l.format.decode(path, data)
}

// LoadFromReader decodes everything r yields.
func (l *fileLoader) LoadFromReader(r io.Reader) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return l.format.decode("<reader>", data)
}

// LoadFile loads path in the format its extension selects, resolving
// includes. A missing top-level file yields nil, nil; a missing include is
// an error.
func LoadFile(fsys FileSystem, path string) (map[string]any, error) {
	r := includeResolver{fs: fsys, maxDepth: MaxIncludeDepth}
	return r.load(path, true)
}

// Sources returns every file LoadFile(fsys, path) reads, path first and
// each include once. A missing top-level file yields nil, nil.
func Sources(fsys FileSystem, path string) ([]string, error) {
	r := includeResolver{fs: fsys, maxDepth: MaxIncludeDepth}
	if _, err := r.load(path, true); err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(r.files))
	out := r.files[:0]
	for _, f := range r.files {
		if !seen[f] {
			seen[f] = true
			out = append(out, f)
		}
	}
	return out, nil
}

// includeResolver loads a file and, recursively, the files it includes.
type includeResolver struct {
	fs       FileSystem
	maxDepth int
	stack    []string
	files    []string
}

func (r *includeResolver) load(path string, optional bool) (map[string]any, error) {
	for _, p := range r.stack {
		if p == path {
			return nil, fmt.Errorf("%w: %s", ErrIncludeCycle, strings.Join(append(r.stack, path), " -> "))
		}
	}
	if len(r.stack) > r.maxDepth {
		return nil, fmt.Errorf("%w: %s", ErrIncludeDepth, path)
	}

	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	l := &fileLoader{fs: r.fs, format: format}
	config, err := l.LoadFrom(path)
	if err != nil {
		return nil, err
	}
	if config == nil {
		if optional {
			return nil, nil
		}
		return nil, fmt.Errorf("include %s: %w", path, fs.ErrNotExist)
	}
	r.files = append(r.files, path)

	includes, err := includeList(config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(includes) == 0 {
		return config, nil
	}

	r.stack = append(r.stack, path)
	defer func() { r.stack = r.stack[:len(r.stack)-1] }()

	base := filepath.Dir(path)
	merged := map[string]any{}
	for _, inc := range includes {
		if !filepath.IsAbs(inc) {
			inc = filepath.Join(base, inc)
		}
		sub, err := r.load(inc, false)
		if err != nil {
			return nil, err
		}
		merged = DeepMerge(merged, sub)
	}
	return DeepMerge(merged, config), nil
}

// includeList removes IncludeKey from config and returns its paths.
func includeList(config map[string]any) ([]string, error) {
	v, ok := config[IncludeKey]
	if !ok {
		return nil, nil
	}
	delete(config, IncludeKey)

	switch x := v.(type) {
	case string:
		return []string{x}, nil
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s entries must be strings, got %T", IncludeKey, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%s must be a string or list of strings, got %T", IncludeKey, v)
	}
}
