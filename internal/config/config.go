package config

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/dshills/shortcuts/internal/config/loader"
	"github.com/dshills/shortcuts/internal/dispatcher"
	"github.com/dshills/shortcuts/internal/engine"
	"github.com/dshills/shortcuts/internal/engine/casing"
	"github.com/dshills/shortcuts/internal/engine/word"
	"github.com/dshills/shortcuts/internal/logging"
)

// Config is the complete set of settings.
type Config struct {
	Word     WordConfig
	Case     CaseConfig
	Logging  LoggingConfig
	Dispatch DispatchConfig
}

// WordConfig controls word boundaries.
type WordConfig struct {
	// ExtraChars are treated as word characters in addition to letters,
	// digits and underscore.
	ExtraChars string
}

// CaseConfig controls case conversion.
type CaseConfig struct {
	MinorWords []string
	Locale     string
}

// LoggingConfig controls the logger.
type LoggingConfig struct {
	Level string
}

// DispatchConfig controls action execution.
type DispatchConfig struct {
	// MaxCount caps an action's repeat count. Zero removes the cap.
	MaxCount int
	// Metrics keeps per-action counters and timings.
	Metrics bool
	// SlowThreshold is a duration such as "50ms". Slower dispatches are
	// logged as warnings. Empty disables the report.
	SlowThreshold string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Case: CaseConfig{
			MinorWords: append([]string(nil), casing.DefaultMinorWords...),
			Locale:     "und",
		},
		Logging:  LoggingConfig{Level: "info"},
		Dispatch: DispatchConfig{MaxCount: dispatcher.DefaultMaxRepeatCount},
	}
}

// Map returns the settings as a nested map, the shape loaders produce.
func (c Config) Map() map[string]any {
	words := make([]any, len(c.Case.MinorWords))
	for i, w := range c.Case.MinorWords {
		words[i] = w
	}
	return map[string]any{
		"word": map[string]any{"extraChars": c.Word.ExtraChars},
		"case": map[string]any{
			"minorWords": words,
			"locale":     c.Case.Locale,
		},
		"logging":  map[string]any{"level": c.Logging.Level},
		"dispatch": map[string]any{
			"maxCount":      int64(c.Dispatch.MaxCount),
			"metrics":       c.Dispatch.Metrics,
			"slowThreshold": c.Dispatch.SlowThreshold,
		},
	}
}

// FromMap decodes a nested settings map on top of the defaults. Unknown
// keys are ignored.
func FromMap(m map[string]any) (Config, error) {
	c := Default()
	var err error
	if c.Word.ExtraChars, err = getString(m, "word.extraChars", c.Word.ExtraChars); err != nil {
		return Config{}, err
	}
	if c.Case.MinorWords, err = getWords(m, "case.minorWords", c.Case.MinorWords); err != nil {
		return Config{}, err
	}
	if c.Case.Locale, err = getString(m, "case.locale", c.Case.Locale); err != nil {
		return Config{}, err
	}
	if c.Logging.Level, err = getString(m, "logging.level", c.Logging.Level); err != nil {
		return Config{}, err
	}
	if c.Dispatch.MaxCount, err = getInt(m, "dispatch.maxCount", c.Dispatch.MaxCount); err != nil {
		return Config{}, err
	}
	if c.Dispatch.Metrics, err = getBool(m, "dispatch.metrics", c.Dispatch.Metrics); err != nil {
		return Config{}, err
	}
	if c.Dispatch.SlowThreshold, err = getString(m, "dispatch.slowThreshold", c.Dispatch.SlowThreshold); err != nil {
		return Config{}, err
	}
	return c, c.Validate()
}

// Validate checks values that are well typed but unusable.
func (c Config) Validate() error {
	if _, err := c.Tag(); err != nil {
		return err
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: logging.level %q", ErrValidationFailed, c.Logging.Level)
	}
	if c.Dispatch.MaxCount < 0 {
		return fmt.Errorf("%w: dispatch.maxCount %d is negative", ErrValidationFailed, c.Dispatch.MaxCount)
	}
	if _, err := c.slowThreshold(); err != nil {
		return err
	}
	return nil
}

func (c Config) slowThreshold() (time.Duration, error) {
	if c.Dispatch.SlowThreshold == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Dispatch.SlowThreshold)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: dispatch.slowThreshold %q", ErrValidationFailed, c.Dispatch.SlowThreshold)
	}
	return d, nil
}

// DispatcherConfig returns the dispatcher settings. Call Validate first;
// an unparsable threshold is treated as unset.
func (c Config) DispatcherConfig() dispatcher.Config {
	dc := dispatcher.DefaultConfig().WithMaxRepeatCount(c.Dispatch.MaxCount)
	if c.Dispatch.Metrics {
		dc = dc.WithMetrics()
	}
	if d, err := c.slowThreshold(); err == nil {
		dc = dc.WithSlowThreshold(d)
	}
	return dc
}

// Tag parses case.locale.
func (c Config) Tag() (language.Tag, error) {
	if c.Case.Locale == "" {
		return language.Und, nil
	}
	tag, err := language.Parse(c.Case.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("%w: case.locale %q: %v", ErrValidationFailed, c.Case.Locale, err)
	}
	return tag, nil
}

// LogLevel returns logging.level as a logging.Level.
func (c Config) LogLevel() logging.Level {
	return logging.ParseLevel(c.Logging.Level)
}

// EngineOptions returns the engine options these settings imply. The
// word classifier is shared between word selection and title case.
func (c Config) EngineOptions() ([]engine.Option, error) {
	tag, err := c.Tag()
	if err != nil {
		return nil, err
	}
	cl := word.NewClassifier(c.Word.ExtraChars)
	caser := casing.New(
		casing.WithLocale(tag),
		casing.WithMinorWords(c.Case.MinorWords),
		casing.WithClassifier(cl),
	)
	return []engine.Option{engine.WithClassifier(cl), engine.WithCaser(caser)}, nil
}

// NewEngine builds an engine configured by these settings.
func (c Config) NewEngine() (*engine.Engine, error) {
	opts, err := c.EngineOptions()
	if err != nil {
		return nil, err
	}
	return engine.New(opts...), nil
}

// Loader loads settings from a file and the environment.
type Loader struct {
	fs  loader.FileSystem
	env *loader.EnvLoader
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFS sets the file system config files are read from.
func WithFS(fs loader.FileSystem) LoaderOption {
	return func(l *Loader) {
		l.fs = fs
	}
}

// WithEnv sets the environment loader. nil disables the environment layer.
func WithEnv(env *loader.EnvLoader) LoaderOption {
	return func(l *Loader) {
		l.env = env
	}
}

// NewLoader creates a loader reading the OS file system and SHORTCUTS_
// variables.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		fs:  loader.DefaultFS(),
		env: loader.NewEnvLoader(loader.DefaultEnvPrefix),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load merges defaults, the file at path (skipped when path is empty or
// the file does not exist) and the environment.
func (l *Loader) Load(path string) (Config, error) {
	m := Default().Map()

	if path != "" {
		fileMap, err := loader.LoadFile(l.fs, path)
		if err != nil {
			return Config{}, err
		}
		m = loader.DeepMerge(m, fileMap)
	}

	if l.env != nil {
		envMap, err := l.env.Load()
		if err != nil {
			return Config{}, err
		}
		m = loader.DeepMerge(m, envMap)
	}

	return FromMap(m)
}

// Sources returns the config files Load(path) reads: path and every file
// it includes. It is empty when path is empty or missing.
func (l *Loader) Sources(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	return loader.Sources(l.fs, path)
}

// Load loads settings with a default Loader.
func Load(path string) (Config, error) {
	return NewLoader().Load(path)
}

func lookup(m map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	var cur any = m
	for _, p := range parts {
		sec, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = sec[p]; !ok {
			return nil, false
		}
	}
	return cur, true
}

func getString(m map[string]any, path, def string) (string, error) {
	v, ok := lookup(m, path)
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is %T, want string", ErrTypeMismatch, path, v)
	}
	return s, nil
}

func getInt(m map[string]any, path string, def int) (int, error) {
	v, ok := lookup(m, path)
	if !ok {
		return def, nil
	}
	switch x := v.(type) {
	case int:
		return x, nil
	case int64:
		return int(x), nil
	case float64:
		if x == float64(int(x)) {
			return int(x), nil
		}
	}
	return 0, fmt.Errorf("%w: %s is %T, want integer", ErrTypeMismatch, path, v)
}

func getBool(m map[string]any, path string, def bool) (bool, error) {
	v, ok := lookup(m, path)
	if !ok {
		return def, nil
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s is %T, want bool", ErrTypeMismatch, path, v)
	}
	return b, nil
}

// getWords accepts a list of strings or one comma-separated string.
func getWords(m map[string]any, path string, def []string) ([]string, error) {
	v, ok := lookup(m, path)
	if !ok {
		return def, nil
	}
	switch x := v.(type) {
	case []any:
		out := make([]string, 0, len(x))
		for _, item := range x {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s item is %T, want string", ErrTypeMismatch, path, item)
			}
			out = append(out, s)
		}
		return out, nil
	case []string:
		return x, nil
	case string:
		var out []string
		for _, w := range strings.Split(x, ",") {
			if w = strings.TrimSpace(w); w != "" {
				out = append(out, w)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s is %T, want list of strings", ErrTypeMismatch, path, v)
	}
}
