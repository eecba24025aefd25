// Package config loads conversion targets and environment defaults for the
// glyph sheet tools.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/joho/godotenv"

	"github.com/gogpu/glyphsheet"
)

// ErrUnknownTarget is returned when a requested target is not configured.
var ErrUnknownTarget = errors.New("config: unknown target")

// Environment variables read by FromEnv.
const (
	EnvDir      = "GLYPHSHEET_DIR"
	EnvLogLevel = "GLYPHSHEET_LOG_LEVEL"
	EnvLogFile  = "GLYPHSHEET_LOG_FILE"
)

// Env holds defaults taken from the environment.
type Env struct {
	Dir      string
	LogLevel string
	LogFile  string
}

// LoadEnv loads the first of .env.local and .env found in dir into the
// process environment. Variables that are already set win. It returns the
// file that was loaded, or "" when neither exists.
func LoadEnv(dir string) (string, error) {
	for _, name := range []string{".env.local", ".env"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return "", fmt.Errorf("config: load %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

// FromEnv reads the GLYPHSHEET_* variables, applying defaults.
func FromEnv() Env {
	e := Env{
		Dir:      os.Getenv(EnvDir),
		LogLevel: os.Getenv(EnvLogLevel),
		LogFile:  os.Getenv(EnvLogFile),
	}
	if e.Dir == "" {
		e.Dir = "."
	}
	if e.LogLevel == "" {
		e.LogLevel = "info"
	}
	return e
}

// File is the on-disk form of a targets file.
type File struct {
	Targets []Target `json:"targets"`
}

// Target is one entry of a targets file.
type Target struct {
	Name    string             `json:"name"`
	Source  string             `json:"source"`
	Output  string             `json:"output"`
	Glyphs  int                `json:"glyphs"`
	Layout  glyphsheet.Layout  `json:"layout"`
	Ink     glyphsheet.InkSpec `json:"ink"`
	Charset string             `json:"charset,omitempty"`
	Order   string             `json:"order,omitempty"`
}

// Variant validates t and converts it.
func (t Target) Variant() (glyphsheet.Variant, error) {
	if t.Name == "" || t.Source == "" || t.Output == "" {
		return glyphsheet.Variant{}, fmt.Errorf("config: target %q needs name, source and output", t.Name)
	}
	if _, err := glyphsheet.GlyphShift(t.Glyphs); err != nil {
		return glyphsheet.Variant{}, fmt.Errorf("config: target %s: %w", t.Name, err)
	}
	if err := t.Layout.Validate(); err != nil {
		return glyphsheet.Variant{}, fmt.Errorf("config: target %s: %w", t.Name, err)
	}
	if _, err := t.Ink.Compile(); err != nil {
		return glyphsheet.Variant{}, fmt.Errorf("config: target %s: %w", t.Name, err)
	}
	cs, err := glyphsheet.CharsetByName(t.Charset)
	if err != nil {
		return glyphsheet.Variant{}, fmt.Errorf("config: target %s: %w", t.Name, err)
	}
	order, err := glyphsheet.ParseOrder(t.Order)
	if err != nil {
		return glyphsheet.Variant{}, fmt.Errorf("config: target %s: %w", t.Name, err)
	}
	return glyphsheet.Variant{
		Name:    t.Name,
		Source:  t.Source,
		Output:  t.Output,
		Layout:  t.Layout,
		Glyphs:  t.Glyphs,
		Ink:     t.Ink,
		Charset: cs,
		Order:   order,
	}, nil
}

// Parse decodes a targets file. Unknown fields are rejected.
func Parse(r io.Reader) ([]glyphsheet.Variant, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if len(f.Targets) == 0 {
		return nil, errors.New("config: no targets")
	}

	variants := make([]glyphsheet.Variant, 0, len(f.Targets))
	for _, t := range f.Targets {
		v, err := t.Variant()
		if err != nil {
			return nil, err
		}
		if slices.ContainsFunc(variants, func(o glyphsheet.Variant) bool { return o.Name == v.Name }) {
			return nil, fmt.Errorf("config: duplicate target %s", v.Name)
		}
		variants = append(variants, v)
	}
	return variants, nil
}

// Load reads a targets file from path.
func Load(path string) ([]glyphsheet.Variant, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Parse(f)
}

// Select returns the variants named in names, in that order. An empty
// names selects every variant.
func Select(variants []glyphsheet.Variant, names []string) ([]glyphsheet.Variant, error) {
	if len(names) == 0 {
		return variants, nil
	}
	out := make([]glyphsheet.Variant, 0, len(names))
	for _, name := range names {
		i := slices.IndexFunc(variants, func(v glyphsheet.Variant) bool { return v.Name == name })
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, name)
		}
		out = append(out, variants[i])
	}
	return out, nil
}

// Resolve makes relative source and output paths relative to dir.
func Resolve(variants []glyphsheet.Variant, dir string) []glyphsheet.Variant {
	out := slices.Clone(variants)
	for i := range out {
		if !filepath.IsAbs(out[i].Source) {
			out[i].Source = filepath.Join(dir, out[i].Source)
		}
		if !filepath.IsAbs(out[i].Output) {
			out[i].Output = filepath.Join(dir, out[i].Output)
		}
	}
	return out
}
