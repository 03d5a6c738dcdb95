package config

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cptaffe/tintrc/logger"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// DefaultRC is the configuration written for users who have none.
//
//go:embed tint2rc
var DefaultRC []byte

// ErrNoConfig is returned when no configuration file could be opened.
var ErrNoConfig = errors.New("no configuration file")

// Source tells which bootstrap step produced the loaded file.
type Source int

const (
	SourceExplicit Source = iota
	SourceUser
	SourceTemplate
	SourceEmbedded
)

func (s Source) String() string {
	switch s {
	case SourceExplicit:
		return "explicit"
	case SourceUser:
		return "user"
	case SourceTemplate:
		return "template"
	case SourceEmbedded:
		return "embedded"
	}
	return fmt.Sprintf("Source(%d)", int(s))
}

// Result is a loaded configuration together with where it came from and
// everything that went wrong on the way.
type Result struct {
	Config      *Config
	Path        string
	Source      Source
	Diagnostics []Diagnostic
}

// Err combines the diagnostics into one error, or returns nil if there
// were none.
func (r *Result) Err() error {
	var err error
	for _, d := range r.Diagnostics {
		err = multierr.Append(err, d)
	}
	return err
}

// LoadOptions configures Load.
type LoadOptions struct {
	// Path is an explicit configuration file. When set no other location
	// is tried.
	Path string

	// ConfigHome and ConfigDirs replace the per-user and system
	// configuration directories derived from the environment.
	ConfigHome string
	ConfigDirs []string

	Options
}

// ReadFile parses the file at path on top of the built-in defaults.
func ReadFile(ctx context.Context, path string, opts Options) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoConfig, err)
	}
	defer f.Close()
	return read(ctx, path, f, opts)
}

func read(ctx context.Context, path string, r io.Reader, opts Options) (*Result, error) {
	p := NewParser(ctx, Default(), opts)
	if err := p.Parse(path, r); err != nil {
		return nil, err
	}
	p.Finish()
	return &Result{
		Config:      p.Config(),
		Path:        path,
		Diagnostics: p.Diagnostics(),
	}, nil
}

// Load finds, creates if necessary, and parses the configuration file.
//
// An explicit path is parsed as is. Otherwise the per-user tint2/tint2rc
// is used if it exists; if not, the first system template found is copied
// there, and failing that the embedded DefaultRC is written there. File
// system failures while creating the user file are logged and recorded as
// diagnostics; only a file that cannot be opened in the end is an error.
func Load(ctx context.Context, opts LoadOptions) (*Result, error) {
	if opts.Path != "" {
		res, err := ReadFile(ctx, opts.Path, opts.Options)
		if err != nil {
			return nil, err
		}
		res.Source = SourceExplicit
		return res, nil
	}

	b := &bootstrap{log: logger.L(ctx).Named("tint2")}
	home, err := opts.configHome()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoConfig, err)
	}
	user := filepath.Join(home, "tint2", "tint2rc")

	src := SourceUser
	if _, err := os.Stat(user); err != nil {
		b.warnf(user, "could not find a config file, creating a default one")
		b.mkdir(home)
		if tmpl := findTemplate(opts.configDirs()); tmpl != "" {
			src = SourceTemplate
			b.mkdir(filepath.Dir(user))
			b.copyFile(tmpl, user)
		} else {
			src = SourceEmbedded
			b.mkdir(filepath.Dir(user))
			b.writeFile(user, DefaultRC)
		}
	}

	res, err := ReadFile(ctx, user, opts.Options)
	if err != nil {
		return nil, err
	}
	res.Source = src
	res.Diagnostics = append(b.diags, res.Diagnostics...)
	return res, nil
}

func (o LoadOptions) configHome() (string, error) {
	if o.ConfigHome != "" {
		return o.ConfigHome, nil
	}
	return os.UserConfigDir()
}

func (o LoadOptions) configDirs() []string {
	if o.ConfigDirs != nil {
		return o.ConfigDirs
	}
	if v := os.Getenv("XDG_CONFIG_DIRS"); v != "" {
		var dirs []string
		for _, d := range strings.Split(v, ":") {
			if filepath.IsAbs(d) {
				dirs = append(dirs, d)
			}
		}
		return dirs
	}
	return []string{"/etc/xdg"}
}

func findTemplate(dirs []string) string {
	for _, d := range dirs {
		path := filepath.Join(d, "tint2", "tint2rc")
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// bootstrap performs the best-effort file system steps of Load.
type bootstrap struct {
	log   *zap.Logger
	diags []Diagnostic
}

func (b *bootstrap) warnf(path, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	b.diags = append(b.diags, Diagnostic{Severity: Warning, Path: path, Message: msg})
	b.log.Warn(msg, zap.String("path", path))
}

func (b *bootstrap) mkdir(dir string) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		b.warnf(dir, "create directory: %v", err)
	}
}

func (b *bootstrap) copyFile(src, dst string) {
	in, err := os.Open(src)
	if err != nil {
		b.warnf(src, "open template: %v", err)
		return
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		b.warnf(dst, "create: %v", err)
		return
	}
	if _, err := io.Copy(out, in); err != nil {
		b.warnf(dst, "copy %s: %v", src, err)
	}
	if err := out.Close(); err != nil {
		b.warnf(dst, "close: %v", err)
	}
}

func (b *bootstrap) writeFile(dst string, data []byte) {
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		b.warnf(dst, "write default config: %v", err)
	}
}
