package config

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/agext/levenshtein"
	"github.com/cptaffe/tintrc/logger"
	"go.uber.org/zap"
)

// Severity grades a Diagnostic.
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Diagnostic is a problem found while interpreting a file. Diagnostics
// never stop a parse; the affected field keeps a default.
type Diagnostic struct {
	Severity Severity
	Path     string
	Line     int
	Key      string
	Message  string
}

func (d Diagnostic) Error() string {
	var sb strings.Builder
	switch {
	case d.Path != "" && d.Line > 0:
		fmt.Fprintf(&sb, "%s:%d: ", d.Path, d.Line)
	case d.Path != "":
		fmt.Fprintf(&sb, "%s: ", d.Path)
	}
	if d.Key != "" {
		fmt.Fprintf(&sb, "%s: ", d.Key)
	}
	sb.WriteString(d.Message)
	return sb.String()
}

// Options carries the environment a parse depends on.
type Options struct {
	// SnapshotPath is set when the panel renders a single snapshot; the
	// systray is never enabled in that mode.
	SnapshotPath string

	// Monitors lists the connected monitors for name and primary lookups.
	Monitors []Monitor

	// HomeDir replaces the user's home directory in tilde expansion.
	HomeDir string
}

// Parser interprets a stream of directives into a Config.
//
// A Parser is used for one pass: feed it with Parse or Apply, then call
// Finish exactly once. It is not safe for concurrent use.
type Parser struct {
	cfg  *Config
	opts Options
	log  *zap.Logger

	path string
	line int
	key  string

	// Interaction-state colors read explicitly for the newest background.
	fillHoverSet     bool
	borderHoverSet   bool
	fillPressedSet   bool
	borderPressedSet bool

	positionSet bool
	// explicitOrder is set once an item order directive has been seen; the
	// legacy enable directives stop editing the order from then on.
	explicitOrder bool
	finished      bool

	diags []Diagnostic
}

// NewParser returns a parser that mutates cfg. cfg would normally come from
// Default.
func NewParser(ctx context.Context, cfg *Config, opts Options) *Parser {
	return &Parser{
		cfg:  cfg,
		opts: opts,
		log:  logger.L(ctx).Named("tint2"),
	}
}

// Config returns the configuration being built.
func (p *Parser) Config() *Config { return p.cfg }

// Diagnostics returns the problems recorded so far.
func (p *Parser) Diagnostics() []Diagnostic { return p.diags }

// Parse reads "key = value" lines from r and applies each. Lines have no
// length limit. The name is used in diagnostics only.
func (p *Parser) Parse(name string, r io.Reader) error {
	p.path = name
	p.line = 0
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			p.line++
			if key, value, ok := parseLine(line); ok {
				p.Apply(key, value)
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}
	}
}

// parseLine splits a line into key and value around the first '='. Blank
// lines, comments and lines without '=' are skipped.
func parseLine(line string) (key, value string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", "", false
	}
	key, value, ok = strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", false
	}
	return key, strings.TrimSpace(value), true
}

// Apply interprets one directive.
func (p *Parser) Apply(key, value string) {
	p.key = key
	defer func() { p.key = "" }()

	if d, ok := directives[key]; ok {
		d(p, value)
		return
	}
	if p.applyTaskState(key, value) {
		return
	}
	msg := fmt.Sprintf("invalid option %q, upgrade tint2 or correct your config file", key)
	if s := suggest(key); s != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", s)
	}
	p.warnf("%s", msg)
}

// Finish runs the end-of-stream steps: the deferred color cascade of the
// last background, the default panel position, the item order
// reconciliation and the resolution of unset background ids.
func (p *Parser) Finish() {
	if p.finished {
		return
	}
	p.finished = true
	p.line = 0

	p.finalizeBackground()

	if !p.positionSet {
		p.cfg.Panel.Position.Edge = EdgeBottom
		p.cfg.Panel.Position.Vertical = false
	}

	p.finishItems()
	p.resolveUnset()
}

func (p *Parser) warnf(format string, args ...any) {
	p.report(Warning, fmt.Sprintf(format, args...))
}

func (p *Parser) errorf(format string, args ...any) {
	p.report(Error, fmt.Sprintf(format, args...))
}

func (p *Parser) report(sev Severity, msg string) {
	d := Diagnostic{
		Severity: sev,
		Path:     p.path,
		Line:     p.line,
		Key:      p.key,
		Message:  msg,
	}
	p.diags = append(p.diags, d)

	fields := []zap.Field{zap.String("path", d.Path), zap.Int("line", d.Line)}
	if d.Key != "" {
		fields = append(fields, zap.String("key", d.Key))
	}
	if sev == Error {
		p.log.Error(msg, fields...)
	} else {
		p.log.Warn(msg, fields...)
	}
}

// suggest returns the known directive closest to key, if one is close
// enough to be a likely typo.
func suggest(key string) string {
	best, bestDist := "", 3
	for _, k := range directiveKeys() {
		if d := levenshtein.Distance(key, k, nil); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

var directiveKeys = sync.OnceValue(func() []string {
	keys := make([]string, 0, len(directives))
	for k := range directives {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
})
