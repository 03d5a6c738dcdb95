package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// ErrNotDir is returned by appsDir for a path that is not a directory.
var ErrNotDir = errors.New("not a directory")

// appsDir lists the .desktop files below dir. Subdirectories are visited
// first; entries of each level are sorted in natural case-insensitive
// order.
func appsDir(dir string) ([]string, error) {
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s: %w", dir, ErrNotDir)
	}
	var apps []string
	walkApps(dir, &apps)
	return apps, nil
}

func walkApps(dir string, apps *[]string) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	var subdirs, files []string
	for _, e := range ents {
		path := filepath.Join(dir, e.Name())
		isDir := e.IsDir()
		if e.Type()&os.ModeSymlink != 0 {
			if fi, err := os.Stat(path); err == nil {
				isDir = fi.IsDir()
			}
		}
		switch {
		case isDir:
			subdirs = append(subdirs, path)
		case strings.HasSuffix(path, ".desktop"):
			files = append(files, path)
		}
	}
	sortNatural(subdirs)
	for _, d := range subdirs {
		walkApps(d, apps)
	}
	sortNatural(files)
	*apps = append(*apps, files...)
}

func sortNatural(s []string) {
	fold := cases.Fold()
	keys := make(map[string]string, len(s))
	for _, v := range s {
		keys[v] = fold.String(v)
	}
	sort.SliceStable(s, func(i, j int) bool {
		return naturalLess(keys[s[i]], keys[s[j]])
	})
}

// naturalLess compares a and b treating runs of digits as numbers, so
// "app2" sorts before "app10". Leading zeros are ignored.
func naturalLess(a, b string) bool {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]
		if isDigit(ca) && isDigit(cb) {
			na, ni := digitRun(a, i)
			nb, nj := digitRun(b, j)
			if len(na) != len(nb) {
				return len(na) < len(nb)
			}
			if na != nb {
				return na < nb
			}
			i, j = ni, nj
			continue
		}
		if ca != cb {
			return ca < cb
		}
		i++
		j++
	}
	return len(a)-i < len(b)-j
}

// digitRun returns the digits starting at s[i] without leading zeros, and
// the index just past the run.
func digitRun(s string, i int) (string, int) {
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	run := strings.TrimLeft(s[start:i], "0")
	return run, i
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
