package server

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"9fans.net/go/plan9"
	"github.com/cptaffe/tintrc/internal/config"
	"github.com/cptaffe/tintrc/style"
	"github.com/pelletier/go-toml/v2"
)

// Sentinel walk errors.
var (
	ErrNoFile = errors.New("no such file")
	ErrNotDir = errors.New("not a directory")
)

// File-type constants; encode directly into Qid.Path.
const (
	ftRoot = iota
	ftItems
	ftPath
	ftSource
	ftDiagnostics
	ftConfig
	ftBackgroundsDir
	ftBackground
	ftGradientsDir
	ftGradient
	ftCtl
)

// rootFiles lists the children of the root in directory order.
var rootFiles = []int{
	ftItems,
	ftPath,
	ftSource,
	ftDiagnostics,
	ftConfig,
	ftBackgroundsDir,
	ftGradientsDir,
	ftCtl,
}

var fileNames = map[int]string{
	ftItems:          "items",
	ftPath:           "path",
	ftSource:         "source",
	ftDiagnostics:    "diagnostics",
	ftConfig:         "config.toml",
	ftBackgroundsDir: "backgrounds",
	ftGradientsDir:   "gradients",
	ftCtl:            "ctl",
}

func isDir(ft int) bool {
	return ft == ftRoot || ft == ftBackgroundsDir || ft == ftGradientsDir
}

// Qid path encoding: [ft:16][id:48]
func makePath(ft, id int) uint64 {
	return (uint64(ft) << 48) | uint64(id)
}

// tree is the file tree of one loaded configuration. gen counts reloads
// and becomes the Qid version.
type tree struct {
	res *config.Result
	gen uint32
}

func (t tree) qid(ft, id int) plan9.Qid {
	qt := uint8(plan9.QTFILE)
	if isDir(ft) {
		qt = plan9.QTDIR
	}
	return plan9.Qid{Type: qt, Vers: t.gen, Path: makePath(ft, id)}
}

func (t tree) dir(ft, id int) plan9.Dir {
	now := uint32(time.Now().Unix())
	mode := plan9.Perm(0444)
	name := fileNames[ft]
	switch ft {
	case ftRoot:
		name = "/"
	case ftBackground, ftGradient:
		name = strconv.Itoa(id)
	case ftCtl:
		mode = 0222
	}
	if isDir(ft) {
		mode = plan9.DMDIR | 0555
	}
	return plan9.Dir{
		Qid:   t.qid(ft, id),
		Mode:  mode,
		Atime: now, Mtime: now,
		Name: name,
		Uid:  "none", Gid: "none", Muid: "none",
	}
}

// walkStep advances one path component from (ft, id).
func (t tree) walkStep(ft, id int, name string) (int, int, error) {
	if name == ".." {
		switch ft {
		case ftRoot, ftBackgroundsDir, ftGradientsDir:
			return ftRoot, 0, nil
		default:
			return 0, 0, ErrNotDir
		}
	}
	switch ft {
	case ftRoot:
		for _, child := range rootFiles {
			if fileNames[child] == name {
				return child, 0, nil
			}
		}
		return 0, 0, ErrNoFile
	case ftBackgroundsDir:
		n, ok := userID(name, len(t.res.Config.Backgrounds))
		if !ok {
			return 0, 0, ErrNoFile
		}
		return ftBackground, n, nil
	case ftGradientsDir:
		n, ok := userID(name, len(t.res.Config.Gradients))
		if !ok {
			return 0, 0, ErrNoFile
		}
		return ftGradient, n, nil
	default:
		return 0, 0, ErrNotDir
	}
}

// userID parses name as the id of a user entry in a table of size n.
// The built-in entry 0 is not exported.
func userID(name string, n int) (int, bool) {
	id, err := strconv.Atoi(name)
	if err != nil || strconv.Itoa(id) != name {
		return 0, false
	}
	return id, id >= 1 && id < n
}

// readDir returns marshalled plan9.Dir entries for the children of ft.
func (t tree) readDir(ft int) []byte {
	var dirs []plan9.Dir
	switch ft {
	case ftRoot:
		for _, child := range rootFiles {
			dirs = append(dirs, t.dir(child, 0))
		}
	case ftBackgroundsDir:
		for id := 1; id < len(t.res.Config.Backgrounds); id++ {
			dirs = append(dirs, t.dir(ftBackground, id))
		}
	case ftGradientsDir:
		for id := 1; id < len(t.res.Config.Gradients); id++ {
			dirs = append(dirs, t.dir(ftGradient, id))
		}
	}
	var buf []byte
	for _, d := range dirs {
		if b, err := d.Bytes(); err == nil {
			buf = append(buf, b...)
		}
	}
	return buf
}

// contents renders the regular file (ft, id).
func (t tree) contents(ft, id int) ([]byte, error) {
	res := t.res
	cfg := res.Config
	switch ft {
	case ftItems:
		return []byte(cfg.Items.Order + "\n"), nil
	case ftPath:
		return []byte(res.Path + "\n"), nil
	case ftSource:
		return []byte(res.Source.String() + "\n"), nil
	case ftDiagnostics:
		var sb strings.Builder
		for _, d := range res.Diagnostics {
			fmt.Fprintf(&sb, "%s: %s\n", d.Severity, d.Error())
		}
		return []byte(sb.String()), nil
	case ftConfig:
		return toml.Marshal(cfg)
	case ftBackground:
		if id < 1 || id >= len(cfg.Backgrounds) {
			return nil, ErrNoFile
		}
		return []byte(style.FormatBackground(id, cfg.Backgrounds[id])), nil
	case ftGradient:
		if id < 1 || id >= len(cfg.Gradients) {
			return nil, ErrNoFile
		}
		return []byte(style.FormatGradient(id, cfg.Gradients[id])), nil
	}
	return nil, nil
}
