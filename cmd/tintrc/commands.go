package main

import (
	"context"
	"fmt"
	"io"

	"github.com/cptaffe/tintrc/internal/config"
	"github.com/cptaffe/tintrc/remote"
	"github.com/cptaffe/tintrc/style"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// check loads the configuration and lists its diagnostics. Problems in
// the file are not errors; only a file that cannot be read is.
func check(ctx context.Context, w io.Writer, opts config.LoadOptions) error {
	res, err := config.Load(ctx, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s (%s)\n", res.Path, res.Source)
	for _, d := range res.Diagnostics {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d.Error())
	}
	fmt.Fprintf(w, "%d backgrounds, %d gradients, items %q, %d problems\n",
		len(res.Config.UserBackgrounds()),
		len(res.Config.UserGradients()),
		res.Config.Items.Order,
		len(res.Diagnostics))
	return nil
}

// dump writes the resolved configuration in the named format. The rc
// format holds only the background and gradient palettes.
func dump(ctx context.Context, w io.Writer, opts config.LoadOptions, format string) error {
	res, err := config.Load(ctx, opts)
	if err != nil {
		return err
	}
	data, err := encode(res.Config, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func encode(cfg *config.Config, format string) ([]byte, error) {
	switch format {
	case "toml":
		return toml.Marshal(cfg)
	case "yaml":
		return yaml.Marshal(cfg)
	case "rc":
		return []byte(style.Format(cfg.Backgrounds, cfg.Gradients)), nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// cat copies a file of a running server to w. An empty srvPath means the
// server posted under the default service name.
func cat(w io.Writer, srvPath, path string) error {
	var data []byte
	if srvPath == "" {
		var err error
		if data, err = remote.ReadFile(path); err != nil {
			return err
		}
	} else {
		fs, err := remote.Dial(srvPath)
		if err != nil {
			return err
		}
		if data, err = remote.Read(fs, path); err != nil {
			return err
		}
	}
	_, err := w.Write(data)
	return err
}

// items prints the item order of a running server.
func items(w io.Writer, srvPath string) error {
	var order string
	if srvPath == "" {
		var err error
		if order, err = remote.Items(); err != nil {
			return err
		}
	} else {
		fs, err := remote.Dial(srvPath)
		if err != nil {
			return err
		}
		if order, err = remote.ItemsFsys(fs); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, order)
	return err
}

func reload(srvPath string) error {
	if srvPath == "" {
		return remote.Reload()
	}
	fs, err := remote.Dial(srvPath)
	if err != nil {
		return err
	}
	return remote.ReloadFsys(fs)
}
