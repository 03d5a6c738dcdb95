// Command tintrc interprets tint2 panel configuration files.
//
// Usage:
//
//	tintrc [flags] check          parse and list problems
//	tintrc [flags] dump           print the resolved model
//	tintrc [flags] preview        show the background palette
//	tintrc [flags] serve          export the model over 9P
//	tintrc [flags] cat <path>     read a file from a running server
//	tintrc [flags] items          print the item order of a running server
//	tintrc [flags] reload         make a running server reread its file
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"9fans.net/go/plan9/client"
	"github.com/cptaffe/tintrc/internal/config"
	"github.com/cptaffe/tintrc/logger"
	"github.com/cptaffe/tintrc/remote"
	"go.uber.org/zap"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: tintrc [flags] check|dump|preview|serve|cat <path>|items|reload\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	cfgPath := flag.String("c", "", "config file (default: $XDG_CONFIG_HOME/tint2/tint2rc)")
	srv := flag.String("srv", "", "unix socket path (default: $NAMESPACE/"+remote.Service+")")
	snapshot := flag.String("snapshot", "", "snapshot image path; the systray is disabled")
	format := flag.String("format", "toml", "dump format: toml, yaml or rc")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = usage
	flag.Parse()

	var err error
	var l *zap.Logger
	if *verbose {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	zap.ReplaceGlobals(l)
	defer l.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer stop()
	ctx = logger.NewContext(ctx, l)

	opts := config.LoadOptions{
		Path:    *cfgPath,
		Options: config.Options{SnapshotPath: *snapshot},
	}

	cmd := "check"
	if flag.NArg() > 0 {
		cmd = flag.Arg(0)
	}
	switch cmd {
	case "check":
		err = check(ctx, os.Stdout, opts)
	case "dump":
		err = dump(ctx, os.Stdout, opts, *format)
	case "preview":
		err = preview(ctx, os.Stdout, opts)
	case "serve":
		srvPath := *srv
		if srvPath == "" {
			srvPath = client.Namespace() + "/" + remote.Service
		}
		err = serve(ctx, srvPath, opts)
	case "cat":
		if flag.NArg() != 2 {
			usage()
		}
		err = cat(os.Stdout, *srv, flag.Arg(1))
	case "items":
		err = items(os.Stdout, *srv)
	case "reload":
		err = reload(*srv)
	default:
		usage()
	}
	if err != nil {
		l.Fatal(cmd, zap.Error(err))
	}
}
