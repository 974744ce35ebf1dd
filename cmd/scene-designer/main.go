// Package main provides the CLI entrypoint for scene-designer.
//
// scene-designer edits and checks scene files, the YAML rendition of a UI
// markup tree:
//   - check validates scene files and reports unresolved references
//   - tree and dump show the structural tree and the materialized graph
//   - repl edits a scene interactively with undo and redo
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"scene-designer/internal/config"
	"scene-designer/internal/serial"
)

const version = "v0.3.0"

const usage = `usage: scene-designer [-config=<path>] <command> [<args>]

Configuration flags:

   -config     The configuration file. Defaults apply when it is not set.

Commands:
   check       Check scene files or directories (default: current directory)
   tree        Print the object tree of a scene file
   dump        Dump the materialized graph of a scene file
   repl        Edit a scene file interactively
   version     Print version information
   help        Display this help message
`

var configFlag = flag.String("config", "", "configuration file path")

func main() {
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		logrus.Error("missing command")
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err := run(args[0], args[1:], os.Stdout); err != nil {
		logrus.Fatal(err)
	}
}

func run(cmd string, args []string, out io.Writer) error {
	if cmd == "help" {
		fmt.Fprint(out, usage)
		return nil
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		return err
	}

	logrus.SetLevel(cfg.Level())

	cat, err := cfg.LoadCatalog()
	if err != nil {
		return err
	}

	switch cmd {
	case "check":
		return check(cfg, cat, args, out)
	case "tree":
		return tree(cat, args, out)
	case "dump":
		return dump(cat, args, out)
	case "repl":
		return repl(cfg, cat, args)
	case "version":
		fmt.Fprintf(out, "scene-designer %s (scene format %s, catalogue %s)\n",
			version, serial.CurrentVersion, cat.Version())

		return nil
	default:
		return fmt.Errorf("unknown command %q, run 'scene-designer help'", cmd)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}

	return config.LoadFile(path)
}

func oneFile(cmd string, args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: scene-designer %s <file>", cmd)
	}

	return args[0], nil
}
