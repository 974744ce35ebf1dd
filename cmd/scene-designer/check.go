package main

import (
	"fmt"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"

	"scene-designer/internal/catalog"
	"scene-designer/internal/config"
	"scene-designer/internal/diagnostic"
	"scene-designer/internal/discover"
	"scene-designer/internal/live"
	"scene-designer/internal/mask"
	"scene-designer/internal/serial"
)

type checkResult struct {
	path  string
	diags diagnostic.Diagnostics
	err   error
}

func (r checkResult) failed() bool {
	return r.err != nil || r.diags.HasErrors()
}

// check loads every scene in parallel, one document per goroutine, and
// reports the problems found while materializing them.
func check(cfg *config.Config, cat *catalog.Catalog, args []string, out io.Writer) error {
	if len(args) == 0 {
		args = []string{"."}
	}

	paths, err := discover.Paths(args, cfg.Ignore)
	if err != nil {
		return err
	}

	results := make([]checkResult, len(paths))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i] = checkScene(cat, path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0

	for _, r := range results {
		switch {
		case r.err != nil:
			fmt.Fprintf(out, "FAIL %s\n  %v\n", r.path, r.err)
		case r.failed():
			fmt.Fprintf(out, "FAIL %s\n", r.path)
		case len(r.diags.Warnings) > 0:
			fmt.Fprintf(out, "WARN %s\n", r.path)
		default:
			fmt.Fprintf(out, "ok   %s\n", r.path)
		}

		for _, d := range r.diags.All() {
			fmt.Fprintf(out, "  %s\n", d)
		}

		if r.failed() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scenes failed", failed, len(results))
	}

	return nil
}

func checkScene(cat *catalog.Catalog, path string) checkResult {
	doc, err := serial.Load(path, cat)
	if err != nil {
		return checkResult{path: path, err: err}
	}

	g := live.Derive(doc, mask.NewFactory(cat))

	return checkResult{path: path, diags: g.Diagnostics()}
}
