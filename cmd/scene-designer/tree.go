package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"scene-designer/internal/catalog"
	"scene-designer/internal/live"
	"scene-designer/internal/mask"
	"scene-designer/internal/model"
	"scene-designer/internal/serial"
)

func tree(cat *catalog.Catalog, args []string, out io.Writer) error {
	path, err := oneFile("tree", args)
	if err != nil {
		return err
	}

	doc, err := serial.Load(path, cat)
	if err != nil {
		return err
	}

	printTree(doc, out)

	return nil
}

// printTree writes the attached tree of doc, one object or property per
// line, with object ids in brackets.
func printTree(doc *model.Document, out io.Writer) {
	if doc.Root() == model.None {
		fmt.Fprintln(out, "(empty)")
		return
	}

	var visit func(id model.ID, depth int)

	visit = func(id model.ID, depth int) {
		indent := strings.Repeat("  ", depth)
		o := doc.Object(id)

		if o.Kind() == model.KindProperty {
			if !o.IsComplex() {
				fmt.Fprintf(out, "%s%s = %q\n", indent, o.QualifiedName(), o.Literal())
				return
			}

			fmt.Fprintf(out, "%s%s:\n", indent, o.QualifiedName())

			for _, v := range o.Values() {
				visit(v, depth+1)
			}

			return
		}

		line := fmt.Sprintf("%s[%d] %s", indent, id, doc.Describe(id))
		if o.Kind() == model.KindInstance && o.Controller() != "" {
			line += " controller=" + o.Controller()
		}

		fmt.Fprintln(out, line)

		switch o.Kind() {
		case model.KindInstance:
			for _, p := range o.Properties() {
				visit(p, depth+1)
			}
		case model.KindCollection:
			for _, item := range o.Items() {
				visit(item, depth+1)
			}
		}
	}

	visit(doc.Root(), 0)
}

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

func dump(cat *catalog.Catalog, args []string, out io.Writer) error {
	path, err := oneFile("dump", args)
	if err != nil {
		return err
	}

	doc, err := serial.Load(path, cat)
	if err != nil {
		return err
	}

	dumpGraph(live.Derive(doc, mask.NewFactory(cat)), out)

	return nil
}

func dumpGraph(g *live.Graph, out io.Writer) {
	fmt.Fprintf(out, "revision %d, %d nodes\n", g.Revision(), g.Len())

	for _, id := range g.IDs() {
		n, _ := g.Node(id)
		dumpConfig.Fdump(out, n)
	}

	diags := g.Diagnostics()
	for _, d := range diags.All() {
		fmt.Fprintf(out, "%s\n", d)
	}
}
