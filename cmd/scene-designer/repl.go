package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"scene-designer/internal/catalog"
	"scene-designer/internal/config"
	"scene-designer/internal/editor"
	"scene-designer/internal/geom"
	"scene-designer/internal/job"
	"scene-designer/internal/match"
	"scene-designer/internal/model"
)

const replHelp = `objects are named by fx:id or by [id] as printed by tree

   tree                      print the object tree
   select [obj...]           select objects, or print the selection
   move <container> [accessory] [index]
                             move the selected object
   drop <x> <y>              move the selected object to the drop target at x,y
   add <class> <x> <y>       create an object at the drop target at x,y
   delete                    delete the selection
   wrap <class>              wrap the selection into a new container
   unwrap                    replace the selected container by its children
   set <property> <value>    set a property of the selected object
   unset <property>          remove a property of the selected object
   fxid <value>              change the fx:id of the selected object
   undo, redo, history       walk the edit history
   save [path]               write the scene
   quit                      leave, unsaved changes are lost
`

var errQuit = errors.New("quit")

type command func(s *session, args []string) error

var commands = map[string]command{
	"tree":    (*session).tree,
	"select":  (*session).selectObjects,
	"move":    (*session).move,
	"drop":    (*session).drop,
	"add":     (*session).add,
	"delete":  (*session).deleteSelection,
	"wrap":    (*session).wrap,
	"unwrap":  (*session).unwrap,
	"set":     (*session).set,
	"unset":   (*session).unset,
	"fxid":    (*session).fxID,
	"undo":    func(s *session, _ []string) error { return s.ed.Undo() },
	"redo":    func(s *session, _ []string) error { return s.ed.Redo() },
	"history": (*session).history,
	"save":    (*session).save,
	"help":    (*session).help,
	"quit":    func(*session, []string) error { return errQuit },
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// session executes repl commands against one editor.
type session struct {
	ed  *editor.Editor
	out io.Writer
}

// exec runs one command line. It returns errQuit when the session ends.
func (s *session) exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	cmd, ok := commands[fields[0]]
	if !ok {
		if hint := match.Suggest(fields[0], commandNames(), 1, match.DefaultMinScore); len(hint) > 0 {
			return fmt.Errorf("unknown command %q, did you mean %q?", fields[0], hint[0])
		}

		return fmt.Errorf("unknown command %q, try help", fields[0])
	}

	return cmd(s, fields[1:])
}

func (s *session) lookup(name string) (model.ID, error) {
	doc := s.ed.Document()

	if raw, ok := strings.CutPrefix(name, "["); ok {
		n, err := strconv.Atoi(strings.TrimSuffix(raw, "]"))
		if err != nil {
			return model.None, fmt.Errorf("bad object id %q", name)
		}

		id := model.ID(n)
		if !doc.Contains(id) || !doc.IsAttached(id) || !doc.Kind(id).IsObject() {
			return model.None, fmt.Errorf("no object %s in the tree", name)
		}

		return id, nil
	}

	if id := doc.FindByFxID(name); id != model.None {
		return id, nil
	}

	if hint := match.Suggest(name, doc.FxIDs(), 1, match.DefaultMinScore); len(hint) > 0 {
		return model.None, fmt.Errorf("no object with fx:id %q, did you mean %q?", name, hint[0])
	}

	return model.None, fmt.Errorf("no object with fx:id %q", name)
}

func (s *session) selected() (model.ID, error) {
	id, ok := s.ed.Selection().Group().Single()
	if !ok {
		return model.None, fmt.Errorf("select exactly one object, %d selected", s.ed.Selection().Group().Len())
	}

	return id, nil
}

func (s *session) help(_ []string) error {
	_, err := fmt.Fprint(s.out, replHelp)
	return err
}

func (s *session) tree(_ []string) error {
	printTree(s.ed.Document(), s.out)
	return nil
}

func (s *session) selectObjects(args []string) error {
	ids := make([]model.ID, 0, len(args))

	for _, a := range args {
		id, err := s.lookup(a)
		if err != nil {
			return err
		}

		ids = append(ids, id)
	}

	sel := s.ed.Selection()
	if len(args) > 0 {
		sel.Select(ids...)
	}

	doc := s.ed.Document()

	labels := make([]string, 0, sel.Group().Len())
	for _, id := range sel.Objects() {
		labels = append(labels, fmt.Sprintf("[%d] %s", id, doc.Describe(id)))
	}

	if len(labels) == 0 {
		fmt.Fprintln(s.out, "nothing selected")
		return nil
	}

	fmt.Fprintf(s.out, "selected %s\n", strings.Join(labels, ", "))

	if a := sel.CommonAncestor(); a != model.None && sel.Group().Len() > 1 {
		fmt.Fprintf(s.out, "common ancestor %s\n", sel.CommonPath().Format(doc))
	}

	return nil
}

func (s *session) move(args []string) error {
	if len(args) == 0 || len(args) > 3 {
		return errors.New("usage: move <container> [accessory] [index]")
	}

	obj, err := s.selected()
	if err != nil {
		return err
	}

	target, err := s.lookup(args[0])
	if err != nil {
		return err
	}

	p := job.Params{Objects: []model.ID{obj}, Target: target, Index: -1}
	if len(args) > 1 {
		p.Accessory = args[1]
	}

	if len(args) > 2 {
		if p.Index, err = strconv.Atoi(args[2]); err != nil {
			return fmt.Errorf("bad index %q", args[2])
		}
	}

	return s.ed.Do(job.KindMove, p)
}

func parsePoint(x, y string) (geom.Point, error) {
	px, err := strconv.ParseFloat(x, 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("bad x %q", x)
	}

	py, err := strconv.ParseFloat(y, 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("bad y %q", y)
	}

	return geom.Point{X: px, Y: py}, nil
}

func (s *session) drop(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: drop <x> <y>")
	}

	obj, err := s.selected()
	if err != nil {
		return err
	}

	p, err := parsePoint(args[0], args[1])
	if err != nil {
		return err
	}

	t, err := s.ed.Drop(obj, p)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "dropped into %s\n", describeTarget(s.ed.Document(), t.Container, t.Accessory, t.Index))

	return nil
}

func (s *session) add(args []string) error {
	if len(args) != 3 {
		return errors.New("usage: add <class> <x> <y>")
	}

	if !s.ed.Catalog().HasClass(args[0]) {
		hint := match.Suggest(args[0], s.ed.Catalog().ClassNames(), 1, match.DefaultMinScore)
		if len(hint) > 0 {
			return fmt.Errorf("unknown class %q, did you mean %q?", args[0], hint[0])
		}

		return fmt.Errorf("unknown class %q", args[0])
	}

	p, err := parsePoint(args[1], args[2])
	if err != nil {
		return err
	}

	id, err := s.ed.DropNew(args[0], p)
	if err != nil {
		return err
	}

	fmt.Fprintf(s.out, "added [%d] %s\n", id, s.ed.Document().Describe(id))

	return nil
}

func describeTarget(doc *model.Document, container model.ID, accessory string, index int) string {
	at := "end"
	if index >= 0 {
		at = strconv.Itoa(index)
	}

	return fmt.Sprintf("%s.%s[%s]", doc.Describe(container), accessory, at)
}

func (s *session) deleteSelection(_ []string) error {
	objs := s.ed.Selection().Objects()
	if len(objs) == 0 {
		return errors.New("nothing selected")
	}

	return s.ed.Do(job.KindDelete, job.Params{Objects: objs})
}

func (s *session) wrap(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: wrap <class>")
	}

	return s.ed.Do(job.KindWrap, job.Params{Objects: s.ed.Selection().Objects(), Value: args[0]})
}

func (s *session) unwrap(_ []string) error {
	obj, err := s.selected()
	if err != nil {
		return err
	}

	return s.ed.Do(job.KindUnwrap, job.Params{Target: obj})
}

func (s *session) set(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: set <property> <value>")
	}

	obj, err := s.selected()
	if err != nil {
		return err
	}

	return s.ed.Do(job.KindSet, job.Params{Target: obj, Property: args[0], Value: strings.Join(args[1:], " ")})
}

func (s *session) unset(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: unset <property>")
	}

	obj, err := s.selected()
	if err != nil {
		return err
	}

	return s.ed.Do(job.KindUnset, job.Params{Target: obj, Property: args[0]})
}

func (s *session) fxID(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: fxid <value>")
	}

	obj, err := s.selected()
	if err != nil {
		return err
	}

	return s.ed.Do(job.KindFxID, job.Params{Target: obj, Value: args[0]})
}

func (s *session) history(_ []string) error {
	h := s.ed.History()

	for i, label := range h.History() {
		fmt.Fprintf(s.out, "%3d  %s\n", i+1, label)
	}

	if h.CanRedo() {
		fmt.Fprintf(s.out, "redo %s\n", h.RedoDescription())
	}

	return nil
}

func (s *session) save(args []string) error {
	switch len(args) {
	case 0:
		return s.ed.Save()
	case 1:
		return s.ed.SaveAs(args[0])
	default:
		return errors.New("usage: save [path]")
	}
}

func repl(cfg *config.Config, cat *catalog.Catalog, args []string) error {
	path, err := oneFile("repl", args)
	if err != nil {
		return err
	}

	ed := editor.New(cat, cfg)
	if err := ed.Open(path); err != nil {
		return err
	}

	s := &session{ed: ed, out: os.Stdout}

	lin := liner.NewLiner()
	defer lin.Close()

	lin.SetCtrlCAborts(true)
	lin.SetCompleter(func(line string) []string {
		var out []string

		for _, name := range commandNames() {
			if strings.HasPrefix(name, line) {
				out = append(out, name)
			}
		}

		return out
	})

	for {
		prompt := "> "
		if ed.IsModified() {
			prompt = "*> "
		}

		line, err := lin.Prompt(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Println()
				return nil
			}

			logrus.WithError(err).Error("unexpected error reading prompt")

			continue
		}

		lin.AppendHistory(line)

		err = s.exec(line)
		if errors.Is(err, errQuit) {
			return nil
		}

		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
}
