package editor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-designer/internal/catalog"
	"scene-designer/internal/config"
	"scene-designer/internal/droptarget"
	"scene-designer/internal/geom"
	"scene-designer/internal/job"
	"scene-designer/internal/model"
)

// The scene lays out as
//
//	box   0,0   100x75
//	ok    0,0   100x25
//	title 0,25  100x25
//	row   0,50  100x25
//	check 0,50  100x25
const sceneYAML = `
version: v1.0.0
root:
  instance: VBox
  fx:id: box
  properties:
    - name: children
      objects:
        - instance: Button
          fx:id: ok
        - instance: Label
          fx:id: title
        - instance: HBox
          fx:id: row
          properties:
            - name: children
              objects:
                - instance: CheckBox
                  fx:id: check
`

type fixture struct {
	editor *Editor
	hook   *test.Hook
	path   string
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	path := filepath.Join(t.TempDir(), "main.scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sceneYAML), 0644))

	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	e := New(catalog.Default(), nil, WithLogger(log))
	require.NoError(t, e.Open(path))

	return fixture{editor: e, hook: hook, path: path}
}

func (f fixture) id(fxID string) model.ID {
	return f.editor.Document().FindByFxID(fxID)
}

func (f fixture) order(fxID string) []string {
	doc := f.editor.Document()

	p := doc.Property(f.id(fxID), "children")
	if p == model.None {
		return nil
	}

	var out []string
	for _, c := range doc.Object(p).Values() {
		out = append(out, doc.Object(c).FxID())
	}

	return out
}

func TestNewEditor(t *testing.T) {
	e := New(catalog.Default(), nil)

	assert.Equal(t, model.None, e.Document().Root())
	assert.Equal(t, 0, e.Graph().Len())
	assert.False(t, e.IsModified())
	assert.True(t, e.Selection().IsEmpty())
	assert.ErrorIs(t, e.Save(), ErrNoLocation)
}

func TestOpen(t *testing.T) {
	f := newFixture(t)
	e := f.editor

	assert.Equal(t, f.path, e.Document().Location())
	assert.Equal(t, 5, e.Graph().Len())
	assert.Equal(t, []string{"ok", "title", "row"}, f.order("box"))
	assert.False(t, e.IsModified())

	err := e.Open(filepath.Join(t.TempDir(), "missing.scene.yaml"))
	assert.Error(t, err)
	assert.Equal(t, f.path, e.Document().Location(), "failed open keeps the document")
}

func TestListeners(t *testing.T) {
	f := newFixture(t)
	e := f.editor

	var (
		replaced  []*model.Document
		revisions []uint64
	)

	e.OnDocumentReplaced(func(doc *model.Document) { replaced = append(replaced, doc) })
	e.OnRevision(func(rev uint64) { revisions = append(revisions, rev) })

	require.NoError(t, e.Do(job.KindSet, job.Params{Target: f.id("ok"), Property: "text", Value: "OK"}))
	require.NoError(t, e.Undo())
	assert.Equal(t, []uint64{2, 3}, revisions)
	assert.Equal(t, uint64(3), e.Graph().Revision())

	e.NewDocument()
	require.Len(t, replaced, 1)
	assert.Same(t, e.Document(), replaced[0])
	assert.False(t, e.History().CanRedo(), "history is per document")

	require.NoError(t, e.Do(job.KindSetRoot, job.Params{Target: e.Document().NewInstance("Pane")}))
	assert.Equal(t, []uint64{2, 3, 1}, revisions)
}

func TestDoUndoRedo(t *testing.T) {
	f := newFixture(t)
	e := f.editor

	require.NoError(t, e.Do(job.KindMove, job.Params{Objects: []model.ID{f.id("row")}, Target: f.id("box"), Index: 0}))
	assert.Equal(t, []string{"row", "ok", "title"}, f.order("box"))
	assert.True(t, e.IsModified())

	require.NoError(t, e.Undo())
	assert.Equal(t, []string{"ok", "title", "row"}, f.order("box"))

	require.NoError(t, e.Redo())
	assert.Equal(t, []string{"row", "ok", "title"}, f.order("box"))

	assert.ErrorIs(t, e.Redo(), job.ErrNothingToRedo)
	assert.ErrorIs(t, e.Do("explode", job.Params{}), job.ErrUnknownKind)

	err := e.Do(job.KindMove, job.Params{Objects: []model.ID{f.id("box")}, Target: f.id("row"), Index: -1})
	assert.ErrorIs(t, err, job.ErrNotExecutable)
}

func TestDrop(t *testing.T) {
	f := newFixture(t)
	e := f.editor

	target, ok := e.DropTarget(geom.Point{X: 10, Y: 5})
	require.True(t, ok)
	assert.Equal(t, droptarget.Target{Container: f.id("box"), Accessory: "children", Index: 0}, target)

	_, err := e.Drop(f.id("title"), geom.Point{X: 10, Y: 5})
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "ok", "row"}, f.order("box"))

	// The checkbox fills the row, so the row's horizontal resolver decides.
	target, err = e.Drop(f.id("ok"), geom.Point{X: 10, Y: 60})
	require.NoError(t, err)
	assert.Equal(t, f.id("row"), target.Container)
	assert.Equal(t, []string{"ok", "check"}, f.order("row"))

	_, err = e.Drop(f.id("ok"), geom.Point{X: 500, Y: 500})
	assert.ErrorIs(t, err, ErrNoDropTarget)
}

func TestDropNew(t *testing.T) {
	f := newFixture(t)
	e := f.editor

	id, err := e.DropNew("Button", geom.Point{X: 90, Y: 60})
	require.NoError(t, err)

	assert.Equal(t, []string{"check", ""}, f.order("row"))
	assert.Equal(t, []model.ID{id}, e.Selection().Objects())
	assert.Equal(t, "Insert Button into HBox#row", e.History().UndoDescription())
}

func TestSelectionFollowsEdits(t *testing.T) {
	f := newFixture(t)
	e := f.editor

	e.Selection().Select(f.id("ok"), f.id("check"))
	assert.Equal(t, f.id("box"), e.Selection().CommonAncestor())

	require.NoError(t, e.Do(job.KindDelete, job.Params{Objects: []model.ID{f.id("ok")}}))
	assert.Equal(t, []model.ID{f.id("check")}, e.Selection().Objects())
}

func TestSave(t *testing.T) {
	f := newFixture(t)
	e := f.editor

	require.NoError(t, e.Do(job.KindFxID, job.Params{Target: f.id("title"), Value: "heading"}))
	assert.True(t, e.IsModified())

	copyPath := filepath.Join(t.TempDir(), "copy.scene.yaml")
	require.NoError(t, e.SaveAs(copyPath))
	assert.False(t, e.IsModified())
	assert.Equal(t, copyPath, e.Document().Location())

	entry := f.hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "document saved", entry.Message)
	assert.Equal(t, copyPath, entry.Data["location"])

	other := New(catalog.Default(), config.DefaultConfig())
	require.NoError(t, other.Open(copyPath))
	assert.NotEqual(t, model.None, other.Document().FindByFxID("heading"))
	assert.Equal(t, model.None, other.Document().FindByFxID("title"))
}
