package editor

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"scene-designer/internal/catalog"
	"scene-designer/internal/config"
	"scene-designer/internal/droptarget"
	"scene-designer/internal/geom"
	"scene-designer/internal/job"
	"scene-designer/internal/live"
	"scene-designer/internal/mask"
	"scene-designer/internal/model"
	"scene-designer/internal/selection"
	"scene-designer/internal/serial"
)

var (
	// ErrNoLocation is returned by Save for documents never saved before.
	ErrNoLocation = errors.New("document has no location")
	// ErrNoDropTarget is returned when nothing under the pointer takes a drop.
	ErrNoDropTarget = errors.New("no drop target under pointer")
)

// Option configures an Editor.
type Option func(*Editor)

// WithLogger sets the logger. The default is the logrus standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(e *Editor) { e.log = log }
}

// WithAcceptor replaces the accessory acceptance predicate.
func WithAcceptor(a mask.Acceptor) Option {
	return func(e *Editor) { e.maskOpts = append(e.maskOpts, mask.WithAcceptor(a)) }
}

// Editor edits one document at a time.
type Editor struct {
	cfg      *config.Config
	catalog  *catalog.Catalog
	masks    *mask.Factory
	maskOpts []mask.Option
	registry *droptarget.Registry
	log      logrus.FieldLogger

	doc       *model.Document
	docLog    logrus.FieldLogger
	binding   *live.Binding
	history   *job.Manager
	factory   *job.Factory
	selection *selection.Selection
	saved     uint64
	detach    func()

	onReplaced []func(*model.Document)
	onRevision []func(uint64)
}

// New creates an editor holding an empty document.
func New(cat *catalog.Catalog, cfg *config.Config, opts ...Option) *Editor {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	e := &Editor{
		cfg:      cfg,
		catalog:  cat,
		registry: droptarget.NewRegistry(cfg.RegionBand),
		log:      logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.masks = mask.NewFactory(cat, e.maskOpts...)
	e.Replace(model.NewDocument("", cat))

	return e
}

// Document returns the current document.
func (e *Editor) Document() *model.Document { return e.doc }

// Graph returns the materialized graph of the current document.
func (e *Editor) Graph() *live.Graph { return e.binding.Graph() }

// Catalog returns the component catalogue.
func (e *Editor) Catalog() *catalog.Catalog { return e.catalog }

// Masks returns the hierarchy mask factory.
func (e *Editor) Masks() *mask.Factory { return e.masks }

// Registry returns the drop-target resolver registry.
func (e *Editor) Registry() *droptarget.Registry { return e.registry }

// History returns the undo history of the current document.
func (e *Editor) History() *job.Manager { return e.history }

// Jobs returns the job factory bound to the current document.
func (e *Editor) Jobs() *job.Factory { return e.factory }

// Selection returns the selection of the current document.
func (e *Editor) Selection() *selection.Selection { return e.selection }

// Env returns the job environment of the current document.
func (e *Editor) Env() job.Env { return job.Env{Doc: e.doc, Masks: e.masks} }

// IsModified returns true when the document changed since it was loaded or saved.
func (e *Editor) IsModified() bool { return e.doc.Revision() != e.saved }

// OnDocumentReplaced registers fn to be called after the document is replaced.
func (e *Editor) OnDocumentReplaced(fn func(doc *model.Document)) {
	e.onReplaced = append(e.onReplaced, fn)
}

// OnRevision registers fn to be called with the scene graph revision after
// every completed transaction.
func (e *Editor) OnRevision(fn func(revision uint64)) {
	e.onRevision = append(e.onRevision, fn)
}

// Replace makes doc the current document with a fresh history and selection.
func (e *Editor) Replace(doc *model.Document) {
	if e.detach != nil {
		e.detach()
	}

	if e.selection != nil {
		e.selection.Close()
	}

	e.doc = doc
	e.docLog = e.log.WithField("doc", doc.ID().String())
	e.binding = live.Bind(doc, e.masks, e.log)
	e.history = job.NewManager(e.cfg.HistoryLimit, e.docLog)
	e.factory = job.NewFactory(e.Env())
	e.selection = selection.New(doc)
	e.saved = doc.Revision()
	e.detach = doc.Subscribe(e.revised)

	e.docLog.WithField("location", doc.Location()).Debug("document replaced")

	for _, fn := range e.onReplaced {
		fn(doc)
	}
}

func (e *Editor) revised(revision uint64) {
	for _, fn := range e.onRevision {
		fn(revision)
	}
}

// NewDocument replaces the current document with an empty one.
func (e *Editor) NewDocument() {
	e.Replace(model.NewDocument("", e.catalog))
}

// Open replaces the current document with the scene file at path.
func (e *Editor) Open(path string) error {
	doc, err := serial.Load(path, e.catalog)
	if err != nil {
		return err
	}

	e.Replace(doc)

	return nil
}

// Save writes the document to its location.
func (e *Editor) Save() error {
	if e.doc.Location() == "" {
		return ErrNoLocation
	}

	return e.SaveAs(e.doc.Location())
}

// SaveAs writes the document to path and makes path its location.
func (e *Editor) SaveAs(path string) error {
	if err := serial.Save(e.doc, path); err != nil {
		return err
	}

	e.doc.SetLocation(path)
	e.saved = e.doc.Revision()
	e.docLog.WithField("location", path).Info("document saved")

	return nil
}

// Do creates a job of kind and pushes it onto the history.
func (e *Editor) Do(kind string, p job.Params) error {
	j, err := e.factory.Create(kind, p)
	if err != nil {
		return err
	}

	return e.Push(j)
}

// Push executes j and records it for undo.
func (e *Editor) Push(j job.Job) error {
	if err := e.history.Push(j); err != nil {
		e.docLog.WithError(err).Debug("job refused")
		return err
	}

	return nil
}

// Undo reverts the last job.
func (e *Editor) Undo() error { return e.history.Undo() }

// Redo re-applies the last undone job.
func (e *Editor) Redo() error { return e.history.Redo() }

// DropTarget resolves where a drop at pointer would land.
func (e *Editor) DropTarget(pointer geom.Point) (droptarget.Target, bool) {
	return e.registry.At(e.doc, e.masks, e.Graph(), pointer)
}

// Drop moves obj to the place under pointer.
func (e *Editor) Drop(obj model.ID, pointer geom.Point) (droptarget.Target, error) {
	t, ok := e.DropTarget(pointer)
	if !ok {
		return t, ErrNoDropTarget
	}

	if err := e.Push(job.NewRelocate(e.Env(), obj, t.Container, t.Accessory, t.Index)); err != nil {
		return t, fmt.Errorf("drop %s at %s: %w", e.doc.Describe(obj), t, err)
	}

	return t, nil
}

// DropNew creates an instance of class at the place under pointer and
// selects it.
func (e *Editor) DropNew(class string, pointer geom.Point) (model.ID, error) {
	t, ok := e.DropTarget(pointer)
	if !ok {
		return model.None, ErrNoDropTarget
	}

	obj := e.doc.NewInstance(class)

	if err := e.Push(job.NewInsertInto(e.Env(), t.Container, t.Accessory, obj, t.Index)); err != nil {
		return model.None, fmt.Errorf("drop new %s at %s: %w", class, t, err)
	}

	e.selection.Select(obj)

	return obj, nil
}
