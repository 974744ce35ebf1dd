package live

import (
	"github.com/sirupsen/logrus"

	"scene-designer/internal/mask"
	"scene-designer/internal/model"
)

// Binding keeps the materialized graph of a document current.
type Binding struct {
	doc   *model.Document
	masks *mask.Factory
	log   logrus.FieldLogger
	graph *Graph
}

// Bind derives the graph of doc and re-derives it at the end of every outer
// transaction.
func Bind(doc *model.Document, masks *mask.Factory, log logrus.FieldLogger) *Binding {
	if log == nil {
		log = logrus.StandardLogger()
	}

	b := &Binding{
		doc:   doc,
		masks: masks,
		log:   log.WithField("doc", doc.ID().String()),
	}

	b.graph = Derive(doc, masks)
	b.report()

	doc.AddRefreshHook(b.refresh)

	return b
}

// Graph returns the graph of the last completed transaction.
func (b *Binding) Graph() *Graph { return b.graph }

func (b *Binding) refresh(doc *model.Document) {
	g := Derive(doc, b.masks)
	// Hooks run before the document bumps its revision.
	g.revision = doc.Revision() + 1
	b.graph = g

	b.report()
}

func (b *Binding) report() {
	for _, w := range b.graph.diags.Warnings {
		b.log.WithFields(logrus.Fields{
			"code":     w.Code,
			"object":   w.Object,
			"revision": b.graph.revision,
		}).Warn(w.String())
	}
}
