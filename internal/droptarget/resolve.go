package droptarget

import (
	"fmt"

	"scene-designer/internal/geom"
	"scene-designer/internal/live"
	"scene-designer/internal/model"
)

// Append is the insertion index meaning "after the last child".
const Append = -1

// Target is where a drop lands.
type Target struct {
	Container model.ID
	Accessory string
	Index     int
}

// IsAppend returns true when the target adds after the last child.
func (t Target) IsAppend() bool { return t.Index < 0 }

// String returns a readable form for logs.
func (t Target) String() string {
	if t.IsAppend() {
		return fmt.Sprintf("%d.%s[end]", t.Container, t.Accessory)
	}

	return fmt.Sprintf("%d.%s[%d]", t.Container, t.Accessory, t.Index)
}

// Linear returns the insertion index of pointer among children laid out
// along axis: before the first child whose midpoint the pointer has not
// passed, Append otherwise. A pointer exactly on a midpoint goes before
// that child.
func Linear(children []geom.Rect, axis geom.Axis, pointer geom.Point) int {
	at := pointer.Along(axis)

	for i, r := range children {
		if at <= r.Mid(axis) {
			return i
		}
	}

	return Append
}

// Region returns the region of bounds holding pointer. The edge bands have
// the thickness given by bands and the center is what remains. A pointer
// outside every area falls back to the center.
func Region(bounds geom.Rect, bands geom.Insets, pointer geom.Point) string {
	bands = bands.Fit(bounds)
	middle := bounds.Height - bands.Top - bands.Bottom

	areas := []struct {
		name string
		rect geom.Rect
	}{
		{live.RegionTop, geom.NewRect(bounds.X, bounds.Y, bounds.Width, bands.Top)},
		{live.RegionBottom, geom.NewRect(bounds.X, bounds.MaxY()-bands.Bottom, bounds.Width, bands.Bottom)},
		{live.RegionLeft, geom.NewRect(bounds.X, bounds.Y+bands.Top, bands.Left, middle)},
		{live.RegionRight, geom.NewRect(bounds.MaxX()-bands.Right, bounds.Y+bands.Top, bands.Right, middle)},
	}

	for _, a := range areas {
		if !a.rect.IsEmpty() && a.rect.Contains(pointer) {
			return a.name
		}
	}

	return live.RegionCenter
}
