// Package droptarget turns a pointer position over a container into the
// place a dragged object would land: a container, one of its accessories
// and an insertion index.
//
// Resolution is purely geometric and never mutates anything. Each layout
// kind has a resolver, picked from a Registry:
//
//   - vertical and horizontal layouts walk child midpoints along their axis;
//   - region layouts split the container into four edge bands and a center;
//   - free layouts append to the main accessory;
//   - single-content layouts target index 0 of their content accessory.
//
// Whether the container accepts the object is left to the relocation job.
package droptarget
