// Package geom provides the small amount of planar geometry the editing core
// needs: points, axis-aligned rectangles and insets in document-local
// coordinates (origin top-left, Y grows downwards).
package geom
