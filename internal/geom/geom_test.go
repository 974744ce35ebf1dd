package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectAxes(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	assert.Equal(t, 10.0, r.Min(Horizontal))
	assert.Equal(t, 40.0, r.Max(Horizontal))
	assert.Equal(t, 25.0, r.Mid(Horizontal))
	assert.Equal(t, 20.0, r.Min(Vertical))
	assert.Equal(t, 60.0, r.Max(Vertical))
	assert.Equal(t, 40.0, r.Mid(Vertical))
	assert.Equal(t, 30.0, r.Extent(Horizontal))
	assert.Equal(t, Point{X: 25, Y: 40}, r.Center())
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	assert.True(t, r.Contains(Point{X: 5, Y: 5}))
	assert.True(t, r.Contains(Point{X: 10, Y: 0}))
	assert.False(t, r.Contains(Point{X: 10.5, Y: 5}))
	assert.False(t, r.Contains(Point{X: 5, Y: -1}))
}

func TestRectUnionAndInset(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 10, 10)

	assert.Equal(t, NewRect(0, 0, 15, 15), a.Union(b))
	assert.Equal(t, a, a.Union(Rect{}))
	assert.Equal(t, NewRect(2, 1, 4, 6), a.Inset(Insets{Top: 1, Right: 4, Bottom: 3, Left: 2}))
	assert.Equal(t, NewRect(30, 30, 0, 0), a.Inset(Uniform(20)).Translate(10, 10))
}

func TestInsetsFit(t *testing.T) {
	r := NewRect(0, 0, 100, 50)

	fit := Insets{Top: 40, Bottom: 40, Left: 10, Right: 10}.Fit(r)
	assert.Equal(t, 40.0, fit.Top)
	assert.Equal(t, 10.0, fit.Bottom)
	assert.Equal(t, 10.0, fit.Left)
	assert.Equal(t, 10.0, fit.Right)
}

func TestAxisString(t *testing.T) {
	assert.Equal(t, "vertical", Vertical.String())
	assert.Equal(t, "horizontal", Horizontal.String())
	assert.Equal(t, "unknown", Axis(7).String())
}
