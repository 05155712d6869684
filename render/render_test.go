package render_test

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/katalvlaran/minspan/mst"
	"github.com/katalvlaran/minspan/render"
	"github.com/katalvlaran/minspan/tour"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_EncodesPNG(t *testing.T) {
	points := []mst.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 5, Y: 8}}
	edges, err := mst.Build(points)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Tree(&buf, points, edges, render.WithSize(200, 100)))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())

	// The margin stays background.
	r, g, b, a := img.At(1, 1).RGBA()
	assert.Equal(t, [4]uint32{0xffff, 0xffff, 0xffff, 0xffff}, [4]uint32{r, g, b, a})
}

func TestTree_Degenerate(t *testing.T) {
	for _, points := range [][]mst.Point{nil, {{X: 3, Y: 3}}, {{X: 0, Y: 0}, {X: 0, Y: 0}}} {
		var buf bytes.Buffer
		require.NoError(t, render.Tree(&buf, points, nil))
		_, err := png.Decode(&buf)
		assert.NoError(t, err)
	}
}

func TestTree_SkipsBadEdges(t *testing.T) {
	var buf bytes.Buffer
	err := render.Tree(&buf, []mst.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, []mst.Edge{{From: 0, To: 1}, {From: 0, To: 9}})
	assert.NoError(t, err)
}

func TestPath_EncodesPNG(t *testing.T) {
	res, err := tour.Approximate([]tour.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Path(&buf, res.Path,
		render.WithEdgeColor(color.RGBA{B: 255, A: 255}),
		render.WithPointRadius(0),
		render.WithLineWidth(1),
	))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 512, img.Bounds().Dx())
}

func TestCanvasSize(t *testing.T) {
	var buf bytes.Buffer
	err := render.Tree(&buf, nil, nil, render.WithSize(20, 20), render.WithMargin(10))
	assert.ErrorIs(t, err, render.ErrCanvasSize)

	err = render.Path(&buf, nil, render.WithSize(0, 10))
	assert.ErrorIs(t, err, render.ErrCanvasSize)
}
