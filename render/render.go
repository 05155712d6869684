// Package render draws spanning trees and routes as PNG images using the
// gg software rasterizer.
//
// Coordinates are fitted into the canvas minus a margin, preserving aspect
// ratio and flipping the y axis so that larger y is drawn higher.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/katalvlaran/minspan/mst"
	"github.com/katalvlaran/minspan/tour"
)

// ErrCanvasSize indicates a canvas with no drawable area left after margins.
var ErrCanvasSize = errors.New("render: canvas too small")

// Options configures drawing.
type Options struct {
	Width, Height int
	Margin        float64
	EdgeColor     color.Color
	PointColor    color.Color
	PointRadius   float64
	LineWidth     float64
}

// Option mutates Options.
type Option func(*Options)

// WithSize sets the canvas size in pixels.
func WithSize(w, h int) Option {
	return func(o *Options) {
		o.Width, o.Height = w, h
	}
}

// WithMargin sets the blank border in pixels.
func WithMargin(m float64) Option {
	return func(o *Options) {
		o.Margin = m
	}
}

// WithEdgeColor sets the colour of tree edges and route segments.
func WithEdgeColor(c color.Color) Option {
	return func(o *Options) {
		o.EdgeColor = c
	}
}

// WithPointColor sets the colour of point markers.
func WithPointColor(c color.Color) Option {
	return func(o *Options) {
		o.PointColor = c
	}
}

// WithPointRadius sets the marker radius; zero hides markers.
func WithPointRadius(r float64) Option {
	return func(o *Options) {
		o.PointRadius = r
	}
}

// WithLineWidth sets the stroke width of edges.
func WithLineWidth(w float64) Option {
	return func(o *Options) {
		o.LineWidth = w
	}
}

// DefaultOptions returns a 512×512 canvas with red edges and black points.
func DefaultOptions() Options {
	return Options{
		Width:       512,
		Height:      512,
		Margin:      16,
		EdgeColor:   color.RGBA{R: 255, A: 255},
		PointColor:  color.Black,
		PointRadius: 3,
		LineWidth:   2,
	}
}

// Tree draws points and the edges joining them, then encodes the canvas as PNG to w.
// Edges with out-of-range endpoints are skipped.
func Tree(w io.Writer, points []mst.Point, edges []mst.Edge, opts ...Option) error {
	pts := make([]tour.Vec, len(points))
	for i, p := range points {
		pts[i] = tour.Vec{X: float64(p.X), Y: float64(p.Y)}
	}

	return draw(w, pts, opts, func(dc *gg.Context, at func(int) (float64, float64)) error {
		for _, e := range edges {
			if e.From < 0 || e.From >= len(pts) || e.To < 0 || e.To >= len(pts) {
				continue
			}
			x1, y1 := at(e.From)
			x2, y2 := at(e.To)
			dc.DrawLine(x1, y1, x2, y2)
		}
		return dc.Stroke()
	})
}

// Path draws a closed route through path and encodes it as PNG to w.
func Path(w io.Writer, path []tour.Vec, opts ...Option) error {
	return draw(w, path, opts, func(dc *gg.Context, at func(int) (float64, float64)) error {
		if len(path) < 2 {
			return nil
		}
		x, y := at(0)
		dc.MoveTo(x, y)
		for i := 1; i < len(path); i++ {
			x, y = at(i)
			dc.LineTo(x, y)
		}
		dc.ClosePath()
		return dc.Stroke()
	})
}

// draw prepares the canvas and the coordinate transform, lets strokes add
// the edges, then draws the point markers on top.
func draw(w io.Writer, pts []tour.Vec, opts []Option, strokes func(*gg.Context, func(int) (float64, float64)) error) error {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	innerW := float64(o.Width) - 2*o.Margin
	innerH := float64(o.Height) - 2*o.Margin
	if o.Width <= 0 || o.Height <= 0 || innerW <= 0 || innerH <= 0 {
		return fmt.Errorf("%w: %dx%d with margin %v", ErrCanvasSize, o.Width, o.Height, o.Margin)
	}

	dc := gg.NewContext(o.Width, o.Height)
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	at := fit(pts, o.Margin, innerW, innerH)

	dc.SetColor(o.EdgeColor)
	dc.SetLineWidth(o.LineWidth)
	if err := strokes(dc, at); err != nil {
		return fmt.Errorf("render: stroke: %w", err)
	}

	if o.PointRadius > 0 && len(pts) > 0 {
		dc.SetColor(o.PointColor)
		for i := range pts {
			x, y := at(i)
			dc.DrawCircle(x, y, o.PointRadius)
		}
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("render: fill: %w", err)
		}
	}

	return dc.EncodePNG(w)
}

// fit maps point i into the inner canvas rectangle. A degenerate extent
// (single point or all points on a line) is centred on that axis.
func fit(pts []tour.Vec, margin, innerW, innerH float64) func(int) (float64, float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	spanX, spanY := maxX-minX, maxY-minY

	scale := 1.0
	switch {
	case spanX > 0 && spanY > 0:
		scale = math.Min(innerW/spanX, innerH/spanY)
	case spanX > 0:
		scale = innerW / spanX
	case spanY > 0:
		scale = innerH / spanY
	}
	offX := margin + (innerW-spanX*scale)/2
	offY := margin + (innerH-spanY*scale)/2

	return func(i int) (float64, float64) {
		p := pts[i]
		x := offX + (p.X-minX)*scale
		y := offY + (maxY-p.Y)*scale
		return x, y
	}
}
