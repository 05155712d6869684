package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/katalvlaran/minspan/kruskal"
	"github.com/katalvlaran/minspan/mst"
	"github.com/katalvlaran/minspan/render"
	"github.com/katalvlaran/minspan/store"
	"github.com/katalvlaran/minspan/tour"
)

func buildCmd(fs *flag.FlagSet) func(context.Context, *env) error {
	in := fs.String("in", "", "input file, stdin when empty")
	verify := fs.Bool("verify", false, "check the tree against Kruskal's algorithm")
	flat := fs.Bool("flat", false, "print a flat index array instead of pairs")

	return func(ctx context.Context, e *env) error {
		points, err := readGrid(*in, e.stdin)
		if err != nil {
			return err
		}
		if *flat {
			return buildFlat(ctx, e, points)
		}

		edges, err := tree(ctx, e, points)
		if err != nil {
			return err
		}
		if *verify {
			if err := kruskal.Verify(points, edges); err != nil {
				return err
			}
			e.log.InfoContext(ctx, "verified", "weight", mst.Weight(points, edges))
		}

		out := make([][2]int, len(edges))
		for i, ed := range edges {
			out[i] = [2]int{ed.From, ed.To}
		}
		return writeJSON(e, map[string]any{"edges": out})
	}
}

// tree builds the spanning tree of points, through the cache when one is configured.
func tree(ctx context.Context, e *env, points []mst.Point) ([]mst.Edge, error) {
	if e.cfg.CacheDSN == "" {
		return timedBuild(ctx, e, points)
	}

	st, err := openStore(ctx, e)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	key := store.Key(points)
	edges, hit, err := st.Get(ctx, key)
	e.log.LogCache(ctx, "get", key, hit, err)
	if err == nil && hit {
		return edges, nil
	}
	if edges, err = timedBuild(ctx, e, points); err != nil {
		return nil, err
	}
	// A failed write is only logged; the tree itself is good.
	err = st.Put(ctx, key, len(points), edges)
	e.log.LogCache(ctx, "put", key, false, err)

	return edges, nil
}

func timedBuild(ctx context.Context, e *env, points []mst.Point) ([]mst.Edge, error) {
	start := time.Now()
	edges, err := mst.Build(points, mst.WithMaxPoints(e.cfg.MaxPoints))
	e.log.LogBuild(ctx, len(points), len(edges), time.Since(start), err)

	return edges, err
}

func buildFlat(ctx context.Context, e *env, points []mst.Point) error {
	vals := make([]int32, 0, 2*len(points))
	for _, p := range points {
		vals = append(vals, p.X, p.Y)
	}

	start := time.Now()
	buf, err := mst.BuildFlat(vals, mst.WithMaxPoints(e.cfg.MaxPoints))
	if err != nil {
		e.log.LogBuild(ctx, len(points), 0, time.Since(start), err)
		return err
	}
	defer buf.Release()
	e.log.LogBuild(ctx, len(points), buf.Len(), time.Since(start), nil)

	return writeJSON(e, buf.Values())
}

func tourCmd(fs *flag.FlagSet) func(context.Context, *env) error {
	in := fs.String("in", "", "input file, stdin when empty")
	scale := fs.Float64("scale", tour.DefaultScale, "grid resolution per coordinate unit")

	return func(ctx context.Context, e *env) error {
		res, err := route(ctx, e, *in, *scale)
		if err != nil {
			return err
		}

		out := make([][2]float64, len(res.Path))
		for i, p := range res.Path {
			out[i] = [2]float64{p.X, p.Y}
		}
		return writeJSON(e, map[string]any{"path": out, "order": res.Order})
	}
}

func route(ctx context.Context, e *env, in string, scale float64) (tour.Result, error) {
	points, err := readVecs(in, e.stdin)
	if err != nil {
		return tour.Result{}, err
	}
	res, err := tour.Approximate(points, tour.WithScale(scale), tour.WithMaxPoints(e.cfg.MaxPoints))
	e.log.LogTour(ctx, len(points), len(res.Path), tour.Length(res.Path), err)

	return res, err
}

func renderCmd(fs *flag.FlagSet) func(context.Context, *env) error {
	in := fs.String("in", "", "input file, stdin when empty")
	out := fs.String("out", "tree.png", "output PNG file")
	asRoute := fs.Bool("route", false, "draw the tree-walk route instead of the tree")
	width := fs.Int("width", 512, "image width")
	height := fs.Int("height", 512, "image height")

	return func(ctx context.Context, e *env) (err error) {
		opts := []render.Option{render.WithSize(*width, *height)}

		var draw func(f *os.File) error
		if *asRoute {
			res, err := route(ctx, e, *in, tour.DefaultScale)
			if err != nil {
				return err
			}
			draw = func(f *os.File) error { return render.Path(f, res.Path, opts...) }
		} else {
			points, err := readGrid(*in, e.stdin)
			if err != nil {
				return err
			}
			edges, err := tree(ctx, e, points)
			if err != nil {
				return err
			}
			draw = func(f *os.File) error { return render.Tree(f, points, edges, opts...) }
		}

		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		if err := draw(f); err != nil {
			return fmt.Errorf("render %s: %w", *out, err)
		}
		e.log.InfoContext(ctx, "wrote image", "path", *out)

		return nil
	}
}

func writeJSON(e *env, v any) error {
	enc := json.NewEncoder(e.stdout)
	return enc.Encode(v)
}
