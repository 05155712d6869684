package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/katalvlaran/minspan/mst"
	"github.com/katalvlaran/minspan/render"
	"github.com/katalvlaran/minspan/tour"
)

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", s.handlePing)
	for _, m := range []string{http.MethodGet, http.MethodPost} {
		mux.HandleFunc(m+" /min_span", s.handleMinSpan)
		mux.HandleFunc(m+" /min_span.png", s.handleMinSpanPNG)
		mux.HandleFunc(m+" /traveling_salesman", s.handleTour)
	}

	return s.middleware(mux)
}

func (s *Server) handlePing(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleMinSpan(w http.ResponseWriter, r *http.Request) {
	points, err := readGridPoints(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	edges, err := s.tree(r.Context(), points)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	out := make([][2]int, len(edges))
	for i, e := range edges {
		out[i] = [2]int{e.From, e.To}
	}
	writeJSON(w, http.StatusOK, map[string]any{"edges": out})
}

func (s *Server) handleMinSpanPNG(w http.ResponseWriter, r *http.Request) {
	opts, err := renderOptions(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	points, err := readGridPoints(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	edges, err := s.tree(r.Context(), points)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := render.Tree(&buf, points, edges, opts...); err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleTour(w http.ResponseWriter, r *http.Request) {
	points, err := readPoints(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	ctx := r.Context()
	if err := s.acquire(ctx); err != nil {
		s.fail(w, r, err)
		return
	}
	res, err := tour.Approximate(points, tour.WithMaxPoints(s.cfg.MaxPoints))
	s.builds.Release(1)
	s.log.LogTour(ctx, len(points), len(res.Path), tour.Length(res.Path), err)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	out := make([][2]float64, len(res.Path))
	for i, p := range res.Path {
		out[i] = [2]float64{p.X, p.Y}
	}
	writeJSON(w, http.StatusOK, map[string]any{"path": out})
}

// renderOptions reads the optional width and height query parameters.
func renderOptions(r *http.Request) ([]render.Option, error) {
	q := r.URL.Query()
	size := [2]int{512, 512}
	for i, name := range []string{"width", "height"} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil || n < 64 || n > 4096 {
			return nil, ErrBadQuery
		}
		size[i] = n
	}

	return []render.Option{render.WithSize(size[0], size[1])}, nil
}

// fail maps err to a status code and writes {"error": msg}.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"

	var (
		verr   *ValidationError
		tooBig *http.MaxBytesError
	)
	switch {
	case errors.As(err, &verr):
		status, msg = http.StatusUnprocessableEntity, verr.Msg
	case errors.Is(err, tour.ErrOutOfRange):
		status, msg = http.StatusUnprocessableEntity, ErrOutOfRange.Msg
	case errors.Is(err, ErrBadBody), errors.Is(err, ErrBadQuery):
		status, msg = http.StatusBadRequest, err.Error()
	case errors.As(err, &tooBig):
		status, msg = http.StatusRequestEntityTooLarge, "request body too large"
	case errors.Is(err, mst.ErrResourceExhausted):
		status, msg = http.StatusRequestEntityTooLarge, err.Error()
	case errors.Is(err, ErrBusy):
		status, msg = http.StatusServiceUnavailable, ErrBusy.Error()
	default:
		s.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
