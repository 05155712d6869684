package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/katalvlaran/minspan/mst"
	"github.com/katalvlaran/minspan/tour"
)

// readPoints decodes {"points": [[x, y], ...]} from the request body.
func readPoints(w http.ResponseWriter, r *http.Request) ([]tour.Vec, error) {
	var doc json.RawMessage
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes)).Decode(&doc); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			return nil, err
		}
		// Empty bodies surface as io.EOF.
		return nil, ErrBadBody
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(doc, &fields); err != nil {
		return nil, ErrPointsNotFound
	}
	raw, ok := fields["points"]
	if !ok {
		return nil, ErrPointsNotFound
	}

	items, ok := asList(raw)
	if !ok {
		return nil, ErrNotList
	}
	points := make([]tour.Vec, 0, len(items))
	for _, item := range items {
		coords, ok := asList(item)
		if !ok {
			return nil, ErrNonListPoint
		}
		if len(coords) != 2 {
			return nil, ErrNon2DPoint
		}
		x, err := asNumber(coords[0])
		if err != nil {
			return nil, err
		}
		y, err := asNumber(coords[1])
		if err != nil {
			return nil, err
		}
		points = append(points, tour.Vec{X: x, Y: y})
	}

	return points, nil
}

// readGridPoints is readPoints restricted to int32 integers.
func readGridPoints(w http.ResponseWriter, r *http.Request) ([]mst.Point, error) {
	vecs, err := readPoints(w, r)
	if err != nil {
		return nil, err
	}
	points := make([]mst.Point, len(vecs))
	for i, v := range vecs {
		x, err := asInt32(v.X)
		if err != nil {
			return nil, err
		}
		y, err := asInt32(v.Y)
		if err != nil {
			return nil, err
		}
		points[i] = mst.Point{X: x, Y: y}
	}

	return points, nil
}

func asList(raw json.RawMessage) ([]json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}

	return items, true
}

// asNumber accepts JSON numbers only; strings holding digits, booleans and null are rejected.
func asNumber(raw json.RawMessage) (float64, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0, ErrNonNumeric
	}
	switch c := raw[0]; {
	case c == '-' || (c >= '0' && c <= '9'):
	default:
		return 0, ErrNonNumeric
	}
	v, err := strconv.ParseFloat(string(raw), 64)
	if err != nil {
		// Syntactically valid JSON numbers beyond float64 range.
		return 0, ErrOutOfRange
	}

	return v, nil
}

func asInt32(v float64) (int32, error) {
	if v != math.Trunc(v) {
		return 0, ErrNonInteger
	}
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, ErrOutOfRange
	}

	return int32(v), nil
}
