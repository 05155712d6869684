package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/minspan/mst"
	"github.com/katalvlaran/minspan/tour"
)

var errInput = errors.New("minspan: bad input")

// readVecs reads [[x, y], ...] or {"points": [[x, y], ...]} from path, or from
// stdin when path is empty.
func readVecs(path string, stdin io.Reader) ([]tour.Vec, error) {
	data, err := readInput(path, stdin)
	if err != nil {
		return nil, err
	}

	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var doc struct {
			Points json.RawMessage `json:"points"`
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: %w", errInput, err)
		}
		if doc.Points == nil {
			return nil, fmt.Errorf("%w: points not found", errInput)
		}
		data = doc.Points
	}

	var rows [][]float64
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("%w: %w", errInput, err)
	}
	points := make([]tour.Vec, len(rows))
	for i, row := range rows {
		if len(row) != 2 {
			return nil, fmt.Errorf("%w: point %d has %d coordinates", errInput, i, len(row))
		}
		points[i] = tour.Vec{X: row[0], Y: row[1]}
	}

	return points, nil
}

// readGrid is readVecs restricted to int32 coordinates.
func readGrid(path string, stdin io.Reader) ([]mst.Point, error) {
	vecs, err := readVecs(path, stdin)
	if err != nil {
		return nil, err
	}
	points := make([]mst.Point, len(vecs))
	for i, v := range vecs {
		if !isInt32(v.X) || !isInt32(v.Y) {
			return nil, fmt.Errorf("%w: point %d is not an int32 pair", errInput, i)
		}
		points[i] = mst.Point{X: int32(v.X), Y: int32(v.Y)}
	}

	return points, nil
}

func isInt32(v float64) bool {
	return v == math.Trunc(v) && v >= math.MinInt32 && v <= math.MaxInt32
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}
