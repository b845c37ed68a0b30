// Package workload decodes and runs scripted sequences of R-Tree operations.
package workload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/mitchellh/mapstructure"

	"github.com/rectree/rtree"
)

const (
	OpInsert    = "insert"
	OpDelete    = "delete"
	OpDeleteOne = "delete-one"
	OpQuery     = "query"
)

// Workload is a tree configuration followed by the operations to apply to it.
type Workload struct {
	MaxChildren int       `mapstructure:"max_children"`
	Initial     []float64 `mapstructure:"initial"`
	Ops         []Op      `mapstructure:"ops"`
}

// Op is a single step. Insert accepts several rectangles in Rects; the other
// operations take one rectangle in Rect.
type Op struct {
	Op    string      `mapstructure:"op"`
	Rect  []float64   `mapstructure:"rect"`
	Rects [][]float64 `mapstructure:"rects"`
}

var errNoOps = errors.New("workload has no ops")

// Parse reads a JSON workload.
func Parse(r io.Reader) (*Workload, error) {
	var raw map[string]interface{}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse workload json: %w", err)
	}

	var w Workload
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &w,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode workload: %w", err)
	}
	if err := w.validate(); err != nil {
		return nil, err
	}
	return &w, nil
}

func (w *Workload) validate() error {
	if len(w.Ops) == 0 {
		return errNoOps
	}
	if w.Initial != nil {
		if _, err := toRect(w.Initial); err != nil {
			return fmt.Errorf("initial: %w", err)
		}
	}
	for i, op := range w.Ops {
		switch op.Op {
		case OpInsert:
			if len(op.Rects) == 0 && op.Rect == nil {
				return fmt.Errorf("op %d: insert needs rect or rects", i)
			}
		case OpDelete, OpDeleteOne, OpQuery:
			if op.Rect == nil {
				return fmt.Errorf("op %d: %s needs rect", i, op.Op)
			}
		default:
			return fmt.Errorf("op %d: unknown op %q", i, op.Op)
		}
	}
	return nil
}

// rects lists the rectangles an op applies to.
func (op Op) rects() ([]rtree.Rect, error) {
	coords := op.Rects
	if op.Rect != nil {
		coords = append([][]float64{op.Rect}, coords...)
	}
	rects := make([]rtree.Rect, 0, len(coords))
	for _, c := range coords {
		r, err := toRect(c)
		if err != nil {
			return nil, err
		}
		rects = append(rects, r)
	}
	return rects, nil
}

func toRect(c []float64) (rtree.Rect, error) {
	if len(c) != 4 {
		return rtree.Rect{}, fmt.Errorf("rect needs 4 coordinates, got %d", len(c))
	}
	return rtree.NewRect(c[0], c[1], c[2], c[3])
}
