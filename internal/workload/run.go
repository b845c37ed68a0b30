package workload

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/rectree/rtree"
)

// Options controls how a workload is run.
type Options struct {
	// MaxChildren overrides the workload's fan-out when positive.
	MaxChildren int
	// Verify checks every query and delete against a shadow multiset and
	// checks the tree's invariants after every op.
	Verify bool
	Logger zerolog.Logger
}

// Result is the outcome of one op.
type Result struct {
	Index   int
	Op      string
	Rects   []rtree.Rect
	Found   []rtree.Rect // query only, in traversal order
	Removed bool         // delete only
}

// Report holds the tree after the run and the per-op results.
type Report struct {
	Tree    *rtree.RTree
	Results []Result
}

// Run applies the workload to a fresh tree. Workloads built in code are
// checked the same way Parse checks decoded ones.
func Run(w *Workload, opts Options) (*Report, error) {
	if err := w.validate(); err != nil {
		return nil, err
	}
	maxChildren := w.MaxChildren
	if opts.MaxChildren > 0 {
		maxChildren = opts.MaxChildren
	}
	var initial rtree.Rect
	if w.Initial != nil {
		var err error
		if initial, err = toRect(w.Initial); err != nil {
			return nil, fmt.Errorf("initial: %w", err)
		}
	}
	tree, err := rtree.New(maxChildren, initial, rtree.WithLogger(opts.Logger))
	if err != nil {
		return nil, err
	}

	var sh *shadow
	if opts.Verify {
		sh = newShadow()
	}
	report := &Report{Tree: tree}
	for i, op := range w.Ops {
		res, err := apply(tree, sh, i, op)
		if err != nil {
			return report, fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}
		if opts.Verify {
			if err := tree.Validate(); err != nil {
				return report, fmt.Errorf("op %d (%s): %w", i, op.Op, err)
			}
		}
		opts.Logger.Debug().
			Int("op", i).
			Str("kind", op.Op).
			Int("len", tree.Len()).
			Int("height", tree.Height()).
			Msg("applied op")
		report.Results = append(report.Results, res)
	}

	opts.Logger.Info().
		Int("ops", len(w.Ops)).
		Int("len", tree.Len()).
		Int("height", tree.Height()).
		Bool("verified", opts.Verify).
		Msg("workload done")
	return report, nil
}

func apply(tree *rtree.RTree, sh *shadow, i int, op Op) (Result, error) {
	rects, err := op.rects()
	if err != nil {
		return Result{}, err
	}
	res := Result{Index: i, Op: op.Op, Rects: rects}

	switch op.Op {
	case OpInsert:
		for _, r := range rects {
			if err := tree.Insert(r); err != nil {
				return res, err
			}
			if sh != nil {
				sh.insert(r)
			}
		}

	case OpDelete, OpDeleteOne:
		limit := -1
		if op.Op == OpDeleteOne {
			limit = 1
		}
		if limit < 0 {
			res.Removed = tree.Delete(rects[0])
		} else {
			res.Removed = tree.DeleteOne(rects[0])
		}
		if sh != nil {
			if want := sh.remove(rects[0], limit) > 0; want != res.Removed {
				return res, fmt.Errorf("removed=%t, shadow removed=%t", res.Removed, want)
			}
			if tree.Len() != sh.len() {
				return res, fmt.Errorf("tree holds %d rects, shadow holds %d", tree.Len(), sh.len())
			}
		}

	case OpQuery:
		res.Found = tree.Query(rects[0])
		if sh != nil {
			got := slices.Clone(res.Found)
			slices.SortFunc(got, compareRects)
			if want := sh.query(rects[0]); !slices.Equal(got, want) {
				return res, fmt.Errorf("query %v: tree found %v, shadow found %v", rects[0], got, want)
			}
		}
	}
	return res, nil
}
