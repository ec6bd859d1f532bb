// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package sudokusat

import (
	"fmt"
	"time"

	"github.com/Ashwot-Acharya/Sudoku-SAT/bt"
	"github.com/Ashwot-Acharya/Sudoku-SAT/cnf"
	"github.com/Ashwot-Acharya/Sudoku-SAT/grid"
	"github.com/Ashwot-Acharya/Sudoku-SAT/sat"
)

// Method names for solution artifacts.
const (
	MethodSearch = "Optimized_Backtracking"
	MethodSAT    = "SAT"
)

// Solve runs the backtracking search on a copy of g.  The solved board
// is returned when the status is bt.Solved; the input is never
// modified.  A zero budget means no limit.
func Solve(g *grid.Grid, budget time.Duration) (*grid.Grid, bt.Status, bt.Stats, error) {
	ps, e := grid.NewPeers(g.N)
	if e != nil {
		return nil, bt.Unsolvable, bt.Stats{}, e
	}
	work := g.Clone()
	s, e := bt.New(work, ps)
	if e != nil {
		return nil, bt.Unsolvable, bt.Stats{}, e
	}
	var st bt.Status
	if budget > 0 {
		st = s.Try(budget)
	} else {
		st = s.Solve()
	}
	if st != bt.Solved {
		work = nil
	}
	return work, st, s.Stats(), nil
}

// Encode reduces g to clauses.
func Encode(g *grid.Grid) (*cnf.Encoding, error) {
	ps, e := grid.NewPeers(g.N)
	if e != nil {
		return nil, e
	}
	return cnf.Encode(g, ps)
}

// SolveSAT encodes g, runs the engine, and decodes the model.  The
// solved board is returned when the result status is sat.Sat.  A nil
// engine selects gini.
func SolveSAT(g *grid.Grid, engine sat.Solver, budget time.Duration) (*grid.Grid, sat.Result, error) {
	if engine == nil {
		engine = sat.Gini{}
	}
	enc, e := Encode(g)
	if e != nil {
		return nil, sat.Result{}, e
	}
	res, e := engine.Solve(enc, budget)
	if e != nil {
		return nil, res, e
	}
	if res.Status != sat.Sat {
		return nil, res, nil
	}
	sol, e := enc.Map().Decode(res.Model)
	if e != nil {
		return nil, res, fmt.Errorf("engine %s: %w", engine.Name(), e)
	}
	return sol, res, nil
}
