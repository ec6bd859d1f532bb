// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package sat

import (
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/Ashwot-Acharya/Sudoku-SAT/cnf"
)

// Gini solves encodings with the gini engine linked into the process.
type Gini struct{}

var _ Solver = Gini{}

func (Gini) Name() string {
	return "gini"
}

// Solve loads the clauses and runs the engine.  With a budget it uses
// the asynchronous solve handle so the engine stops close to the
// deadline; without one it blocks until a verdict.
func (Gini) Solve(enc *cnf.Encoding, budget time.Duration) (Result, error) {
	g := gini.New()
	for _, cl := range enc.Clauses {
		for _, l := range cl {
			g.Add(z.Dimacs2Lit(l))
		}
		g.Add(0)
	}
	start := time.Now()
	var st int
	if budget > 0 {
		st = g.GoSolve().Try(budget)
	} else {
		st = g.Solve()
	}
	res := Result{Status: st, Dur: time.Since(start)}
	if st == Sat {
		res.Model = make([]int, 0, enc.Vars)
		for v := 1; v <= enc.Vars; v++ {
			if g.Value(z.Var(v).Pos()) {
				res.Model = append(res.Model, v)
			} else {
				res.Model = append(res.Model, -v)
			}
		}
	}
	return res, nil
}
