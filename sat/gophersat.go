// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package sat

import (
	"time"

	"github.com/crillab/gophersat/solver"

	"github.com/Ashwot-Acharya/Sudoku-SAT/cnf"
)

// Gophersat solves encodings with the gophersat engine linked into the
// process.
type Gophersat struct{}

var _ Solver = Gophersat{}

func (Gophersat) Name() string {
	return "gophersat"
}

type gopherOut struct {
	st    solver.Status
	model []bool
}

// Solve loads the clauses and runs the engine.  Gophersat has no
// preemption hook, so with a budget the run happens on a worker
// goroutine; on expiry the verdict is reported unknown and the worker
// is left to finish on its own.
func (Gophersat) Solve(enc *cnf.Encoding, budget time.Duration) (Result, error) {
	pb := solver.ParseSlice(enc.Clauses)
	s := solver.New(pb)
	start := time.Now()
	if budget <= 0 {
		st := s.Solve()
		return gopherResult(enc, s, st, time.Since(start)), nil
	}
	done := make(chan gopherOut, 1)
	go func() {
		st := s.Solve()
		var m []bool
		if st == solver.Sat {
			m = s.Model()
		}
		done <- gopherOut{st, m}
	}()
	select {
	case out := <-done:
		res := gopherResult(enc, nil, out.st, time.Since(start))
		if out.st == solver.Sat {
			res.Model = modelLits(out.model, enc.Vars)
		}
		return res, nil
	case <-time.After(budget):
		return Result{Status: Unknown, Dur: time.Since(start)}, nil
	}
}

func gopherResult(enc *cnf.Encoding, s *solver.Solver, st solver.Status, d time.Duration) Result {
	res := Result{Dur: d}
	switch st {
	case solver.Sat:
		res.Status = Sat
		if s != nil {
			res.Model = modelLits(s.Model(), enc.Vars)
		}
	case solver.Unsat:
		res.Status = Unsat
	default:
		res.Status = Unknown
	}
	return res
}

// modelLits turns gophersat's binding slice into signed dimacs literals.
func modelLits(m []bool, vars int) []int {
	if len(m) > vars {
		m = m[:vars]
	}
	lits := make([]int, 0, len(m))
	for i, b := range m {
		if b {
			lits = append(lits, i+1)
		} else {
			lits = append(lits, -(i + 1))
		}
	}
	return lits
}
