// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

// Package sat runs reduced sudoku encodings through sat engines.
//
// Three kinds of engine sit behind one interface: the gini solver linked
// into the process, the gophersat solver linked into the process, and any
// dimacs solver binary found on PATH.  All of them consume a cnf.Encoding
// and report the usual verdict convention
//
//	 1 satisfiable
//	 0 unknown, budget exhausted
//	-1 unsatisfiable
//
// together with a model in dimacs literals when the verdict is 1.
package sat

import (
	"fmt"
	"time"

	"github.com/Ashwot-Acharya/Sudoku-SAT/cnf"
)

const (
	Unsat   = -1
	Unknown = 0
	Sat     = 1
)

// StatusString renders a verdict the way solver logs spell it.
func StatusString(st int) string {
	switch {
	case st > 0:
		return "SATISFIABLE"
	case st < 0:
		return "UNSATISFIABLE"
	default:
		return "UNKNOWN"
	}
}

// Result is the outcome of one engine run.
type Result struct {
	Status int
	Model  []int
	Dur    time.Duration
}

// Solver is a sat engine bound to the encoding shape of this module.
//
// Solve runs the engine on enc for at most budget.  A zero or negative
// budget means no limit.  When the budget runs out the result status is
// 0 and the error is nil; errors are reserved for broken engines, not
// for hard instances.
type Solver interface {
	Name() string
	Solve(enc *cnf.Encoding, budget time.Duration) (Result, error)
}

// New resolves an engine by name.  The empty name and "gini" select the
// linked gini solver, "gophersat" the linked gophersat solver, and any
// other name is looked up as a binary on PATH.
func New(name string) (Solver, error) {
	switch name {
	case "", "gini":
		return Gini{}, nil
	case "gophersat":
		return Gophersat{}, nil
	default:
		return NewExec(name)
	}
}

// ErrNoSolver is reported by Find when none of the known binaries is
// installed.
var ErrNoSolver = fmt.Errorf("no dimacs solver binary on PATH")
