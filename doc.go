// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

// Package sudokusat solves generalized sudoku boards two ways and lets
// the ways race.
//
// One way is a constraint search: most constrained cell first, ties
// broken on peer degree, with candidate pruning undone on backtrack.
// The other way reduces the board to propositional clauses, feeds them
// to a sat engine, and reads the board back off the model.  The clause
// reduction resolves forced cells up front, so the formula shrinks with
// every clue.
//
// This package is the facade; the machinery lives below it:
//
//	grid   boards, peer structure, puzzle files
//	bt     the backtracking search
//	cnf    the clause reduction and its dimacs form
//	sat    engines, linked and external
//	gen    bundled benchmark boards
//	bench  the race harness
//
// The cmd directory holds the two command line tools, sudokusat and
// sudokubench.
package sudokusat
