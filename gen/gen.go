// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package gen

import (
	"fmt"

	"github.com/Ashwot-Acharya/Sudoku-SAT/grid"
)

// An Instance is one bundled board together with its group and file
// name stem.
type Instance struct {
	Group string
	Name  string
	Grid  *grid.Grid
}

type set struct {
	group  string
	prefix string
	boards func() []*grid.Grid
}

// suite order fixed, benchmark reports follow it
var sets = []set{
	{"17-clue", "sudoku_9x9_17clue", seventeenClueBoards},
	{"5-clue", "sudoku_9x9_higher_clue", higherClueBoards},
	{"4x4", "sudoku_4x4", fourBoards},
	{"16x16", "sudoku_16x16", sixteenBoards},
	{"25x25", "sudoku_25x25", twentyFiveBoards},
	{"36x36", "sudoku_36x36", thirtySixBoards},
}

// Groups lists the group names in suite order.
func Groups() []string {
	gs := make([]string, len(sets))
	for i, s := range sets {
		gs[i] = s.group
	}
	return gs
}

// All returns the full suite.  The grids are built fresh on every call,
// so callers may solve them in place.
func All() []Instance {
	var out []Instance
	for _, s := range sets {
		out = append(out, build(s)...)
	}
	return out
}

// ByGroup returns the instances of one group, or an error for an
// unknown group name.
func ByGroup(group string) ([]Instance, error) {
	for _, s := range sets {
		if s.group == group {
			return build(s), nil
		}
	}
	return nil, fmt.Errorf("unknown group %q", group)
}

func build(s set) []Instance {
	boards := s.boards()
	out := make([]Instance, len(boards))
	for i, g := range boards {
		out[i] = Instance{
			Group: s.group,
			Name:  fmt.Sprintf("%s_%02d", s.prefix, i+1),
			Grid:  g,
		}
	}
	return out
}

// mustRows builds a grid from literal rows.  The bundled data is fixed
// at compile time, so a failure here is a corrupt table.
func mustRows(rows [][]int) *grid.Grid {
	g, e := grid.FromRows(rows)
	if e != nil {
		panic(e)
	}
	return g
}

// fromClues builds an n sized board from (row, col, value) triples.
func fromClues(n int, clues [][3]int) *grid.Grid {
	g, e := grid.New(n)
	if e != nil {
		panic(e)
	}
	for _, cl := range clues {
		g.Set(cl[0], cl[1], cl[2])
	}
	return g
}
