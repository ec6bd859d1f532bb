// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

// Package grid holds the board model shared by the backtracking solver and
// the clause encoder: square boards of side n for perfect square n, with 0
// marking an empty cell, together with the peer relation over cells.
package grid

import (
	"fmt"
	"strings"
)

// InvalidSizeError indicates a board side whose square root is not an
// integer.
type InvalidSizeError int

func (n InvalidSizeError) Error() string {
	return fmt.Sprintf("size %d: not a perfect square", int(n))
}

// BoxOf returns the box side for board side n, or an InvalidSizeError when
// n is not a positive perfect square.
func BoxOf(n int) (int, error) {
	if n <= 0 {
		return 0, InvalidSizeError(n)
	}
	b := 1
	for b*b < n {
		b++
	}
	if b*b != n {
		return 0, InvalidSizeError(n)
	}
	return b, nil
}

// Grid is a square board.  Cells are stored row major and hold values in
// [0,N], 0 meaning empty.
type Grid struct {
	N     int
	Box   int
	Cells []int
}

// New returns an empty n×n grid.
func New(n int) (*Grid, error) {
	b, e := BoxOf(n)
	if e != nil {
		return nil, e
	}
	return &Grid{N: n, Box: b, Cells: make([]int, n*n)}, nil
}

// FromRows builds a grid from row slices.
func FromRows(rows [][]int) (*Grid, error) {
	g, e := New(len(rows))
	if e != nil {
		return nil, e
	}
	for r, row := range rows {
		if len(row) != g.N {
			return nil, fmt.Errorf("row %d: got %d cells, want %d", r, len(row), g.N)
		}
		for c, v := range row {
			if v < 0 || v > g.N {
				return nil, fmt.Errorf("cell (%d,%d): value %d out of range [0,%d]", r, c, v, g.N)
			}
			g.Cells[r*g.N+c] = v
		}
	}
	return g, nil
}

// At returns the value at row r, column c.
func (g *Grid) At(r, c int) int {
	return g.Cells[r*g.N+c]
}

// Set places v at row r, column c.
func (g *Grid) Set(r, c, v int) {
	g.Cells[r*g.N+c] = v
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	cp := &Grid{N: g.N, Box: g.Box, Cells: make([]int, len(g.Cells))}
	copy(cp.Cells, g.Cells)
	return cp
}

// Clues returns the number of filled cells.
func (g *Grid) Clues() int {
	k := 0
	for _, v := range g.Cells {
		if v != 0 {
			k++
		}
	}
	return k
}

// Full reports whether every cell is filled.
func (g *Grid) Full() bool {
	for _, v := range g.Cells {
		if v == 0 {
			return false
		}
	}
	return true
}

// Valid reports whether no row, column, or box repeats a nonzero value.
func (g *Grid) Valid() bool {
	n, b := g.N, g.Box
	seen := make([]bool, n+1)
	unit := func(cells []int) bool {
		for i := 1; i <= n; i++ {
			seen[i] = false
		}
		for _, i := range cells {
			v := g.Cells[i]
			if v == 0 {
				continue
			}
			if seen[v] {
				return false
			}
			seen[v] = true
		}
		return true
	}
	buf := make([]int, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			buf[c] = r*n + c
		}
		if !unit(buf) {
			return false
		}
	}
	for c := 0; c < n; c++ {
		for r := 0; r < n; r++ {
			buf[r] = r*n + c
		}
		if !unit(buf) {
			return false
		}
	}
	for br := 0; br < n; br += b {
		for bc := 0; bc < n; bc += b {
			k := 0
			for dr := 0; dr < b; dr++ {
				for dc := 0; dc < b; dc++ {
					buf[k] = (br+dr)*n + bc + dc
					k++
				}
			}
			if !unit(buf) {
				return false
			}
		}
	}
	return true
}

// Solved reports whether g is a complete conflict free assignment.
func (g *Grid) Solved() bool {
	return g.Full() && g.Valid()
}

// String renders the rows of g, space separated, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.N; r++ {
		for c := 0; c < g.N; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", g.At(r, c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
