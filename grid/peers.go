// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package grid

// Peers is the peer relation for one board side: for every cell, the cells
// sharing its row, column, or box, deduplicated and excluding the cell
// itself.  The relation is a pure function of the side, so one value is
// built per size and shared by every grid of that size.
type Peers struct {
	N    int
	Box  int
	sets [][]int
}

// NewPeers builds the relation for side n.
func NewPeers(n int) (*Peers, error) {
	b, e := BoxOf(n)
	if e != nil {
		return nil, e
	}
	p := &Peers{N: n, Box: b, sets: make([][]int, n*n)}
	mark := make([]bool, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			p.sets[r*n+c] = peersOf(n, b, r, c, mark)
		}
	}
	return p, nil
}

// peersOf lists the peers of (r,c) in ascending cell index order.  Every
// cell has 2(n-1) + (b-1)² of them.
func peersOf(n, b, r, c int, mark []bool) []int {
	for i := range mark {
		mark[i] = false
	}
	for i := 0; i < n; i++ {
		mark[r*n+i] = true
		mark[i*n+c] = true
	}
	br, bc := r-r%b, c-c%b
	for dr := 0; dr < b; dr++ {
		for dc := 0; dc < b; dc++ {
			mark[(br+dr)*n+bc+dc] = true
		}
	}
	mark[r*n+c] = false
	ps := make([]int, 0, 2*(n-1)+(b-1)*(b-1))
	for i, m := range mark {
		if m {
			ps = append(ps, i)
		}
	}
	return ps
}

// Of returns the peers of cell i.  The slice is shared and must not be
// modified by the caller.
func (p *Peers) Of(i int) []int {
	return p.sets[i]
}

// OfRC returns the peers of the cell at row r, column c.
func (p *Peers) OfRC(r, c int) []int {
	return p.sets[r*p.N+c]
}

// Degree returns the number of peers of cell i.
func (p *Peers) Degree(i int) int {
	return len(p.sets[i])
}
