// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package cnf

import (
	"fmt"

	"github.com/Ashwot-Acharya/Sudoku-SAT/grid"
)

// VarMap is the decode side of an encoding: the atom behind each variable
// and the originally fixed cells.  It carries everything a model consumer
// needs, so decoding never re-derives the partition.
type VarMap struct {
	N     int
	Atoms []Atom
	Fixed []Atom
}

// Map returns the decode side of enc.  The slices are shared with enc.
func (enc *Encoding) Map() *VarMap {
	return &VarMap{N: enc.N, Atoms: enc.atoms, Fixed: enc.Fixed}
}

// Decode rebuilds a complete board from a satisfying assignment.  model
// holds dimacs literals; non positive entries are ignored, so both a bare
// list of true variables and a full signed assignment decode.  The result
// is checked: fixed cells must be untouched, every cell assigned, and no
// row, column, or box may repeat a value.
func (m *VarMap) Decode(model []int) (*grid.Grid, error) {
	g, e := grid.New(m.N)
	if e != nil {
		return nil, e
	}
	for _, a := range m.Fixed {
		g.Set(a.Row, a.Col, a.Val)
	}
	for _, lit := range model {
		if lit <= 0 {
			continue
		}
		if lit > len(m.Atoms) {
			return nil, fmt.Errorf("model literal %d out of range, have %d variables", lit, len(m.Atoms))
		}
		a := m.Atoms[lit-1]
		if cur := g.At(a.Row, a.Col); cur != 0 && cur != a.Val {
			return nil, fmt.Errorf("model assigns %d over %d at (%d,%d)", a.Val, cur, a.Row, a.Col)
		}
		g.Set(a.Row, a.Col, a.Val)
	}
	if !g.Full() {
		return nil, fmt.Errorf("model leaves cells empty")
	}
	if !g.Valid() {
		return nil, fmt.Errorf("decoded board has conflicts")
	}
	return g, nil
}
