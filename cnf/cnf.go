// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

// Package cnf encodes boards as reduced formulas in conjunctive normal
// form.  Every (cell,value) proposition is first classified against the
// clues as forced true, forced false, or free; the structural constraints
// are then simplified against that partition and emitted over variables
// standing for the free propositions only.
package cnf

import (
	"fmt"

	"github.com/Ashwot-Acharya/Sudoku-SAT/grid"
)

// Atom is the proposition that one cell holds one value.  Rows and
// columns are 0 based, values run 1..N.
type Atom struct {
	Row, Col, Val int
}

func (a Atom) String() string {
	return fmt.Sprintf("(%d,%d)=%d", a.Row, a.Col, a.Val)
}

// Class labels an atom against the clues of one board.
type Class uint8

const (
	// Free atoms are undetermined and receive variables.
	Free Class = iota
	// ForcedTrue atoms are exactly the clues.
	ForcedTrue
	// ForcedFalse atoms are excluded by a clue one peer hop away.
	ForcedFalse
)

func (cl Class) String() string {
	switch cl {
	case Free:
		return "free"
	case ForcedTrue:
		return "forced-true"
	case ForcedFalse:
		return "forced-false"
	}
	return fmt.Sprintf("Class(%d)", uint8(cl))
}

// ContradictionError reports a structural clause every literal of which
// was resolved false by the partition.  It cannot happen for a conflict
// free board, so seeing one means the input clues conflict or the encoder
// is broken.
type ContradictionError struct {
	Family string
	Clause []Atom
}

func (ce *ContradictionError) Error() string {
	if len(ce.Clause) == 0 {
		return fmt.Sprintf("%s clause reduced to the empty clause", ce.Family)
	}
	return fmt.Sprintf("%s clause at %s reduced to the empty clause", ce.Family, ce.Clause[0])
}

// Encoding is the reduced formula for one board.  Clauses hold signed
// literals over the variables 1..Vars; the bijection between variables
// and free atoms is canonical, assigned in (row, column, value) order, so
// identical boards encode identically.
type Encoding struct {
	N       int
	Vars    int
	Clauses [][]int
	Fixed   []Atom

	atoms []Atom
	index []int32
	class []Class
}

// AtomOf returns the atom behind variable v in 1..Vars.
func (enc *Encoding) AtomOf(v int) Atom {
	return enc.atoms[v-1]
}

// VarOf returns the variable standing for a, or 0 when a is not free.
func (enc *Encoding) VarOf(a Atom) int {
	return int(enc.index[enc.flat(a)])
}

// ClassOf returns the partition class of a.
func (enc *Encoding) ClassOf(a Atom) Class {
	return enc.class[enc.flat(a)]
}

func (enc *Encoding) flat(a Atom) int {
	return (a.Row*enc.N+a.Col)*enc.N + a.Val - 1
}

// NaiveCounts returns the size of the unreduced encoding of an n×n board
// with the given clue count: n³ variables, a definedness clause per unit
// and value, pairwise uniqueness clauses, and one unit clause per clue.
func NaiveCounts(n, clues int) (vars, clauses int) {
	pairs := n * (n - 1) / 2
	vars = n * n * n
	clauses = 4*n*n + 4*n*n*pairs + clues
	return
}

// Encode reduces g against ps.  The eight constraint families are
// emitted in a fixed order: cell definedness, cell uniqueness, then the
// row, column, and block analogues of each.  Within a family iteration is
// row major and value ascending.
func Encode(g *grid.Grid, ps *grid.Peers) (*Encoding, error) {
	if ps.N != g.N {
		return nil, fmt.Errorf("peer relation is for size %d, grid is %d", ps.N, g.N)
	}
	n, box := g.N, g.Box
	b := &builder{n: n, class: make([]Class, n*n*n)}

	// partition: clues first, then their one hop exclusions.  A forced
	// true atom is never downgraded, matching the clue first resolution
	// order.
	var fixed []Atom
	for cell, v := range g.Cells {
		if v == 0 {
			continue
		}
		a := Atom{Row: cell / n, Col: cell % n, Val: v}
		fixed = append(fixed, a)
		b.class[cell*n+v-1] = ForcedTrue
	}
	for _, a := range fixed {
		cell := a.Row*n + a.Col
		base := cell * n
		for w := 1; w <= n; w++ {
			if w == a.Val {
				continue
			}
			b.exclude(int32(base + w - 1))
		}
		for _, q := range ps.Of(cell) {
			b.exclude(int32(q*n + a.Val - 1))
		}
	}

	// canonical variable assignment over the free atoms, in flat id
	// order, which is exactly (row, column, value) order
	b.index = make([]int32, n*n*n)
	var atoms []Atom
	for id := range b.class {
		if b.class[id] != Free {
			continue
		}
		atoms = append(atoms, atomOf(n, int32(id)))
		b.index[id] = int32(len(atoms))
	}

	ids := make([]int32, n)

	b.family = "cell definedness"
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			for v := 1; v <= n; v++ {
				ids[v-1] = flat(n, r, c, v)
			}
			if e := b.addDef(ids); e != nil {
				return nil, e
			}
		}
	}
	b.family = "cell uniqueness"
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			for v := 1; v <= n; v++ {
				for w := v + 1; w <= n; w++ {
					if e := b.addUniq(flat(n, r, c, v), flat(n, r, c, w)); e != nil {
						return nil, e
					}
				}
			}
		}
	}
	b.family = "row definedness"
	for r := 0; r < n; r++ {
		for v := 1; v <= n; v++ {
			for c := 0; c < n; c++ {
				ids[c] = flat(n, r, c, v)
			}
			if e := b.addDef(ids); e != nil {
				return nil, e
			}
		}
	}
	b.family = "row uniqueness"
	for r := 0; r < n; r++ {
		for v := 1; v <= n; v++ {
			for c := 0; c < n; c++ {
				for d := c + 1; d < n; d++ {
					if e := b.addUniq(flat(n, r, c, v), flat(n, r, d, v)); e != nil {
						return nil, e
					}
				}
			}
		}
	}
	b.family = "column definedness"
	for c := 0; c < n; c++ {
		for v := 1; v <= n; v++ {
			for r := 0; r < n; r++ {
				ids[r] = flat(n, r, c, v)
			}
			if e := b.addDef(ids); e != nil {
				return nil, e
			}
		}
	}
	b.family = "column uniqueness"
	for c := 0; c < n; c++ {
		for v := 1; v <= n; v++ {
			for r := 0; r < n; r++ {
				for s := r + 1; s < n; s++ {
					if e := b.addUniq(flat(n, r, c, v), flat(n, s, c, v)); e != nil {
						return nil, e
					}
				}
			}
		}
	}

	cells := make([]int, n)
	b.family = "block definedness"
	for br := 0; br < n; br += box {
		for bc := 0; bc < n; bc += box {
			k := 0
			for dr := 0; dr < box; dr++ {
				for dc := 0; dc < box; dc++ {
					cells[k] = (br+dr)*n + bc + dc
					k++
				}
			}
			for v := 1; v <= n; v++ {
				for i, cell := range cells {
					ids[i] = int32(cell*n + v - 1)
				}
				if e := b.addDef(ids); e != nil {
					return nil, e
				}
			}
		}
	}
	b.family = "block uniqueness"
	for br := 0; br < n; br += box {
		for bc := 0; bc < n; bc += box {
			k := 0
			for dr := 0; dr < box; dr++ {
				for dc := 0; dc < box; dc++ {
					cells[k] = (br+dr)*n + bc + dc
					k++
				}
			}
			for v := 1; v <= n; v++ {
				for i := 0; i < n; i++ {
					for j := i + 1; j < n; j++ {
						x := int32(cells[i]*n + v - 1)
						y := int32(cells[j]*n + v - 1)
						if e := b.addUniq(x, y); e != nil {
							return nil, e
						}
					}
				}
			}
		}
	}

	return &Encoding{
		N:       n,
		Vars:    len(atoms),
		Clauses: b.out,
		Fixed:   fixed,
		atoms:   atoms,
		index:   b.index,
		class:   b.class,
	}, nil
}

func flat(n, r, c, v int) int32 {
	return int32((r*n+c)*n + v - 1)
}

func atomOf(n int, id int32) Atom {
	v := int(id)%n + 1
	cell := int(id) / n
	return Atom{Row: cell / n, Col: cell % n, Val: v}
}

type builder struct {
	n      int
	class  []Class
	index  []int32
	out    [][]int
	buf    []int
	family string
}

func (b *builder) exclude(id int32) {
	if b.class[id] != ForcedTrue {
		b.class[id] = ForcedFalse
	}
}

// addDef simplifies a definedness clause, a disjunction of positive
// literals over ids: a forced true atom satisfies the clause, a forced
// false atom drops out, free atoms keep their variables.
func (b *builder) addDef(ids []int32) error {
	b.buf = b.buf[:0]
	for _, id := range ids {
		switch b.class[id] {
		case ForcedTrue:
			return nil
		case ForcedFalse:
		default:
			b.buf = append(b.buf, int(b.index[id]))
		}
	}
	return b.emit(ids)
}

// addUniq simplifies a uniqueness clause, the disjunction of the two
// negated atoms: a forced false atom satisfies the clause, a forced true
// atom drops out, free atoms keep their negated variables.
func (b *builder) addUniq(x, y int32) error {
	b.buf = b.buf[:0]
	for _, id := range [2]int32{x, y} {
		switch b.class[id] {
		case ForcedFalse:
			return nil
		case ForcedTrue:
		default:
			b.buf = append(b.buf, -int(b.index[id]))
		}
	}
	pair := [2]int32{x, y}
	return b.emit(pair[:])
}

func (b *builder) emit(ids []int32) error {
	if len(b.buf) == 0 {
		ce := &ContradictionError{Family: b.family}
		for _, id := range ids {
			ce.Clause = append(ce.Clause, atomOf(b.n, id))
		}
		return ce
	}
	b.out = append(b.out, append([]int(nil), b.buf...))
	return nil
}
