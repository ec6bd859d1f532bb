// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package cnf

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Ashwot-Acharya/Sudoku-SAT/grid"
)

func mustEncode(t *testing.T, rows [][]int) *Encoding {
	t.Helper()
	g, e := grid.FromRows(rows)
	if e != nil {
		t.Fatal(e)
	}
	ps, e := grid.NewPeers(g.N)
	if e != nil {
		t.Fatal(e)
	}
	enc, e := Encode(g, ps)
	if e != nil {
		t.Fatal(e)
	}
	return enc
}

var singleClue4 = [][]int{
	{1, 0, 0, 0},
	{0, 0, 0, 0},
	{0, 0, 0, 0},
	{0, 0, 0, 0},
}

// a 17 clue board with a unique solution
var royle17 = [][]int{
	{0, 0, 0, 0, 0, 0, 0, 1, 0},
	{0, 0, 0, 0, 0, 2, 0, 0, 3},
	{0, 0, 0, 4, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 5, 0, 0},
	{4, 0, 1, 6, 0, 0, 0, 0, 0},
	{0, 0, 7, 1, 0, 0, 0, 0, 0},
	{0, 5, 0, 0, 0, 0, 2, 0, 0},
	{0, 0, 0, 0, 8, 0, 0, 4, 0},
	{0, 3, 0, 9, 1, 0, 0, 0, 0},
}

func TestPartitionSingleClue(t *testing.T) {
	enc := mustEncode(t, singleClue4)
	if enc.Vars != 53 {
		t.Errorf("vars = %d, want 53", enc.Vars)
	}
	if len(enc.Fixed) != 1 || enc.Fixed[0] != (Atom{0, 0, 1}) {
		t.Errorf("fixed = %v", enc.Fixed)
	}
	if cl := enc.ClassOf(Atom{0, 0, 1}); cl != ForcedTrue {
		t.Errorf("clue atom is %s", cl)
	}
	for v := 2; v <= 4; v++ {
		if cl := enc.ClassOf(Atom{0, 0, v}); cl != ForcedFalse {
			t.Errorf("same cell atom value %d is %s", v, cl)
		}
	}
	if cl := enc.ClassOf(Atom{0, 3, 1}); cl != ForcedFalse {
		t.Errorf("row peer atom is %s", cl)
	}
	if cl := enc.ClassOf(Atom{3, 0, 1}); cl != ForcedFalse {
		t.Errorf("column peer atom is %s", cl)
	}
	if cl := enc.ClassOf(Atom{1, 1, 1}); cl != ForcedFalse {
		t.Errorf("box peer atom is %s", cl)
	}
	if cl := enc.ClassOf(Atom{3, 3, 1}); cl != Free {
		t.Errorf("distant atom is %s", cl)
	}

	// exhaustive partition over the full atom space
	var nTrue, nFalse, nFree int
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			for v := 1; v <= 4; v++ {
				switch enc.ClassOf(Atom{r, c, v}) {
				case ForcedTrue:
					nTrue++
				case ForcedFalse:
					nFalse++
				case Free:
					nFree++
				}
			}
		}
	}
	if nTrue != 1 || nFalse != 10 || nFree != 53 {
		t.Errorf("partition %d/%d/%d, want 1/10/53", nTrue, nFalse, nFree)
	}
}

func TestVarAtomBijection(t *testing.T) {
	enc := mustEncode(t, singleClue4)
	for v := 1; v <= enc.Vars; v++ {
		a := enc.AtomOf(v)
		if enc.VarOf(a) != v {
			t.Fatalf("VarOf(AtomOf(%d)) = %d", v, enc.VarOf(a))
		}
		if enc.ClassOf(a) != Free {
			t.Fatalf("variable %d stands for non free atom %s", v, a)
		}
	}
	if enc.VarOf(Atom{0, 0, 1}) != 0 {
		t.Error("clue atom has a variable")
	}
	if enc.VarOf(Atom{0, 0, 2}) != 0 {
		t.Error("excluded atom has a variable")
	}
}

func TestBlankBoardMatchesNaive(t *testing.T) {
	for _, n := range []int{4, 9} {
		g, e := grid.New(n)
		if e != nil {
			t.Fatal(e)
		}
		ps, e := grid.NewPeers(n)
		if e != nil {
			t.Fatal(e)
		}
		enc, e := Encode(g, ps)
		if e != nil {
			t.Fatal(e)
		}
		nv, nc := NaiveCounts(n, 0)
		if enc.Vars != nv {
			t.Errorf("n=%d: vars %d, want %d", n, enc.Vars, nv)
		}
		if len(enc.Clauses) != nc {
			t.Errorf("n=%d: clauses %d, want %d", n, len(enc.Clauses), nc)
		}
	}
}

func TestReductionStrictlySmaller(t *testing.T) {
	enc := mustEncode(t, royle17)
	nv, nc := NaiveCounts(9, 17)
	if nv != 729 || nc != 12005 {
		t.Fatalf("naive counts (%d,%d), want (729,12005)", nv, nc)
	}
	if enc.Vars >= nv {
		t.Errorf("vars %d not below naive %d", enc.Vars, nv)
	}
	if len(enc.Clauses) >= nc {
		t.Errorf("clauses %d not below naive %d", len(enc.Clauses), nc)
	}

	one := mustEncode(t, singleClue4)
	if one.Vars >= 64 {
		t.Errorf("single clue 4x4 vars %d not below 64", one.Vars)
	}
}

func TestNaiveCounts(t *testing.T) {
	for _, tc := range []struct {
		n, clues, vars, clauses int
	}{
		{4, 0, 64, 448},
		{4, 1, 64, 449},
		{9, 0, 729, 11988},
		{9, 17, 729, 12005},
	} {
		v, c := NaiveCounts(tc.n, tc.clues)
		if v != tc.vars || c != tc.clauses {
			t.Errorf("NaiveCounts(%d,%d) = (%d,%d), want (%d,%d)",
				tc.n, tc.clues, v, c, tc.vars, tc.clauses)
		}
	}
}

func TestEncodeDeterministic(t *testing.T) {
	a := mustEncode(t, singleClue4)
	b := mustEncode(t, singleClue4)
	if !reflect.DeepEqual(a.Clauses, b.Clauses) {
		t.Error("clause lists differ between encodings of the same board")
	}
	if !reflect.DeepEqual(a.Map(), b.Map()) {
		t.Error("variable maps differ between encodings of the same board")
	}
}

func TestClauseOrderCanonical(t *testing.T) {
	g, e := grid.New(4)
	if e != nil {
		t.Fatal(e)
	}
	ps, e := grid.NewPeers(4)
	if e != nil {
		t.Fatal(e)
	}
	enc, e := Encode(g, ps)
	if e != nil {
		t.Fatal(e)
	}
	// blank board: first the 16 cell definedness clauses in row major
	// order, then the cell uniqueness pairs
	if !reflect.DeepEqual(enc.Clauses[0], []int{1, 2, 3, 4}) {
		t.Errorf("first clause %v", enc.Clauses[0])
	}
	if !reflect.DeepEqual(enc.Clauses[1], []int{5, 6, 7, 8}) {
		t.Errorf("second clause %v", enc.Clauses[1])
	}
	if !reflect.DeepEqual(enc.Clauses[16], []int{-1, -2}) {
		t.Errorf("first uniqueness clause %v", enc.Clauses[16])
	}
}

func TestContradictionOnConflictingClues(t *testing.T) {
	g, e := grid.FromRows([][]int{
		{1, 0, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	if e != nil {
		t.Fatal(e)
	}
	ps, e := grid.NewPeers(4)
	if e != nil {
		t.Fatal(e)
	}
	_, e = Encode(g, ps)
	if e == nil {
		t.Fatal("conflicting clues encoded without error")
	}
	var ce *ContradictionError
	if !errors.As(e, &ce) {
		t.Fatalf("error %T, want ContradictionError", e)
	}
	if ce.Family != "row uniqueness" {
		t.Errorf("family %q, want row uniqueness", ce.Family)
	}
	if len(ce.Clause) != 2 {
		t.Errorf("clause %v, want the two conflicting atoms", ce.Clause)
	}
}

func TestEncodeRejectsMismatch(t *testing.T) {
	g, e := grid.New(4)
	if e != nil {
		t.Fatal(e)
	}
	ps, e := grid.NewPeers(9)
	if e != nil {
		t.Fatal(e)
	}
	if _, e = Encode(g, ps); e == nil {
		t.Error("mismatched sizes accepted")
	}
}
