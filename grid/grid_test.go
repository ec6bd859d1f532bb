// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package grid

import (
	"errors"
	"testing"
)

func TestBoxOf(t *testing.T) {
	for _, tc := range []struct {
		n, box int
	}{{1, 1}, {4, 2}, {9, 3}, {16, 4}, {25, 5}, {36, 6}, {49, 7}} {
		b, e := BoxOf(tc.n)
		if e != nil {
			t.Errorf("BoxOf(%d): %s", tc.n, e)
			continue
		}
		if b != tc.box {
			t.Errorf("BoxOf(%d) = %d, want %d", tc.n, b, tc.box)
		}
	}
	for _, n := range []int{-9, 0, 2, 3, 5, 7, 12, 15, 24, 35} {
		if _, e := BoxOf(n); e == nil {
			t.Errorf("BoxOf(%d): no error", n)
		} else {
			var ise InvalidSizeError
			if !errors.As(e, &ise) {
				t.Errorf("BoxOf(%d): error %T, want InvalidSizeError", n, e)
			}
		}
	}
}

func TestNewRejectsBadSize(t *testing.T) {
	if _, e := New(7); e == nil {
		t.Error("New(7): no error")
	}
	g, e := New(9)
	if e != nil {
		t.Fatal(e)
	}
	if g.N != 9 || g.Box != 3 || len(g.Cells) != 81 {
		t.Errorf("New(9) = %d/%d/%d cells", g.N, g.Box, len(g.Cells))
	}
	if g.Clues() != 0 || g.Full() {
		t.Error("fresh grid not empty")
	}
}

func TestFromRows(t *testing.T) {
	g, e := FromRows([][]int{
		{1, 0, 0, 4},
		{0, 4, 0, 0},
		{0, 0, 4, 0},
		{4, 0, 0, 1},
	})
	if e != nil {
		t.Fatal(e)
	}
	if g.At(0, 0) != 1 || g.At(0, 3) != 4 || g.At(3, 3) != 1 {
		t.Error("cells misplaced")
	}
	if g.Clues() != 6 {
		t.Errorf("clues = %d, want 6", g.Clues())
	}
	if !g.Valid() {
		t.Error("conflict free grid reported invalid")
	}

	if _, e := FromRows([][]int{{1, 2}, {3, 4}, {1, 2}}); e == nil {
		t.Error("3 rows: no error")
	}
	if _, e := FromRows([][]int{{1, 0, 0, 5}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}); e == nil {
		t.Error("value 5 on a 4x4: no error")
	}
}

func TestValidConflicts(t *testing.T) {
	rowDup := [][]int{
		{1, 0, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	colDup := [][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{2, 0, 0, 0},
	}
	boxDup := [][]int{
		{3, 0, 0, 0},
		{0, 3, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	for i, rows := range [][][]int{rowDup, colDup, boxDup} {
		g, e := FromRows(rows)
		if e != nil {
			t.Fatal(e)
		}
		if g.Valid() {
			t.Errorf("case %d: conflicting grid reported valid", i)
		}
	}
}

func TestCloneIndependent(t *testing.T) {
	g, _ := New(4)
	g.Set(0, 0, 3)
	cp := g.Clone()
	cp.Set(0, 0, 4)
	if g.At(0, 0) != 3 {
		t.Error("clone shares cells with original")
	}
}

func TestSolved(t *testing.T) {
	g, e := FromRows([][]int{
		{1, 2, 3, 4},
		{3, 4, 1, 2},
		{2, 1, 4, 3},
		{4, 3, 2, 1},
	})
	if e != nil {
		t.Fatal(e)
	}
	if !g.Solved() {
		t.Error("complete grid not solved")
	}
	g.Set(0, 0, 0)
	if g.Solved() {
		t.Error("grid with a hole reported solved")
	}
}
