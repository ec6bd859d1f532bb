// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package bt

import (
	"testing"
	"time"

	"github.com/Ashwot-Acharya/Sudoku-SAT/grid"
)

func TestGoSolveWait(t *testing.T) {
	g, ps := mustGrid(t, royle1)
	s, e := New(g, ps)
	if e != nil {
		t.Fatal(e)
	}
	c := s.GoSolve()
	if st := c.Wait(); st != Solved {
		t.Fatalf("status %s, want SOLVED", st)
	}
	if !g.Solved() {
		t.Error("grid not a solution after Wait")
	}
	// the handle keeps its result
	if st, done := c.Test(); !done || st != Solved {
		t.Errorf("Test after Wait = %s, %v", st, done)
	}
}

func TestGoSolveTestPolling(t *testing.T) {
	g, ps := mustGrid(t, royle1)
	s, e := New(g, ps)
	if e != nil {
		t.Fatal(e)
	}
	c := s.GoSolve()
	tick := time.NewTicker(time.Millisecond)
	defer tick.Stop()
	deadline := time.After(time.Minute)
	for {
		select {
		case <-tick.C:
			if st, done := c.Test(); done {
				if st != Solved {
					t.Fatalf("status %s, want SOLVED", st)
				}
				return
			}
		case <-deadline:
			t.Fatal("search did not finish within a minute")
		}
	}
}

func TestGoSolveStop(t *testing.T) {
	// a blank 49x49 cannot finish before Stop lands
	g, e := grid.New(49)
	if e != nil {
		t.Fatal(e)
	}
	ps, e := grid.NewPeers(49)
	if e != nil {
		t.Fatal(e)
	}
	s, e := New(g, ps)
	if e != nil {
		t.Fatal(e)
	}
	c := s.GoSolve()
	if st := c.Stop(); st != Timeout {
		t.Fatalf("status %s, want TIMEOUT", st)
	}
	for i, v := range g.Cells {
		if v != 0 {
			t.Fatalf("cell %d left as %d after cancellation", i, v)
		}
	}
}

func TestGoSolveTryExpires(t *testing.T) {
	g, e := grid.New(49)
	if e != nil {
		t.Fatal(e)
	}
	ps, e := grid.NewPeers(49)
	if e != nil {
		t.Fatal(e)
	}
	s, e := New(g, ps)
	if e != nil {
		t.Fatal(e)
	}
	c := s.GoSolve()
	if st := c.Try(0); st != Timeout {
		t.Fatalf("status %s, want TIMEOUT", st)
	}
}
