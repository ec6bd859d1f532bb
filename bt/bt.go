// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

// Package bt implements the backtracking strategy: depth first search over
// cell assignments with minimum remaining values selection, a maximum
// degree tie break, and forward checking with exact undo.
package bt

import (
	"fmt"
	"math/bits"
	"sync/atomic"
	"time"

	"github.com/Ashwot-Acharya/Sudoku-SAT/grid"
)

// Status is a three valued solve result.
//
//	1  the grid was completed
//	0  the time budget expired, outcome indeterminate
//	-1 the search space is exhausted, the grid has no solution
type Status int

const (
	Unsolvable Status = -1
	Timeout    Status = 0
	Solved     Status = 1
)

func (st Status) String() string {
	switch st {
	case Unsolvable:
		return "UNSOLVABLE"
	case Timeout:
		return "TIMEOUT"
	case Solved:
		return "SOLVED"
	}
	return fmt.Sprintf("Status(%d)", int(st))
}

// Stats describes a finished search.
type Stats struct {
	Nodes   int64
	Dur     time.Duration
	Wipeout int // cell whose initial domain was empty, -1 when none
}

// S searches one grid.  The grid is held by reference and owned by the
// solver while a solve call runs: on Solved it holds the full assignment,
// on any other outcome every mutation has been undone and the initial
// cells are intact.
//
// S assumes the clues themselves are conflict free; see grid.Valid.
type S struct {
	g     *grid.Grid
	peers *grid.Peers
	full  uint64
	dom   []uint64
	pend  []bool
	npend int
	trail []int
	nodes int64
	wipe  int
	dur   time.Duration
	stop  atomic.Bool
}

// New builds a solver for g over the peer relation ps.  Domains are
// computed here, so a clue set that empties some cell's domain is known
// before any search runs and Solve returns Unsolvable without expanding a
// node.  Each domain lives in one word, which bounds the side at 64.
func New(g *grid.Grid, ps *grid.Peers) (*S, error) {
	if ps.N != g.N {
		return nil, fmt.Errorf("peer relation is for size %d, grid is %d", ps.N, g.N)
	}
	if g.N > 64 {
		return nil, fmt.Errorf("size %d: exceeds the one word domain limit of 64", g.N)
	}
	s := &S{
		g:     g,
		peers: ps,
		full:  ^uint64(0) >> (64 - uint(g.N)),
		dom:   make([]uint64, g.N*g.N),
		pend:  make([]bool, g.N*g.N),
		wipe:  -1,
	}
	for i, v := range g.Cells {
		if v != 0 {
			continue
		}
		d := s.full
		for _, q := range ps.Of(i) {
			if w := g.Cells[q]; w != 0 {
				d &^= 1 << uint(w-1)
			}
		}
		s.dom[i] = d
		s.pend[i] = true
		s.npend++
		if d == 0 && s.wipe < 0 {
			s.wipe = i
		}
	}
	return s, nil
}

// Solve searches without a budget.
func (s *S) Solve() Status {
	s.stop.Store(false)
	return s.run()
}

// Try searches under the budget d.  A non positive d trips the budget
// before the first node is expanded, so the result is Timeout unless the
// grid was already complete.
func (s *S) Try(d time.Duration) Status {
	if d <= 0 {
		s.stop.Store(true)
		return s.run()
	}
	s.stop.Store(false)
	t := time.AfterFunc(d, func() { s.stop.Store(true) })
	defer t.Stop()
	return s.run()
}

// Stats returns counters from the last solve call.
func (s *S) Stats() Stats {
	return Stats{Nodes: s.nodes, Dur: s.dur, Wipeout: s.wipe}
}

func (s *S) run() Status {
	t0 := time.Now()
	st := s.solve()
	s.dur = time.Since(t0)
	return st
}

func (s *S) solve() Status {
	if s.wipe >= 0 {
		return Unsolvable
	}
	return s.search()
}

func (s *S) search() Status {
	if s.npend == 0 {
		return Solved
	}
	if s.stop.Load() {
		return Timeout
	}
	s.nodes++
	cell := s.selectCell()
	cand := s.dom[cell]
	s.pend[cell] = false
	s.npend--
	for v := 1; v <= s.g.N; v++ {
		bit := uint64(1) << uint(v-1)
		if cand&bit == 0 {
			continue
		}
		s.g.Cells[cell] = v
		ok, mark := s.assign(cell, bit)
		if ok {
			switch st := s.search(); st {
			case Solved:
				return Solved
			case Timeout:
				s.undo(mark, bit)
				s.g.Cells[cell] = 0
				s.pend[cell] = true
				s.npend++
				return Timeout
			}
		}
		s.undo(mark, bit)
		s.g.Cells[cell] = 0
	}
	s.pend[cell] = true
	s.npend++
	return Unsolvable
}

// selectCell picks the pending cell with the fewest candidates, preferring
// higher degree on ties and the lowest cell index after that.  The choice
// is a pure function of the domains and the peer relation.
func (s *S) selectCell() int {
	best, bestCnt, bestDeg := -1, 0, 0
	for i, p := range s.pend {
		if !p {
			continue
		}
		cnt := bits.OnesCount64(s.dom[i])
		if best < 0 || cnt < bestCnt {
			best, bestCnt, bestDeg = i, cnt, s.peers.Degree(i)
			continue
		}
		if cnt == bestCnt {
			if d := s.peers.Degree(i); d > bestDeg {
				best, bestCnt, bestDeg = i, cnt, d
			}
		}
	}
	return best
}

// assign prunes the tried value from the domains of cell's pending peers,
// pushing each pruned cell on the trail.  It reports failure as soon as a
// peer's domain empties.  The caller undoes to mark on either outcome.
func (s *S) assign(cell int, bit uint64) (ok bool, mark int) {
	mark = len(s.trail)
	for _, q := range s.peers.Of(cell) {
		if !s.pend[q] || s.dom[q]&bit == 0 {
			continue
		}
		s.dom[q] &^= bit
		s.trail = append(s.trail, q)
		if s.dom[q] == 0 {
			return false, mark
		}
	}
	return true, mark
}

// undo restores the value bit to every cell pruned since mark and
// truncates the trail.  All prunes of one attempt removed the same value,
// so restoration is exact.
func (s *S) undo(mark int, bit uint64) {
	for i := len(s.trail) - 1; i >= mark; i-- {
		s.dom[s.trail[i]] |= bit
	}
	s.trail = s.trail[:mark]
}
