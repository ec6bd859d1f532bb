// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package bench

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Ashwot-Acharya/Sudoku-SAT/cnf"
	"github.com/Ashwot-Acharya/Sudoku-SAT/sat"
)

// A Reduction compares one board's encoding size against the naive
// encoding of the same board.
type Reduction struct {
	Puzzle       string
	Vars         int
	NaiveVars    int
	Clauses      int
	NaiveClauses int
}

// VarPct is the share of naive variables eliminated, in percent.
func (rd Reduction) VarPct() float64 {
	return 100 * (1 - float64(rd.Vars)/float64(rd.NaiveVars))
}

// ClausePct is the share of naive clauses eliminated, in percent.
func (rd Reduction) ClausePct() float64 {
	return 100 * (1 - float64(rd.Clauses)/float64(rd.NaiveClauses))
}

// Reductions derives the encoding comparison for every row that was
// successfully encoded.
func Reductions(rows []Row) []Reduction {
	var out []Reduction
	for _, r := range rows {
		if r.CNFVars == 0 {
			continue
		}
		nv, nc := cnf.NaiveCounts(r.Size, r.Clues)
		out = append(out, Reduction{
			Puzzle:       r.Puzzle,
			Vars:         r.CNFVars,
			NaiveVars:    nv,
			Clauses:      r.CNFClauses,
			NaiveClauses: nc,
		})
	}
	return out
}

// WriteReductions renders the encoding comparison as a text table.
func WriteReductions(w io.Writer, rows []Row) error {
	if _, e := fmt.Fprintf(w, "%-28s %10s %10s %7s %10s %10s %7s\n",
		"puzzle", "vars", "naive", "save", "clauses", "naive", "save"); e != nil {
		return e
	}
	for _, rd := range Reductions(rows) {
		_, e := fmt.Fprintf(w, "%-28s %10d %10d %6.1f%% %10d %10d %6.1f%%\n",
			rd.Puzzle, rd.Vars, rd.NaiveVars, rd.VarPct(),
			rd.Clauses, rd.NaiveClauses, rd.ClausePct())
		if e != nil {
			return e
		}
	}
	return nil
}

// WriteReductionsCSV writes the encoding comparison as a csv table.
func WriteReductionsCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	header := []string{
		"puzzle", "vars", "naive_vars", "var_save_pct",
		"clauses", "naive_clauses", "clause_save_pct",
	}
	if e := cw.Write(header); e != nil {
		return e
	}
	for _, rd := range Reductions(rows) {
		rec := []string{
			rd.Puzzle,
			strconv.Itoa(rd.Vars),
			strconv.Itoa(rd.NaiveVars),
			strconv.FormatFloat(rd.VarPct(), 'f', 2, 64),
			strconv.Itoa(rd.Clauses),
			strconv.Itoa(rd.NaiveClauses),
			strconv.FormatFloat(rd.ClausePct(), 'f', 2, 64),
		}
		if e := cw.Write(rec); e != nil {
			return e
		}
	}
	cw.Flush()
	return cw.Error()
}

// A GroupSummary aggregates the rows of one board group.  Done counts
// boards whose stage reached a verdict.
type GroupSummary struct {
	Group      string
	Boards     int
	SATMean    time.Duration
	SATDone    int
	SATUnknown int
	BTMean     time.Duration
	BTDone     int
	BTTimeout  int
}

// Summarize folds rows into one summary per group, in first appearance
// order.  Means cover only the boards whose stage reached a verdict.
func Summarize(rows []Row) []GroupSummary {
	var order []string
	byGroup := map[string]*GroupSummary{}
	var satSum, btSum = map[string]time.Duration{}, map[string]time.Duration{}
	for _, r := range rows {
		gs, ok := byGroup[r.Group]
		if !ok {
			gs = &GroupSummary{Group: r.Group}
			byGroup[r.Group] = gs
			order = append(order, r.Group)
		}
		gs.Boards++
		switch r.SATStatus {
		case sat.StatusString(sat.Sat), sat.StatusString(sat.Unsat):
			gs.SATDone++
			satSum[r.Group] += r.SATTime
		case sat.StatusString(sat.Unknown):
			gs.SATUnknown++
		}
		switch r.BTStatus {
		case "SOLVED", "UNSOLVABLE":
			gs.BTDone++
			btSum[r.Group] += r.BTTime
		case "TIMEOUT":
			gs.BTTimeout++
		}
	}
	out := make([]GroupSummary, 0, len(order))
	for _, g := range order {
		gs := byGroup[g]
		if gs.SATDone > 0 {
			gs.SATMean = satSum[g] / time.Duration(gs.SATDone)
		}
		if gs.BTDone > 0 {
			gs.BTMean = btSum[g] / time.Duration(gs.BTDone)
		}
		out = append(out, *gs)
	}
	return out
}

// WriteSummary renders the per group aggregation as a text table.
func WriteSummary(w io.Writer, rows []Row) error {
	if _, e := fmt.Fprintf(w, "%-10s %7s %14s %5s %14s %7s %8s\n",
		"group", "boards", "sat mean", "unk", "search mean", "done", "timeout"); e != nil {
		return e
	}
	for _, gs := range Summarize(rows) {
		_, e := fmt.Fprintf(w, "%-10s %7d %14s %5d %14s %7d %8d\n",
			gs.Group, gs.Boards, gs.SATMean, gs.SATUnknown,
			gs.BTMean, gs.BTDone, gs.BTTimeout)
		if e != nil {
			return e
		}
	}
	return nil
}
