// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

// Package bench races the two solving methods over board suites.
//
// A run takes each board through three independent stages: clause
// encoding, a sat engine on the encoding, and the backtracking search
// on the raw board.  One stage failing never aborts the batch; the
// failure lands in the status column of that board's row and the run
// moves on.
package bench

import (
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Ashwot-Acharya/Sudoku-SAT/bt"
	"github.com/Ashwot-Acharya/Sudoku-SAT/cnf"
	"github.com/Ashwot-Acharya/Sudoku-SAT/gen"
	"github.com/Ashwot-Acharya/Sudoku-SAT/grid"
	"github.com/Ashwot-Acharya/Sudoku-SAT/sat"
)

// Default budgets, matching the usual benchmark setup of five minutes
// per board and method.
const (
	DefaultSATBudget = 5 * time.Minute
	DefaultBTBudget  = 5 * time.Minute
)

// statusSkipped marks a stage that was not run.
const statusSkipped = "skipped"

// Config controls a run.
type Config struct {
	// Instances to run; nil means the full bundled suite.
	Instances []gen.Instance
	// Engine for the sat stage; nil with RunSAT set selects gini.
	Engine sat.Solver
	RunSAT bool
	RunBT  bool
	// Budgets per board and stage; zero or negative means no limit.
	SATBudget time.Duration
	BTBudget  time.Duration
	// Log receives progress lines; nil silences them.
	Log *log.Logger
}

// Row is the outcome of one board, one line of the results table.
type Row struct {
	Group      string
	Size       int
	Puzzle     string
	Clues      int
	CNFVars    int
	CNFClauses int
	EncTime    time.Duration
	SATTime    time.Duration
	BTTime     time.Duration
	SATStatus  string
	BTStatus   string
}

// Report is a finished run.
type Report struct {
	ID      string
	Engine  string
	Started time.Time
	Dur     time.Duration
	Rows    []Row
}

// Run takes every configured board through the stages and returns the
// collected rows.  The returned error covers setup only; per board
// failures are reported in the rows.
func Run(cfg Config) (*Report, error) {
	logger := cfg.Log
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if cfg.RunSAT && cfg.Engine == nil {
		cfg.Engine = sat.Gini{}
	}
	insts := cfg.Instances
	if insts == nil {
		insts = gen.All()
	}
	rep := &Report{
		ID:      uuid.NewString(),
		Started: time.Now(),
	}
	if cfg.Engine != nil {
		rep.Engine = cfg.Engine.Name()
	}
	logger.Printf("run %s: %d boards", rep.ID, len(insts))
	for _, inst := range insts {
		row := runOne(cfg, inst, logger)
		rep.Rows = append(rep.Rows, row)
	}
	rep.Dur = time.Since(rep.Started)
	logger.Printf("run %s done in %s", rep.ID, rep.Dur)
	return rep, nil
}

func runOne(cfg Config, inst gen.Instance, logger *log.Logger) Row {
	row := Row{
		Group:     inst.Group,
		Size:      inst.Grid.N,
		Puzzle:    inst.Name,
		Clues:     inst.Grid.Clues(),
		SATStatus: statusSkipped,
		BTStatus:  statusSkipped,
	}
	logger.Printf("[%s] %s", inst.Group, inst.Name)

	ps, e := grid.NewPeers(inst.Grid.N)
	if e != nil {
		row.SATStatus = "error: " + e.Error()
		row.BTStatus = "error: " + e.Error()
		return row
	}

	start := time.Now()
	enc, encErr := cnf.Encode(inst.Grid, ps)
	row.EncTime = time.Since(start)
	if encErr != nil {
		logger.Printf("  encode: %v", encErr)
		row.SATStatus = "error: encode: " + encErr.Error()
	} else {
		row.CNFVars = enc.Vars
		row.CNFClauses = len(enc.Clauses)
		logger.Printf("  encode: %d vars %d clauses in %s", enc.Vars, len(enc.Clauses), row.EncTime)
	}

	if cfg.RunSAT && encErr == nil {
		row.SATTime, row.SATStatus = runSAT(cfg.Engine, enc, cfg.SATBudget)
		logger.Printf("  %s: %s in %s", cfg.Engine.Name(), row.SATStatus, row.SATTime)
	}

	if cfg.RunBT {
		row.BTTime, row.BTStatus = runBT(inst.Grid, ps, cfg.BTBudget)
		logger.Printf("  search: %s in %s", row.BTStatus, row.BTTime)
	}
	return row
}

// runSAT solves the encoding and checks the model before trusting the
// verdict.
func runSAT(engine sat.Solver, enc *cnf.Encoding, budget time.Duration) (time.Duration, string) {
	res, e := engine.Solve(enc, budget)
	if e != nil {
		return res.Dur, "error: " + e.Error()
	}
	if res.Status == sat.Sat {
		if _, e := enc.Map().Decode(res.Model); e != nil {
			return res.Dur, "error: model: " + e.Error()
		}
	}
	return res.Dur, sat.StatusString(res.Status)
}

// runBT solves a copy of the board so the instance stays reusable.
func runBT(g *grid.Grid, ps *grid.Peers, budget time.Duration) (time.Duration, string) {
	work := g.Clone()
	s, e := bt.New(work, ps)
	if e != nil {
		return 0, "error: " + e.Error()
	}
	var st bt.Status
	if budget > 0 {
		st = s.Try(budget)
	} else {
		st = s.Solve()
	}
	stats := s.Stats()
	if st == bt.Solved && !work.Solved() {
		return stats.Dur, "error: search reported a solution on an unsolved board"
	}
	return stats.Dur, st.String()
}
