// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package sat

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/Ashwot-Acharya/Sudoku-SAT/cnf"
)

// Candidates lists dimacs solver binaries Find probes for, in order of
// preference.
var Candidates = []string{"satch", "minisat", "picosat", "glucose", "kissat"}

// Exec runs a dimacs solver binary on encodings written to a scratch
// directory.  The binary follows the usual conventions: exit code 10
// for satisfiable with the model on v lines, exit code 20 for
// unsatisfiable.  Minisat takes a result file argument instead and is
// handled specially.
type Exec struct {
	name string
	path string
}

var _ Solver = (*Exec)(nil)

// NewExec binds a solver binary by name, resolving it on PATH.
func NewExec(name string) (*Exec, error) {
	path, e := exec.LookPath(name)
	if e != nil {
		return nil, fmt.Errorf("solver %s: %w", name, e)
	}
	return &Exec{name: name, path: path}, nil
}

// Find returns the first installed candidate binary.
func Find() (*Exec, error) {
	for _, name := range Candidates {
		if x, e := NewExec(name); e == nil {
			return x, nil
		}
	}
	return nil, fmt.Errorf("%w: tried %s", ErrNoSolver, strings.Join(Candidates, ", "))
}

func (x *Exec) Name() string {
	return x.name
}

// Solve writes enc to a temporary dimacs file, runs the binary, and
// interprets exit code and output.  A deadline overrun reports status 0
// with a nil error.
func (x *Exec) Solve(enc *cnf.Encoding, budget time.Duration) (Result, error) {
	dir, e := os.MkdirTemp("", "sudokusat")
	if e != nil {
		return Result{}, e
	}
	defer os.RemoveAll(dir)
	cnfPath := filepath.Join(dir, "puzzle.cnf")
	f, e := os.Create(cnfPath)
	if e != nil {
		return Result{}, e
	}
	if e = cnf.WriteDIMACS(f, enc, ""); e != nil {
		f.Close()
		return Result{}, e
	}
	if e = f.Close(); e != nil {
		return Result{}, e
	}

	ctx := context.Background()
	if budget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, budget)
		defer cancel()
	}
	args := []string{cnfPath}
	outPath := ""
	if x.name == "minisat" {
		outPath = filepath.Join(dir, "puzzle.out")
		args = append(args, outPath)
	}
	cmd := exec.CommandContext(ctx, x.path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()
	dur := time.Since(start)
	if ctx.Err() == context.DeadlineExceeded {
		return Result{Status: Unknown, Dur: dur}, nil
	}

	res := Result{Dur: dur}
	switch code := exitCode(runErr); code {
	case 10:
		res.Status = Sat
	case 20:
		res.Status = Unsat
	default:
		res.Status = parseStatusText(stdout.String())
		if res.Status == Unknown && runErr != nil {
			return Result{}, fmt.Errorf("solver %s: %w: %s", x.name, runErr, firstLine(stderr.String()))
		}
	}
	if res.Status != Sat {
		return res, nil
	}
	if outPath != "" {
		data, e := os.ReadFile(outPath)
		if e != nil {
			return Result{}, fmt.Errorf("solver %s left no result file: %w", x.name, e)
		}
		st, model := parseMinisatOut(string(data))
		res.Status = st
		res.Model = model
		return res, nil
	}
	res.Model = parseVLines(stdout.String())
	return res, nil
}

func exitCode(e error) int {
	if e == nil {
		return 0
	}
	var xe *exec.ExitError
	if errors.As(e, &xe) {
		return xe.ExitCode()
	}
	return -1
}

// parseStatusText scans solver output for the verdict words.  The
// unsatisfiable check runs first since that word contains the other.
func parseStatusText(out string) int {
	switch {
	case strings.Contains(out, "UNSATISFIABLE"):
		return Unsat
	case strings.Contains(out, "SATISFIABLE"):
		return Sat
	default:
		return Unknown
	}
}

// parseVLines collects the model literals from v lines of solver
// output.  The list ends at the 0 terminator.
func parseVLines(out string) []int {
	vlines := lo.Filter(strings.Split(out, "\n"), func(ln string, _ int) bool {
		t := strings.TrimSpace(ln)
		return t == "v" || strings.HasPrefix(t, "v ")
	})
	var lits []int
	for _, ln := range vlines {
		for _, field := range strings.Fields(ln)[1:] {
			n, e := strconv.Atoi(field)
			if e != nil {
				continue
			}
			if n == 0 {
				return lits
			}
			lits = append(lits, n)
		}
	}
	return lits
}

// parseMinisatOut reads a minisat result file: a verdict line, then the
// model literals terminated by 0.
func parseMinisatOut(data string) (int, []int) {
	st := Unknown
	var lits []int
	for _, ln := range strings.Split(data, "\n") {
		ln = strings.TrimSpace(ln)
		switch {
		case ln == "":
			continue
		case ln == "SAT":
			st = Sat
		case ln == "UNSAT":
			st = Unsat
		case ln == "INDET":
			st = Unknown
		default:
			for _, field := range strings.Fields(ln) {
				n, e := strconv.Atoi(field)
				if e != nil || n == 0 {
					continue
				}
				lits = append(lits, n)
			}
		}
	}
	if st != Sat {
		lits = nil
	}
	return st, lits
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}

// ParseModel extracts model literals from arbitrary solver output: v
// lines when present, otherwise bare literal lines as in a minisat
// result file.  Verdict and comment lines are skipped.
func ParseModel(out string) []int {
	if lits := parseVLines(out); len(lits) > 0 {
		return lits
	}
	var lits []int
	for _, ln := range strings.Split(out, "\n") {
		ln = strings.TrimSpace(ln)
		if ln == "" || (ln[0] != '-' && (ln[0] < '0' || ln[0] > '9')) {
			continue
		}
		for _, field := range strings.Fields(ln) {
			n, e := strconv.Atoi(field)
			if e != nil {
				continue
			}
			if n == 0 {
				return lits
			}
			lits = append(lits, n)
		}
	}
	return lits
}
