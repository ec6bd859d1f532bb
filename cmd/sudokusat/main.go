// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package main

import (
	"compress/bzip2"
	"compress/gzip"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	sudokusat "github.com/Ashwot-Acharya/Sudoku-SAT"
	"github.com/Ashwot-Acharya/Sudoku-SAT/bt"
	"github.com/Ashwot-Acharya/Sudoku-SAT/cnf"
	"github.com/Ashwot-Acharya/Sudoku-SAT/grid"
	"github.com/Ashwot-Acharya/Sudoku-SAT/sat"
)

var engineName = flag.String("engine", "gini", "sat engine: gini, gophersat, or a solver binary name")
var method = flag.String("method", "sat", "solving method, sat or search")
var timeout = flag.Duration("to", 5*time.Minute, "timeout per board (0 for none)")
var model = flag.Bool("model", false, "output the model on v lines (sat method, default false)")
var satcomp = flag.Bool("satcomp", false, "if true, exit 10 sat, 0 unknown, 20 unsat (default false)")
var cnfPath = flag.String("cnf", "", "write the clause reduction in dimacs form here (- for stdout) instead of solving")
var mapPath = flag.String("map", "", "variable map sidecar: written with -cnf, read with -decode")
var decodePath = flag.String("decode", "", "decode a solver output file against -map and print the board")
var outDir = flag.String("out", "", "write a solution artifact per board into this directory")

func path2Reader(p string) (io.Reader, error) {
	if p == "-" {
		return os.Stdin, nil
	}
	f, e := os.Open(p)
	if e != nil {
		return nil, e
	}
	if strings.HasSuffix(p, ".gz") {
		r, e := gzip.NewReader(f)
		if e != nil {
			return nil, e
		}
		return r, nil
	}
	if strings.HasSuffix(p, ".bz2") {
		return bzip2.NewReader(f), nil
	}
	return f, nil
}

// stem strips directory, compression suffix, and extension.
func stem(p string) string {
	_, p = filepath.Split(p)
	for _, suf := range []string{".gz", ".bz2"} {
		p = strings.TrimSuffix(p, suf)
	}
	return strings.TrimSuffix(p, filepath.Ext(p))
}

func handleResultOutput(res int) {
	switch {
	case res == 1:
		fmt.Printf("s SATISFIABLE\n")
	case res == -1:
		fmt.Printf("s UNSATISFIABLE\n")
	default:
		fmt.Printf("s UNKNOWN\n")
	}
}

func handleExit(res int) {
	if !*satcomp {
		return
	}
	if res == 1 {
		os.Exit(10)
	}
	if res == -1 {
		os.Exit(20)
	}
	os.Exit(0)
}

func outputModel(lits []int) {
	col := 1
	fmt.Printf("v")
	for _, l := range lits {
		n := 2
		for j := l; j != 0; j = j / 10 {
			n++
		}
		if l < 0 {
			n++
		}
		if col+n > 78 {
			fmt.Printf("\nv")
			col = 1
		}
		fmt.Printf(" %d", l)
		col += n
	}
	fmt.Printf(" 0\n")
}

func writeArtifact(name string, sol *grid.Grid, n int, method, status string, d time.Duration) {
	if *outDir == "" {
		return
	}
	if e := os.MkdirAll(*outDir, 0755); e != nil {
		log.Println(e)
		return
	}
	p := filepath.Join(*outDir, stem(name)+"_solution.txt")
	f, e := os.Create(p)
	if e != nil {
		log.Println(e)
		return
	}
	if e := grid.WriteSolution(f, sol, n, method, status, d); e != nil {
		log.Println(e)
	}
	if e := f.Close(); e != nil {
		log.Println(e)
	}
	log.Printf("solution -> %s", p)
}

// runCNF writes the reduction instead of solving.
func runCNF(name string, g *grid.Grid) error {
	enc, e := sudokusat.Encode(g)
	if e != nil {
		return e
	}
	w := os.Stdout
	if *cnfPath != "-" {
		f, e := os.Create(*cnfPath)
		if e != nil {
			return e
		}
		defer f.Close()
		w = f
	}
	if e := cnf.WriteDIMACS(w, enc, name); e != nil {
		return e
	}
	log.Printf("%s: %d vars %d clauses", name, enc.Vars, len(enc.Clauses))
	if *mapPath == "" {
		return nil
	}
	mf, e := os.Create(*mapPath)
	if e != nil {
		return e
	}
	defer mf.Close()
	return cnf.WriteMap(mf, enc.Map())
}

// runDecode reads solver output and the -map sidecar and prints the
// board the model encodes.
func runDecode() (int, error) {
	if *mapPath == "" {
		return 0, fmt.Errorf("-decode needs -map")
	}
	mf, e := os.Open(*mapPath)
	if e != nil {
		return 0, e
	}
	defer mf.Close()
	m, e := cnf.ReadMap(mf)
	if e != nil {
		return 0, e
	}
	r, e := path2Reader(*decodePath)
	if e != nil {
		return 0, e
	}
	out, e := io.ReadAll(r)
	if e != nil {
		return 0, e
	}
	lits := sat.ParseModel(string(out))
	if len(lits) == 0 {
		return -1, fmt.Errorf("no model in %s", *decodePath)
	}
	g, e := m.Decode(lits)
	if e != nil {
		return 0, e
	}
	handleResultOutput(1)
	fmt.Print(g)
	return 1, nil
}

func solveSearch(name string, g *grid.Grid) (int, error) {
	sol, st, stats, e := sudokusat.Solve(g, *timeout)
	if e != nil {
		return 0, e
	}
	res := int(st)
	handleResultOutput(res)
	log.Printf("%s: %s after %d nodes in %s", name, st, stats.Nodes, stats.Dur)
	if st == bt.Solved {
		fmt.Print(sol)
	}
	writeArtifact(name, sol, g.N, sudokusat.MethodSearch, st.String(), stats.Dur)
	return res, nil
}

func solveSAT(name string, g *grid.Grid, engine sat.Solver) (int, error) {
	sol, res, e := sudokusat.SolveSAT(g, engine, *timeout)
	if e != nil {
		return 0, e
	}
	handleResultOutput(res.Status)
	log.Printf("%s: %s on %s in %s", name, sat.StatusString(res.Status), engine.Name(), res.Dur)
	if res.Status == sat.Sat {
		fmt.Print(sol)
		if *model {
			outputModel(res.Model)
		}
	}
	// artifact status words describe the puzzle, not the formula
	status := "TIMEOUT"
	switch res.Status {
	case sat.Sat:
		status = "SOLVED"
	case sat.Unsat:
		status = "UNSOLVABLE"
	}
	writeArtifact(name, sol, g.N, sudokusat.MethodSAT, status, res.Dur)
	return res.Status, nil
}

func main() {
	flag.Usage = func() {
		p := os.Args[0]
		_, p = filepath.Split(p)
		fmt.Fprintf(os.Stderr, usage, p, p, p, p)
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr)
	}
	log.SetPrefix("c [sudokusat] ")
	log.SetFlags(0)
	flag.Parse()

	if *decodePath != "" {
		res, e := runDecode()
		if e != nil {
			log.Println(e)
			os.Exit(1)
		}
		handleExit(res)
		return
	}
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}
	if *satcomp && flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "can't use -satcomp with more than one input.\n")
		os.Exit(1)
	}
	if *cnfPath != "" && flag.NArg() > 1 {
		fmt.Fprintf(os.Stderr, "can't use -cnf with more than one input.\n")
		os.Exit(1)
	}

	var engine sat.Solver
	if *method == "sat" {
		var e error
		engine, e = sat.New(*engineName)
		if e != nil {
			log.Println(e)
			os.Exit(1)
		}
	} else if *method != "search" {
		fmt.Fprintf(os.Stderr, "unknown method %q, want sat or search.\n", *method)
		os.Exit(1)
	}

	res := 0
	for i := 0; i < flag.NArg(); i++ {
		name := flag.Arg(i)
		r, e := path2Reader(name)
		if e != nil {
			log.Println(e)
			continue
		}
		g, e := grid.Read(r)
		if e != nil {
			log.Printf("%s: %s", name, e)
			continue
		}
		if *cnfPath != "" {
			if e := runCNF(name, g); e != nil {
				log.Println(e)
				os.Exit(1)
			}
			continue
		}
		if *method == "search" {
			res, e = solveSearch(name, g)
		} else {
			res, e = solveSAT(name, g, engine)
		}
		if e != nil {
			log.Printf("%s: %s", name, e)
		}
	}
	handleExit(res)
}
