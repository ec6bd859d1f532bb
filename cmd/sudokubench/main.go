// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/profile"

	"github.com/Ashwot-Acharya/Sudoku-SAT/bench"
	"github.com/Ashwot-Acharya/Sudoku-SAT/gen"
	"github.com/Ashwot-Acharya/Sudoku-SAT/grid"
	"github.com/Ashwot-Acharya/Sudoku-SAT/sat"
)

var runFlags = flag.NewFlagSet("run", flag.ExitOnError)

type runOptsT struct {
	Groups *string
	Engine *string
	SATDur *time.Duration
	BTDur  *time.Duration
	NoSAT  *bool
	NoBT   *bool
	CSV    *string
	Sum    *bool
	Prof   *bool
}

var runOpts = &runOptsT{
	Groups: runFlags.String("groups", "", "comma separated groups to run (default all bundled groups)"),
	Engine: runFlags.String("engine", "gini", "sat engine: gini, gophersat, or a solver binary name"),
	SATDur: runFlags.Duration("satdur", bench.DefaultSATBudget, "max sat time per board"),
	BTDur:  runFlags.Duration("btdur", bench.DefaultBTBudget, "max search time per board"),
	NoSAT:  runFlags.Bool("no-sat", false, "skip the sat stage"),
	NoBT:   runFlags.Bool("no-bt", false, "skip the search stage"),
	CSV:    runFlags.String("csv", "results.csv", "write the results table here (empty for none)"),
	Sum:    runFlags.Bool("sum", true, "print the per group summary"),
	Prof:   runFlags.Bool("prof", false, "write a cpu profile of the run"),
}

func (r *runOptsT) Run(flags *flag.FlagSet) {
	if *r.Prof {
		defer profile.Start(profile.ProfilePath(".")).Stop()
	}
	insts, e := instances(*r.Groups, flags.Args())
	if e != nil {
		log.Println(e)
		os.Exit(1)
	}
	cfg := bench.Config{
		Instances: insts,
		RunSAT:    !*r.NoSAT,
		RunBT:     !*r.NoBT,
		SATBudget: *r.SATDur,
		BTBudget:  *r.BTDur,
		Log:       log.Default(),
	}
	if cfg.RunSAT {
		if cfg.Engine, e = sat.New(*r.Engine); e != nil {
			log.Println(e)
			os.Exit(1)
		}
	}
	rep, e := bench.Run(cfg)
	if e != nil {
		log.Println(e)
		os.Exit(1)
	}
	if *r.CSV != "" {
		if e := bench.WriteCSVFile(*r.CSV, rep.Rows); e != nil {
			log.Println(e)
			os.Exit(1)
		}
		log.Printf("results -> %s", *r.CSV)
	}
	if *r.Sum {
		fmt.Println()
		if e := bench.WriteSummary(os.Stdout, rep.Rows); e != nil {
			log.Println(e)
		}
	}
}

var cmpFlags = flag.NewFlagSet("cmp", flag.ExitOnError)

type cmpOptsT struct {
	Groups *string
	CSV    *string
}

var cmpOpts = &cmpOptsT{
	Groups: cmpFlags.String("groups", "", "comma separated groups to encode (default all bundled groups)"),
	CSV:    cmpFlags.String("csv", "", "also write the comparison table as csv here"),
}

func (c *cmpOptsT) Run(flags *flag.FlagSet) {
	insts, e := instances(*c.Groups, flags.Args())
	if e != nil {
		log.Println(e)
		os.Exit(1)
	}
	rep, e := bench.Run(bench.Config{Instances: insts})
	if e != nil {
		log.Println(e)
		os.Exit(1)
	}
	if e := bench.WriteReductions(os.Stdout, rep.Rows); e != nil {
		log.Println(e)
		os.Exit(1)
	}
	if *c.CSV == "" {
		return
	}
	f, e := os.Create(*c.CSV)
	if e != nil {
		log.Println(e)
		os.Exit(1)
	}
	if e := bench.WriteReductionsCSV(f, rep.Rows); e != nil {
		f.Close()
		log.Println(e)
		os.Exit(1)
	}
	if e := f.Close(); e != nil {
		log.Println(e)
		os.Exit(1)
	}
	log.Printf("comparison -> %s", *c.CSV)
}

var suiteFlags = flag.NewFlagSet("suite", flag.ExitOnError)

type suiteOptsT struct {
	Dir *string
}

var suiteOpts = &suiteOptsT{
	Dir: suiteFlags.String("dir", "boards", "write the bundled boards into this directory"),
}

func (s *suiteOptsT) Run(flags *flag.FlagSet) {
	paths, e := gen.WriteSuite(*s.Dir)
	if e != nil {
		log.Println(e)
		os.Exit(1)
	}
	log.Printf("wrote %d boards to %s", len(paths), *s.Dir)
}

// instances resolves the boards of one invocation: puzzle files when
// given as arguments, otherwise the named bundled groups, otherwise the
// whole bundled suite.
func instances(groups string, args []string) ([]gen.Instance, error) {
	if len(args) > 0 {
		insts := make([]gen.Instance, 0, len(args))
		for _, p := range args {
			g, e := grid.ReadFile(p)
			if e != nil {
				return nil, e
			}
			name := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
			insts = append(insts, gen.Instance{
				Group: fmt.Sprintf("%dx%d", g.N, g.N),
				Name:  name,
				Grid:  g,
			})
		}
		return insts, nil
	}
	if groups == "" {
		return gen.All(), nil
	}
	var insts []gen.Instance
	for _, name := range strings.Split(groups, ",") {
		gi, e := gen.ByGroup(strings.TrimSpace(name))
		if e != nil {
			return nil, e
		}
		insts = append(insts, gi...)
	}
	return insts, nil
}

func main() {
	log.SetPrefix("c [sudokubench] ")
	log.SetFlags(0)
	runFlags.Usage = func() {
		fmt.Fprintf(os.Stderr, "run [runoptions] [ puzzle [ puzzle ... ] ]\n")
		fmt.Fprintf(os.Stderr, "\trun races the sat reduction and the backtracking search over\n")
		fmt.Fprintf(os.Stderr, "\tboards and records a results table.\n")
		runFlags.PrintDefaults()
	}
	cmpFlags.Usage = func() {
		fmt.Fprintf(os.Stderr, "cmp [cmpoptions] [ puzzle [ puzzle ... ] ]\n")
		fmt.Fprintf(os.Stderr, "\tcmp sizes the reduced encoding of each board against the\n")
		fmt.Fprintf(os.Stderr, "\tnaive one without solving anything.\n")
		cmpFlags.PrintDefaults()
	}
	suiteFlags.Usage = func() {
		fmt.Fprintf(os.Stderr, "suite [suiteoptions]\n")
		fmt.Fprintf(os.Stderr, "\tsuite materializes the bundled boards as puzzle files.\n")
		suiteFlags.PrintDefaults()
	}
	flag.Usage = func() {
		p := filepath.Base(os.Args[0])
		fmt.Fprintf(os.Stderr, "%s <cmd> [options] arg arg ...\n", p)
		fmt.Fprintf(os.Stderr, "<cmd> may be\n\trun\n\tcmp\n\tsuite\n")
		fmt.Fprintf(os.Stderr, "For help with a command, run %s <cmd> -h.\n", p)
		flag.PrintDefaults()
	}
	flag.Parse()
	if len(os.Args) == 1 {
		flag.Usage()
		os.Exit(1)
	}
	switch os.Args[1] {
	case "run":
		runFlags.Parse(os.Args[2:])
		runOpts.Run(runFlags)
	case "cmp":
		cmpFlags.Parse(os.Args[2:])
		cmpOpts.Run(cmpFlags)
	case "suite":
		suiteFlags.Parse(os.Args[2:])
		suiteOpts.Run(suiteFlags)
	default:
		flag.Usage()
		os.Exit(1)
	}
}
