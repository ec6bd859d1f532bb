// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

// Command sudokubench races the sat reduction against the backtracking
// search over board suites.
//  ⎣ ⇨ sudokubench
//  sudokubench <cmd> [options] arg arg ...
//  <cmd> may be
//  	run
//  	cmp
//  	suite
//  For help with a command, run sudokubench <cmd> -h.
//
//  ⎣ ⇨ sudokubench run -h
//  run [runoptions] [ puzzle [ puzzle ... ] ]
//  	run races the sat reduction and the backtracking search over
//  	boards and records a results table.
//    -btdur duration
//      	max search time per board (default 5m0s)
//    -csv string
//      	write the results table here (empty for none) (default "results.csv")
//    -engine string
//      	sat engine: gini, gophersat, or a solver binary name (default "gini")
//    -groups string
//      	comma separated groups to run (default all bundled groups)
//    -no-bt
//      	skip the search stage
//    -no-sat
//      	skip the sat stage
//    -prof
//      	write a cpu profile of the run
//    -satdur duration
//      	max sat time per board (default 5m0s)
//    -sum
//      	print the per group summary (default true)
//
//  ⎣ ⇨ sudokubench cmp -h
//  cmp [cmpoptions] [ puzzle [ puzzle ... ] ]
//  	cmp sizes the reduced encoding of each board against the
//  	naive one without solving anything.
//    -csv string
//      	also write the comparison table as csv here
//    -groups string
//      	comma separated groups to encode (default all bundled groups)
//
//  ⎣ ⇨ sudokubench suite -h
//  suite [suiteoptions]
//  	suite materializes the bundled boards as puzzle files.
//    -dir string
//      	write the bundled boards into this directory (default "boards")
package main
