// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package main

var usage = `%s solves generalized sudoku boards.

It takes puzzle files as arguments, or - for stdin.  Files ending in
.gz or .bz2 are decompressed on the fly.  A puzzle file looks like

	SIZE 9
	PUZZLE
	0 0 0 0 0 0 0 1 0
	... eight more rows ...

Each board is solved with the selected method and the verdict is
printed on an s line, followed by the solved rows.  With -cnf, %s
instead writes the board's clause reduction in dimacs form and does
not solve.  With -decode, %s reads a sat solver's output back against
the variable map written by -cnf -map and prints the board it encodes.

%s takes the following flags.

`
