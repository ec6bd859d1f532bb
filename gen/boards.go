// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package gen

import "github.com/Ashwot-Acharya/Sudoku-SAT/grid"

// seventeenClueBoards are five boards from Gordon Royle's minimal
// sudoku collection.  Each has exactly 17 clues and a unique solution.
func seventeenClueBoards() []*grid.Grid {
	return []*grid.Grid{
		mustRows([][]int{
			{0, 0, 0, 0, 0, 0, 0, 1, 0},
			{0, 0, 0, 0, 0, 2, 0, 0, 3},
			{0, 0, 0, 4, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 5, 0, 0},
			{4, 0, 1, 6, 0, 0, 0, 0, 0},
			{0, 0, 7, 1, 0, 0, 0, 0, 0},
			{0, 5, 0, 0, 0, 0, 2, 0, 0},
			{0, 0, 0, 0, 8, 0, 0, 4, 0},
			{0, 3, 0, 9, 1, 0, 0, 0, 0},
		}),
		mustRows([][]int{
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 3, 0, 8, 5},
			{0, 0, 1, 0, 2, 0, 0, 0, 0},
			{0, 0, 0, 5, 0, 7, 0, 0, 0},
			{0, 0, 4, 0, 0, 0, 1, 0, 0},
			{0, 9, 0, 0, 0, 0, 0, 0, 0},
			{5, 0, 0, 0, 0, 0, 0, 7, 3},
			{0, 0, 2, 0, 1, 0, 0, 0, 0},
			{0, 0, 0, 0, 4, 0, 0, 0, 9},
		}),
		mustRows([][]int{
			{0, 0, 0, 0, 0, 6, 0, 0, 0},
			{0, 5, 9, 0, 0, 0, 0, 0, 8},
			{2, 0, 0, 0, 0, 8, 0, 0, 0},
			{0, 4, 5, 0, 0, 0, 0, 0, 0},
			{0, 0, 3, 0, 0, 0, 0, 0, 0},
			{0, 0, 6, 0, 0, 3, 0, 5, 4},
			{0, 0, 0, 3, 2, 5, 0, 0, 6},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
		}),
		mustRows([][]int{
			{0, 2, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 6, 0, 0, 0, 0, 3},
			{0, 7, 4, 0, 8, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 3, 0, 0, 2},
			{0, 8, 0, 0, 4, 0, 0, 1, 0},
			{6, 0, 0, 5, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 7, 8, 0},
			{5, 0, 0, 0, 0, 9, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
		}),
		mustRows([][]int{
			{0, 0, 5, 3, 0, 0, 0, 0, 0},
			{8, 0, 0, 0, 0, 0, 0, 2, 0},
			{0, 7, 0, 0, 1, 0, 5, 0, 0},
			{4, 0, 0, 0, 0, 5, 0, 0, 0},
			{0, 1, 0, 0, 7, 0, 0, 0, 6},
			{0, 0, 0, 2, 0, 0, 0, 8, 0},
			{0, 6, 0, 5, 0, 0, 0, 0, 9},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 0},
		}),
	}
}

// higherClueBoards are five hand built 9x9 boards.  They are not
// minimal and some admit several completions; they exercise the under
// constrained regime where both methods finish fast.
func higherClueBoards() []*grid.Grid {
	return []*grid.Grid{
		mustRows([][]int{
			{8, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 3, 6, 0, 0, 0, 0, 0},
			{0, 7, 0, 0, 9, 0, 2, 0, 0},
			{0, 5, 0, 0, 0, 7, 0, 0, 0},
			{0, 0, 0, 0, 4, 5, 7, 0, 0},
			{0, 0, 0, 1, 0, 0, 0, 3, 0},
			{0, 0, 1, 0, 0, 0, 0, 6, 8},
			{0, 0, 8, 5, 0, 0, 0, 1, 0},
			{0, 9, 0, 0, 0, 0, 4, 0, 0},
		}),
		mustRows([][]int{
			{0, 0, 0, 2, 0, 0, 0, 6, 3},
			{3, 0, 0, 0, 0, 5, 4, 0, 1},
			{0, 0, 1, 0, 0, 0, 0, 0, 0},
			{0, 9, 0, 0, 7, 0, 0, 0, 0},
			{5, 0, 0, 0, 0, 0, 0, 0, 4},
			{0, 0, 0, 0, 4, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 3, 0, 0},
			{2, 0, 6, 0, 0, 0, 0, 0, 7},
			{1, 3, 0, 0, 0, 2, 0, 0, 0},
		}),
		mustRows([][]int{
			{0, 0, 5, 0, 0, 0, 0, 0, 9},
			{0, 1, 0, 0, 7, 0, 0, 0, 0},
			{0, 0, 0, 4, 0, 0, 0, 3, 0},
			{0, 0, 0, 0, 0, 3, 0, 8, 0},
			{6, 0, 0, 0, 0, 0, 1, 0, 0},
			{0, 9, 0, 0, 0, 0, 0, 0, 0},
			{0, 8, 0, 0, 0, 6, 0, 0, 5},
			{0, 0, 0, 0, 5, 0, 0, 9, 0},
			{4, 0, 0, 0, 0, 0, 7, 0, 0},
		}),
		mustRows([][]int{
			{0, 0, 0, 0, 0, 0, 0, 0, 8},
			{0, 0, 0, 0, 0, 3, 6, 0, 0},
			{0, 0, 2, 0, 0, 1, 0, 0, 0},
			{0, 7, 0, 0, 0, 0, 0, 0, 9},
			{0, 0, 0, 0, 8, 0, 0, 0, 0},
			{9, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 2, 0, 0},
			{0, 0, 6, 7, 0, 0, 0, 0, 0},
			{5, 0, 0, 0, 0, 0, 0, 0, 0},
		}),
		mustRows([][]int{
			{0, 0, 0, 0, 2, 0, 6, 0, 0},
			{0, 0, 0, 7, 0, 0, 0, 0, 0},
			{1, 0, 0, 0, 0, 0, 0, 0, 0},
			{0, 0, 4, 0, 0, 0, 0, 0, 0},
			{0, 0, 0, 0, 6, 0, 0, 0, 0},
			{0, 0, 0, 0, 0, 0, 0, 5, 0},
			{0, 0, 0, 0, 0, 0, 0, 0, 1},
			{0, 0, 0, 0, 0, 7, 0, 0, 0},
			{0, 8, 0, 0, 0, 0, 0, 0, 0},
		}),
	}
}

// fourBoards are five hand built 4x4 boards.
func fourBoards() []*grid.Grid {
	return []*grid.Grid{
		mustRows([][]int{
			{1, 0, 0, 4},
			{0, 4, 0, 0},
			{0, 0, 4, 0},
			{4, 0, 0, 1},
		}),
		mustRows([][]int{
			{0, 2, 0, 0},
			{0, 0, 0, 3},
			{4, 0, 0, 0},
			{0, 0, 1, 0},
		}),
		mustRows([][]int{
			{0, 0, 3, 0},
			{0, 1, 0, 0},
			{0, 0, 0, 2},
			{0, 4, 0, 0},
		}),
		mustRows([][]int{
			{4, 0, 0, 0},
			{0, 0, 2, 0},
			{0, 3, 0, 0},
			{0, 0, 0, 1},
		}),
		mustRows([][]int{
			{0, 3, 0, 2},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{1, 0, 4, 0},
		}),
	}
}
