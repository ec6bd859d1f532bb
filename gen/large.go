// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package gen

import "github.com/Ashwot-Acharya/Sudoku-SAT/grid"

// sixteenBoards are five structured 16x16 boards with around 48 clues
// laid out on latin square offsets.
func sixteenBoards() []*grid.Grid {
	return []*grid.Grid{
		fromClues(16, [][3]int{
			{0, 0, 1}, {0, 4, 2}, {0, 8, 3}, {0, 12, 4},
			{1, 1, 5}, {1, 5, 6}, {1, 9, 7}, {1, 13, 8},
			{2, 2, 9}, {2, 6, 10}, {2, 10, 11}, {2, 14, 12},
			{3, 3, 13}, {3, 7, 14}, {3, 11, 15}, {3, 15, 16},
			{4, 0, 5}, {4, 4, 9}, {4, 8, 13}, {4, 12, 1},
			{5, 1, 6}, {5, 5, 10}, {5, 9, 14}, {5, 13, 2},
			{6, 2, 7}, {6, 6, 11}, {6, 10, 15}, {6, 14, 3},
			{7, 3, 8}, {7, 7, 12}, {7, 11, 16}, {7, 15, 4},
			{8, 0, 9}, {8, 4, 13}, {8, 8, 1}, {8, 12, 5},
			{9, 1, 10}, {9, 5, 14}, {9, 9, 2}, {9, 13, 6},
			{10, 2, 11}, {10, 6, 15}, {10, 10, 3}, {10, 14, 7},
			{11, 3, 12}, {11, 7, 16}, {11, 11, 4}, {11, 15, 8},
		}),
		fromClues(16, [][3]int{
			{0, 1, 2}, {0, 5, 1}, {0, 9, 4}, {0, 13, 3},
			{1, 2, 6}, {1, 6, 5}, {1, 10, 8}, {1, 14, 7},
			{2, 3, 10}, {2, 7, 9}, {2, 11, 12}, {2, 15, 11},
			{3, 0, 14}, {3, 4, 13}, {3, 8, 16}, {3, 12, 15},
			{4, 1, 3}, {4, 5, 4}, {4, 9, 1}, {4, 13, 2},
			{5, 2, 7}, {5, 6, 8}, {5, 10, 5}, {5, 14, 6},
			{6, 3, 11}, {6, 7, 12}, {6, 11, 9}, {6, 15, 10},
			{7, 0, 15}, {7, 4, 16}, {7, 8, 13}, {7, 12, 14},
			{8, 1, 4}, {8, 5, 3}, {8, 9, 2}, {8, 13, 1},
			{9, 2, 8}, {9, 6, 7}, {9, 10, 6}, {9, 14, 5},
			{10, 3, 12}, {10, 7, 11}, {10, 11, 10}, {10, 15, 9},
			{11, 0, 16}, {11, 4, 15}, {11, 8, 14}, {11, 12, 13},
		}),
		fromClues(16, [][3]int{
			{0, 0, 16}, {0, 3, 1}, {0, 7, 5}, {0, 11, 9}, {0, 15, 13},
			{1, 1, 2}, {1, 4, 6}, {1, 8, 10}, {1, 12, 14},
			{2, 2, 3}, {2, 5, 7}, {2, 9, 11}, {2, 13, 15},
			{3, 3, 4}, {3, 6, 8}, {3, 10, 12}, {3, 14, 16},
			{4, 0, 6}, {4, 4, 2}, {4, 8, 14}, {4, 12, 10},
			{5, 1, 7}, {5, 5, 3}, {5, 9, 15}, {5, 13, 11},
			{6, 2, 8}, {6, 6, 4}, {6, 10, 16}, {6, 14, 12},
			{7, 3, 5}, {7, 7, 1}, {7, 11, 13}, {7, 15, 9},
			{8, 0, 11}, {8, 4, 15}, {8, 8, 3}, {8, 12, 7},
			{9, 1, 12}, {9, 5, 16}, {9, 9, 4}, {9, 13, 8},
			{10, 2, 13}, {10, 6, 1}, {10, 10, 5}, {10, 14, 9},
			{11, 3, 14}, {11, 7, 2}, {11, 11, 6}, {11, 15, 10},
		}),
		fromClues(16, [][3]int{
			{0, 0, 3}, {0, 4, 7}, {0, 8, 11}, {0, 12, 15},
			{1, 1, 4}, {1, 5, 8}, {1, 9, 12}, {1, 13, 16},
			{2, 2, 1}, {2, 6, 5}, {2, 10, 9}, {2, 14, 13},
			{3, 3, 2}, {3, 7, 6}, {3, 11, 10}, {3, 15, 14},
			{4, 0, 7}, {4, 4, 3}, {4, 8, 15}, {4, 12, 11},
			{5, 1, 8}, {5, 5, 4}, {5, 9, 16}, {5, 13, 12},
			{6, 2, 5}, {6, 6, 1}, {6, 10, 13}, {6, 14, 9},
			{7, 3, 6}, {7, 7, 2}, {7, 11, 14}, {7, 15, 10},
			{8, 0, 15}, {8, 4, 11}, {8, 8, 7}, {8, 12, 3},
			{9, 1, 16}, {9, 5, 12}, {9, 9, 8}, {9, 13, 4},
			{10, 2, 13}, {10, 6, 9}, {10, 10, 5}, {10, 14, 1},
			{11, 3, 14}, {11, 7, 10}, {11, 11, 6}, {11, 15, 2},
		}),
		fromClues(16, [][3]int{
			{0, 0, 13}, {0, 4, 1}, {0, 8, 5}, {0, 12, 9},
			{1, 1, 14}, {1, 5, 2}, {1, 9, 6}, {1, 13, 10},
			{2, 2, 15}, {2, 6, 3}, {2, 10, 7}, {2, 14, 11},
			{3, 3, 16}, {3, 7, 4}, {3, 11, 8}, {3, 15, 12},
			{4, 0, 2}, {4, 4, 14}, {4, 8, 10}, {4, 12, 6},
			{5, 1, 1}, {5, 5, 13}, {5, 9, 9}, {5, 13, 5},
			{6, 2, 4}, {6, 6, 16}, {6, 10, 12}, {6, 14, 8},
			{7, 3, 3}, {7, 7, 15}, {7, 11, 11}, {7, 15, 7},
			{8, 0, 10}, {8, 4, 6}, {8, 8, 2}, {8, 12, 14},
			{9, 1, 9}, {9, 5, 5}, {9, 9, 1}, {9, 13, 13},
			{10, 2, 12}, {10, 6, 8}, {10, 10, 4}, {10, 14, 16},
			{11, 3, 11}, {11, 7, 7}, {11, 11, 3}, {11, 15, 15},
		}),
	}
}

// twentyFiveBoards are five sparse 25x25 boards, two seeded clues per
// box where they fit.
func twentyFiveBoards() []*grid.Grid {
	out := make([]*grid.Grid, 5)
	for off := 0; off < 5; off++ {
		out[off] = fromClues(25, clues25(off))
	}
	return out
}

// thirtySixBoards are five sparse 36x36 boards built the same way.
// They exist mainly to push the encoder; a plain search on them runs
// into any reasonable deadline.
func thirtySixBoards() []*grid.Grid {
	out := make([]*grid.Grid, 5)
	for off := 0; off < 5; off++ {
		out[off] = fromClues(36, clues36(off))
	}
	return out
}

// clues25 seeds one clue per box on a shifted diagonal, then attempts a
// second clue per box, keeping it only when it conflicts with nothing
// placed so far.
func clues25(offset int) [][3]int {
	const box = 5
	var clues [][3]int
	for br := 0; br < 5; br++ {
		for bc := 0; bc < 5; bc++ {
			idx := br*5 + bc
			r := br*box + idx%box
			c := bc*box + (idx+offset)%box
			v := (idx+offset)%25 + 1
			clues = append(clues, [3]int{r, c, v})
		}
	}
	for br := 0; br < 5; br++ {
		for bc := 0; bc < 5; bc++ {
			idx := br*5 + bc
			r := br*box + (idx+2)%box
			c := bc*box + (idx+offset+3)%box
			v := (idx+offset+12)%25 + 1
			if clueFits(clues, box, r, c, v) {
				clues = append(clues, [3]int{r, c, v})
			}
		}
	}
	return clues
}

// clues36 works like clues25 with the second pass interleaved per box
// row.
func clues36(offset int) [][3]int {
	const box = 6
	var clues [][3]int
	for br := 0; br < 6; br++ {
		for bc := 0; bc < 6; bc++ {
			idx := br*6 + bc
			r := br*box + idx%box
			c := bc*box + (idx+offset)%box
			v := (idx+offset)%36 + 1
			clues = append(clues, [3]int{r, c, v})
		}
		for bc := 0; bc < 6; bc++ {
			idx := br*6 + bc
			r := br*box + (idx+3)%box
			c := bc*box + (idx+offset+2)%box
			v := (idx+offset+18)%36 + 1
			if clueFits(clues, box, r, c, v) {
				clues = append(clues, [3]int{r, c, v})
			}
		}
	}
	return clues
}

// clueFits reports whether value v at (r,c) repeats in the row, column,
// or box of any clue placed so far.
func clueFits(clues [][3]int, box, r, c, v int) bool {
	for _, cl := range clues {
		if cl[2] != v {
			continue
		}
		if cl[0] == r || cl[1] == c {
			return false
		}
		if cl[0]/box == r/box && cl[1]/box == c/box {
			return false
		}
	}
	return true
}
