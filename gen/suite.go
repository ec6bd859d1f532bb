// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package gen

import (
	"os"
	"path/filepath"

	"github.com/Ashwot-Acharya/Sudoku-SAT/grid"
)

// WriteSuite writes every bundled board to dir as a puzzle file named
// after its instance, creating dir if needed.  It returns the written
// paths in suite order.
func WriteSuite(dir string) ([]string, error) {
	if e := os.MkdirAll(dir, 0755); e != nil {
		return nil, e
	}
	var paths []string
	for _, inst := range All() {
		p := filepath.Join(dir, inst.Name+".txt")
		if e := grid.WriteFile(p, inst.Grid); e != nil {
			return nil, e
		}
		paths = append(paths, p)
	}
	return paths, nil
}
