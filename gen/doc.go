// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

// Package gen supplies the bundled benchmark boards.
//
// The boards come in six named groups, from hand built 4x4 instances up
// to procedurally generated 36x36 ones.  Every group holds five boards
// and every board is conflict free.  The package can also materialize
// the whole suite as puzzle files on disk.
package gen
