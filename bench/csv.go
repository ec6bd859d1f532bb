// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package bench

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"time"
)

// csvHeader is the column layout of a results table.
var csvHeader = []string{
	"group", "size", "puzzle", "clues",
	"cnf_vars", "cnf_clauses",
	"enc_time", "sat_time", "bt_time",
	"sat_status", "bt_status",
}

// WriteCSV writes the rows as a results table with a header line.
// Times are seconds with microsecond precision; stages that never ran
// leave their time column empty.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if e := cw.Write(csvHeader); e != nil {
		return e
	}
	for _, r := range rows {
		if e := cw.Write(r.record()); e != nil {
			return e
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the rows to path, truncating it.
func WriteCSVFile(path string, rows []Row) error {
	f, e := os.Create(path)
	if e != nil {
		return e
	}
	if e := WriteCSV(f, rows); e != nil {
		f.Close()
		return e
	}
	return f.Close()
}

func (r Row) record() []string {
	satTime, btTime := "", ""
	if r.SATStatus != statusSkipped {
		satTime = secs(r.SATTime)
	}
	if r.BTStatus != statusSkipped {
		btTime = secs(r.BTTime)
	}
	return []string{
		r.Group,
		strconv.Itoa(r.Size),
		r.Puzzle,
		strconv.Itoa(r.Clues),
		strconv.Itoa(r.CNFVars),
		strconv.Itoa(r.CNFClauses),
		secs(r.EncTime),
		satTime,
		btTime,
		r.SATStatus,
		r.BTStatus,
	}
}

func secs(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 6, 64)
}
