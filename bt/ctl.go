// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package bt

import "time"

// Ctl is a handle on a search running in its own goroutine, returned by
// GoSolve.  A Ctl is for use by one controlling goroutine.
type Ctl struct {
	s      *S
	resChn chan Status
	done   bool
	st     Status
}

// GoSolve starts an unbudgeted search on a new goroutine and returns its
// handle.
func (s *S) GoSolve() *Ctl {
	s.stop.Store(false)
	c := &Ctl{s: s, resChn: make(chan Status, 1)}
	go func() {
		c.resChn <- s.run()
	}()
	return c
}

// Test polls for a result without blocking.
func (c *Ctl) Test() (Status, bool) {
	if c.done {
		return c.st, true
	}
	select {
	case st := <-c.resChn:
		c.st, c.done = st, true
		return st, true
	default:
		return Timeout, false
	}
}

// Try waits up to d for the search, cancelling it on expiry.  The result
// is Timeout unless the search finished first.
func (c *Ctl) Try(d time.Duration) Status {
	if c.done {
		return c.st
	}
	a := time.After(d)
	select {
	case st := <-c.resChn:
		c.st, c.done = st, true
	case <-a:
		c.s.stop.Store(true)
		c.st = <-c.resChn
		c.done = true
	}
	return c.st
}

// Stop cancels the search and waits for it to unwind.
func (c *Ctl) Stop() Status {
	if c.done {
		return c.st
	}
	c.s.stop.Store(true)
	c.st = <-c.resChn
	c.done = true
	return c.st
}

// Wait blocks until the search finishes.
func (c *Ctl) Wait() Status {
	if !c.done {
		c.st = <-c.resChn
		c.done = true
	}
	return c.st
}
