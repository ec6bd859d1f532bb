// Copyright 2026 The Sudoku-SAT Authors. All rights reserved.  Use of this
// source code is governed by a license that can be found in the License file.

package grid

import "testing"

func TestPeerCounts(t *testing.T) {
	for _, tc := range []struct {
		n, deg int
	}{{4, 7}, {9, 20}, {16, 39}, {25, 64}} {
		p, e := NewPeers(tc.n)
		if e != nil {
			t.Fatal(e)
		}
		for i := 0; i < tc.n*tc.n; i++ {
			if d := p.Degree(i); d != tc.deg {
				t.Fatalf("n=%d cell %d: degree %d, want %d", tc.n, i, d, tc.deg)
			}
		}
	}
}

func TestPeersRejectBadSize(t *testing.T) {
	if _, e := NewPeers(10); e == nil {
		t.Error("NewPeers(10): no error")
	}
}

func TestPeersSymmetricSorted(t *testing.T) {
	p, e := NewPeers(9)
	if e != nil {
		t.Fatal(e)
	}
	for i := 0; i < 81; i++ {
		ps := p.Of(i)
		last := -1
		for _, q := range ps {
			if q == i {
				t.Fatalf("cell %d is its own peer", i)
			}
			if q <= last {
				t.Fatalf("cell %d: peers not strictly ascending", i)
			}
			last = q
			found := false
			for _, back := range p.Of(q) {
				if back == i {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("relation not symmetric for %d and %d", i, q)
			}
		}
	}
}

func TestPeersContent(t *testing.T) {
	p, e := NewPeers(4)
	if e != nil {
		t.Fatal(e)
	}
	// cell (0,0) on a 4x4: row mates 1,2,3; column mates 4,8,12; box mate 5.
	want := []int{1, 2, 3, 4, 5, 8, 12}
	got := p.OfRC(0, 0)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
