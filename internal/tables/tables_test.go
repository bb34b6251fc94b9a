package tables

import "testing"

func TestInitIsIdempotent(t *testing.T) {
	Init()
	Init() // second call must not rebuild or panic
}

func TestHeuristicsAreZeroAtSolved(t *testing.T) {
	Init()
	if h := H1(0, 0, 0); h != 0 {
		t.Errorf("H1(0, 0, 0) = %d, want 0", h)
	}
	if h := H2(0, 0, 0, 0); h != 0 {
		t.Errorf("H2(0, 0, 0, 0) = %d, want 0", h)
	}
}

func TestPermittedPhase2MovesHasTenEntries(t *testing.T) {
	moves := PermittedPhase2Moves()
	if len(moves) != 10 {
		t.Fatalf("PermittedPhase2Moves() returned %d moves, want 10", len(moves))
	}
	seen := make(map[int]bool)
	for _, m := range moves {
		if seen[m] {
			t.Errorf("move %d listed more than once", m)
		}
		seen[m] = true
	}
}

func TestNibbleTableGetSetRoundTrip(t *testing.T) {
	nt := newNibbleTable(10)
	for i := 0; i < 10; i++ {
		v := i % 15
		nt.set(i, v)
	}
	for i := 0; i < 10; i++ {
		want := i % 15
		if got := nt.get(i); got != want {
			t.Errorf("get(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestBuildPhase2MovesOnlyHalfTurnsOnSideFaces(t *testing.T) {
	moves := buildPhase2Moves()
	for _, m := range moves {
		face := m / 3
		power := m%3 + 1
		switch face {
		case 0, 3: // U, D
			// all three powers allowed
		default:
			if power != 2 {
				t.Errorf("phase-2 move %d on side face %d has power %d, want 2", m, face, power)
			}
		}
	}
}
