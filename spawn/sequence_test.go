package spawn

import "testing"

func TestSequenceAscendingRelease(t *testing.T) {
	s := Structure{Offsets: []Offset{
		{X: Int(3), Y: Int(900), Kind: KindPlanet},
		{X: Int(1), Y: Int(600), Kind: KindHole},
		{X: Int(2), Y: Int(700), Kind: KindBasic},
	}}
	q := NewSequence(s)

	if q.Remaining() != 3 {
		t.Fatalf("Expected 3 pending, got %d", q.Remaining())
	}

	due := q.Advance(0)
	if len(due) != 1 || *due[0].X != 1 {
		t.Fatalf("Expected lowest offset first, got %+v", due)
	}
	if due[0].Y != nil {
		t.Error("Expected released offset to spawn at default height")
	}

	if due := q.Advance(50); len(due) != 0 {
		t.Errorf("Expected nothing due at scroll 50, got %d", len(due))
	}

	due = q.Advance(300)
	if len(due) != 2 || *due[0].X != 2 || *due[1].X != 3 {
		t.Fatalf("Expected x=2 then x=3, got %+v", due)
	}

	if !q.Empty() {
		t.Error("Expected sequence to be exhausted")
	}
	if q.Advance(1000) != nil {
		t.Error("Expected nil from an exhausted sequence")
	}
}

func TestNilSequence(t *testing.T) {
	var q *Sequence
	if !q.Empty() || q.Remaining() != 0 || q.Advance(10) != nil {
		t.Error("Expected nil sequence to behave as empty")
	}
}
