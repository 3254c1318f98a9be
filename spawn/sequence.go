package spawn

import "sort"

// Sequence replays a pre-authored structure from lowest y to highest
// Offsets are released as the accumulated scroll distance reaches their height above the first one
type Sequence struct {
	pending  []Offset
	baseY    int
	scrolled float64
}

// NewSequence orders the structure's offsets by ascending y
// Offsets without y are treated as sitting at the lowest authored y
func NewSequence(s Structure) *Sequence {
	pending := make([]Offset, len(s.Offsets))
	copy(pending, s.Offsets)

	base := 0
	found := false
	for _, o := range pending {
		if o.Y != nil && (!found || *o.Y < base) {
			base = *o.Y
			found = true
		}
	}

	yOf := func(o Offset) int {
		if o.Y == nil {
			return base
		}
		return *o.Y
	}
	sort.SliceStable(pending, func(i, j int) bool { return yOf(pending[i]) < yOf(pending[j]) })

	return &Sequence{pending: pending, baseY: base}
}

// Advance adds scroll distance and returns offsets that became due, in ascending y
// Returned offsets have Y cleared so they spawn at the kind's default height
func (q *Sequence) Advance(scroll float64) []Offset {
	if q == nil || len(q.pending) == 0 {
		return nil
	}
	q.scrolled += scroll

	n := 0
	for n < len(q.pending) {
		o := q.pending[n]
		rel := 0
		if o.Y != nil {
			rel = *o.Y - q.baseY
		}
		if float64(rel) > q.scrolled {
			break
		}
		n++
	}
	if n == 0 {
		return nil
	}

	due := make([]Offset, n)
	copy(due, q.pending[:n])
	for i := range due {
		due[i].Y = nil
	}
	q.pending = q.pending[n:]
	return due
}

// Empty reports whether every offset has been released
func (q *Sequence) Empty() bool {
	return q == nil || len(q.pending) == 0
}

// Remaining returns the number of offsets not yet released
func (q *Sequence) Remaining() int {
	if q == nil {
		return 0
	}
	return len(q.pending)
}
