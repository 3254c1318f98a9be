package engine

import "time"

// MockTimeProvider is a Clock that only moves when told to
// Tests pair it with Scheduler.Step to get exact frame deltas
type MockTimeProvider struct {
	now time.Time
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{now: start}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.now
}

// SetTime jumps the clock; moving it backwards yields a zero delta in Step
func (m *MockTimeProvider) SetTime(t time.Time) {
	m.now = t
}

// Advance moves the clock forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}
