package condense

import "time"

// Clock provides the current time. It allows injecting a fixed time
// source so that recorded condensation metadata is deterministic in
// tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// SystemClock is the standard Clock using the system time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// MockClock is a Clock that returns a fixed time.
type MockClock struct {
	fixedTime time.Time
}

// NewMockClock creates a MockClock with the given fixed time.
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{fixedTime: t}
}

// SetTime updates the fixed time returned by Now.
func (m *MockClock) SetTime(t time.Time) {
	m.fixedTime = t
}

// Now returns the fixed time.
func (m *MockClock) Now() time.Time {
	return m.fixedTime
}

// Compile-time checks.
var (
	_ Clock = SystemClock{}
	_ Clock = (*MockClock)(nil)
)
