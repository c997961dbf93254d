package mocks

import (
	"fmt"

	"github.com/mcoot/easylog/internal/dependencies/random"
)

// MockRandom returns queued IDs, then a numbered fallback
type MockRandom struct {
	IDs   []string
	index int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom with the given queued IDs
func NewMockRandom(ids ...string) *MockRandom {
	return &MockRandom{IDs: ids}
}

// ID returns the next queued ID, or "id-<n>" once the queue is drained
func (r *MockRandom) ID() string {
	defer func() { r.index++ }()
	if r.index < len(r.IDs) {
		return r.IDs[r.index]
	}
	return fmt.Sprintf("id-%d", r.index)
}
