// Package testfixtures provides mock implementations and test utilities for TUI testing.
//
// This file contains mocks for the wizard's collaborators:
//   - MockGateway: records shares instead of delivering them
//   - MockObserver: records wizard transitions
//
// All mocks are thread-safe and provide verification methods for assertions in tests.
package testfixtures

import (
	"context"
	"sync"

	"github.com/mark3labs/yavoy/internal/delay"
	"github.com/mark3labs/yavoy/internal/share"
	"github.com/mark3labs/yavoy/internal/wizard"
)

// MockGateway is a share.Gateway that records every share.
type MockGateway struct {
	mu sync.Mutex

	// Error to return from Share
	ShareError error

	shared []share.Content
}

// NewMockGateway creates a new MockGateway.
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

// Name implements share.Gateway.
func (m *MockGateway) Name() string { return "mock" }

// Share implements share.Gateway.
func (m *MockGateway) Share(_ context.Context, c share.Content) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ShareError != nil {
		return m.ShareError
	}
	m.shared = append(m.shared, c)
	return nil
}

// Shared returns a copy of all successfully shared content.
func (m *MockGateway) Shared() []share.Content {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]share.Content, len(m.shared))
	copy(out, m.shared)
	return out
}

// MockObserver is a wizard.Observer that records calls.
type MockObserver struct {
	mu sync.Mutex

	Rejected []string
	Results  []delay.Result
}

// TransitionRejected implements wizard.Observer.
func (m *MockObserver) TransitionRejected(op string, _ wizard.Step) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rejected = append(m.Rejected, op)
}

// Finalized implements wizard.Observer.
func (m *MockObserver) Finalized(_ delay.Family, _ *delay.Input, res delay.Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Results = append(m.Results, res)
}

var (
	_ share.Gateway   = (*MockGateway)(nil)
	_ wizard.Observer = (*MockObserver)(nil)
)
