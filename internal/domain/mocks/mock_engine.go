// Package mocks provides testify mocks for the domain package.
package mocks

import (
	"github.com/mouse-blink/bloch/internal/domain"
	m "github.com/mouse-blink/bloch/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockEngine is a mock implementation of domain.Engine.
type MockEngine struct {
	mock.Mock
}

var _ domain.Engine = (*MockEngine)(nil)

// NewMockEngine creates a MockEngine whose expectations are asserted when t finishes.
func NewMockEngine(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEngine {
	mockEngine := &MockEngine{}
	mockEngine.Mock.Test(t)

	t.Cleanup(func() { mockEngine.AssertExpectations(t) })

	return mockEngine
}

// ApplyGate provides a mock function with given fields: name.
func (_m *MockEngine) ApplyGate(name m.GateName) bool {
	ret := _m.Called(name)

	return ret.Bool(0)
}

// Reset provides a mock function with no fields.
func (_m *MockEngine) Reset() bool {
	ret := _m.Called()

	return ret.Bool(0)
}

// SetCustomState provides a mock function with given fields: alpha, beta.
func (_m *MockEngine) SetCustomState(alpha, beta m.Complex) (bool, error) {
	ret := _m.Called(alpha, beta)

	return ret.Bool(0), ret.Error(1)
}

// Randomize provides a mock function with no fields.
func (_m *MockEngine) Randomize() bool {
	ret := _m.Called()

	return ret.Bool(0)
}

// Measure provides a mock function with no fields.
func (_m *MockEngine) Measure() (m.Measurement, bool) {
	ret := _m.Called()

	return ret.Get(0).(m.Measurement), ret.Bool(1)
}

// Step provides a mock function with no fields.
func (_m *MockEngine) Step() (m.Frame, bool) {
	ret := _m.Called()

	return ret.Get(0).(m.Frame), ret.Bool(1)
}

// Snapshot provides a mock function with no fields.
func (_m *MockEngine) Snapshot() m.Frame {
	ret := _m.Called()

	return ret.Get(0).(m.Frame)
}

// State provides a mock function with no fields.
func (_m *MockEngine) State() m.State {
	ret := _m.Called()

	return ret.Get(0).(m.State)
}

// Phase provides a mock function with no fields.
func (_m *MockEngine) Phase() domain.Phase {
	ret := _m.Called()

	return ret.Get(0).(domain.Phase)
}

// LastOperation provides a mock function with no fields.
func (_m *MockEngine) LastOperation() m.Operation {
	ret := _m.Called()

	return ret.Get(0).(m.Operation)
}
