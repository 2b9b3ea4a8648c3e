// Package mocks provides testify mocks for the controller package.
package mocks

import (
	"github.com/mouse-blink/bloch/internal/controller"
	"github.com/mouse-blink/bloch/internal/domain"
	m "github.com/mouse-blink/bloch/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockUI is a mock implementation of controller.UI.
type MockUI struct {
	mock.Mock
}

var _ controller.UI = (*MockUI)(nil)

// NewMockUI creates a MockUI whose expectations are asserted when t finishes.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mockUI := &MockUI{}
	mockUI.Mock.Test(t)

	t.Cleanup(func() { mockUI.AssertExpectations(t) })

	return mockUI
}

// Interactive provides a mock function with given fields: engine, options.
func (_m *MockUI) Interactive(engine domain.Engine, options ...controller.SessionOption) error {
	ret := _m.Called(engine, options)

	return ret.Error(0)
}

// DisplayFrame provides a mock function with given fields: frame.
func (_m *MockUI) DisplayFrame(frame m.Frame) error {
	ret := _m.Called(frame)

	return ret.Error(0)
}

// DisplayMeasurement provides a mock function with given fields: measurement.
func (_m *MockUI) DisplayMeasurement(measurement m.Measurement) error {
	ret := _m.Called(measurement)

	return ret.Error(0)
}

// DisplayShots provides a mock function with given fields: summary.
func (_m *MockUI) DisplayShots(summary m.ShotSummary) error {
	ret := _m.Called(summary)

	return ret.Error(0)
}
