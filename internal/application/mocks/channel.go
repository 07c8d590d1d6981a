// Package mocks holds testify mocks for the application ports.
package mocks

import (
	"context"

	"github.com/DanielPopoola/egopay-gateway/internal/application"
	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockDialer is a mock implementation of application.Dialer
type MockDialer struct {
	mock.Mock
}

func NewMockDialer(t testingT) *MockDialer {
	m := &MockDialer{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDialer) Dial(ctx context.Context, cfg application.ChannelConfig) (application.Channel, error) {
	args := m.Called(ctx, cfg)

	var channel application.Channel
	if v := args.Get(0); v != nil {
		channel = v.(application.Channel)
	}
	return channel, args.Error(1)
}

// MockChannel is a mock implementation of application.Channel
type MockChannel struct {
	mock.Mock
}

func NewMockChannel(t testingT) *MockChannel {
	m := &MockChannel{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockChannel) Call(ctx context.Context, operation string, payload map[string]any) (application.RawResult, error) {
	args := m.Called(ctx, operation, payload)
	return args.Get(0).(application.RawResult), args.Error(1)
}
