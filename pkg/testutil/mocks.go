package testutil

import (
	"github.com/seshanpillay25/contexthub/pkg/probe"
	"github.com/stretchr/testify/mock"
)

// MockProber is a testify mock of probe.Prober.
type MockProber struct {
	mock.Mock
}

func (m *MockProber) IsPrivileged() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockProber) SupportsSymlinks() bool {
	args := m.Called()
	return args.Bool(0)
}

// NewMockProber returns a mock with fixed answers for both methods.
func NewMockProber(privileged, symlinks bool) *MockProber {
	m := &MockProber{}
	m.On("IsPrivileged").Return(privileged)
	m.On("SupportsSymlinks").Return(symlinks)
	return m
}

var _ probe.Prober = (*MockProber)(nil)
