package mocks

import (
	"context"

	"github.com/yuanweize/BTtrackers-updater/core/tracker"

	"github.com/stretchr/testify/mock"
)

// Fetcher is a mock implementation of update.Fetcher
type Fetcher struct {
	mock.Mock
}

func (m *Fetcher) FetchAll(ctx context.Context) tracker.Set {
	args := m.Called(ctx)
	if set, ok := args.Get(0).(tracker.Set); ok {
		return set
	}
	return tracker.NewSet()
}

// ConfigFile is a mock implementation of update.ConfigFile
type ConfigFile struct {
	mock.Mock
}

func (m *ConfigFile) Validate() error {
	args := m.Called()
	return args.Error(0)
}

func (m *ConfigFile) ReadTrackers() (tracker.Set, error) {
	args := m.Called()
	if set, ok := args.Get(0).(tracker.Set); ok {
		return set, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ConfigFile) Backup() error {
	args := m.Called()
	return args.Error(0)
}

func (m *ConfigFile) WriteTrackers(merged tracker.Set) error {
	args := m.Called(merged)
	return args.Error(0)
}

// RPCClient is a mock implementation of update.RPCClient
type RPCClient struct {
	mock.Mock
}

func (m *RPCClient) Trackers(ctx context.Context) (tracker.Set, error) {
	args := m.Called(ctx)
	if set, ok := args.Get(0).(tracker.Set); ok {
		return set, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RPCClient) Push(ctx context.Context, merged tracker.Set) error {
	args := m.Called(ctx, merged)
	return args.Error(0)
}
