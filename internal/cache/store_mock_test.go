package cache

import (
	"context"
	"sync"
)

// storeMock is a moq-style mock of Store.
type storeMock struct {
	GetFunc          func(ctx context.Context, key string) ([]byte, bool, error)
	SetFunc          func(ctx context.Context, key string, value []byte) error
	DeletePrefixFunc func(ctx context.Context, prefix string) error

	mu    sync.Mutex
	calls struct {
		Get          []string
		Set          []string
		DeletePrefix []string
	}
}

func (m *storeMock) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	m.calls.Get = append(m.calls.Get, key)
	m.mu.Unlock()
	if m.GetFunc == nil {
		panic("storeMock.GetFunc: method is nil but Store.Get was just called")
	}
	return m.GetFunc(ctx, key)
}

func (m *storeMock) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	m.calls.Set = append(m.calls.Set, key)
	m.mu.Unlock()
	if m.SetFunc == nil {
		panic("storeMock.SetFunc: method is nil but Store.Set was just called")
	}
	return m.SetFunc(ctx, key, value)
}

func (m *storeMock) DeletePrefix(ctx context.Context, prefix string) error {
	m.mu.Lock()
	m.calls.DeletePrefix = append(m.calls.DeletePrefix, prefix)
	m.mu.Unlock()
	if m.DeletePrefixFunc == nil {
		panic("storeMock.DeletePrefixFunc: method is nil but Store.DeletePrefix was just called")
	}
	return m.DeletePrefixFunc(ctx, prefix)
}
