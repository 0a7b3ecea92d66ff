// Package mocks provides testify mocks for the persistence contracts.
package mocks

import (
	"context"

	"github.com/amirasaad/atm/pkg/repository"
	"github.com/stretchr/testify/mock"
)

// Directory is a mock repository.Directory.
type Directory struct {
	mock.Mock
}

// NewDirectory creates a Directory whose expectations are asserted when the
// test ends.
func NewDirectory(t interface {
	mock.TestingT
	Cleanup(func())
}) *Directory {
	m := &Directory{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *Directory) Load(ctx context.Context, id int64) (*repository.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Record), args.Error(1)
}

func (m *Directory) Create(ctx context.Context, rec repository.Record) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *Directory) Save(ctx context.Context, rec repository.Record) error {
	return m.Called(ctx, rec).Error(0)
}

var _ repository.Directory = (*Directory)(nil)
