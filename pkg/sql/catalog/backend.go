// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package catalog

import (
	"context"
	"sync"

	"github.com/lianghanzhen/databend/pkg/sql/sqlerrors"
)

// Backend is a remote metadata store. The catalog delegates writes for
// remote-engine databases to it and merges its listings with the local
// maps on reads.
type Backend interface {
	CreateDatabase(ctx context.Context, db *DatabaseMeta) error
	DropDatabase(ctx context.Context, name string) error
	GetDatabase(ctx context.Context, name string) (*DatabaseMeta, error)
	ListDatabases(ctx context.Context) ([]*DatabaseMeta, error)
	GetTable(ctx context.Context, db, table string) (*TableMeta, error)
	ListTables(ctx context.Context) ([]*TableMeta, error)
}

// MemBackend is an in-process Backend, used when no remote store is
// configured and throughout the tests.
type MemBackend struct {
	mu        sync.RWMutex
	databases map[string]*DatabaseMeta
	tables    map[string]map[string]*TableMeta
}

var _ Backend = (*MemBackend)(nil)

func NewMemBackend() *MemBackend {
	return &MemBackend{
		databases: map[string]*DatabaseMeta{},
		tables:    map[string]map[string]*TableMeta{},
	}
}

func (b *MemBackend) CreateDatabase(_ context.Context, db *DatabaseMeta) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.databases[db.Name]; ok {
		return sqlerrors.NewDatabaseExists(db.Name)
	}
	b.databases[db.Name] = db
	return nil
}

func (b *MemBackend) DropDatabase(_ context.Context, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.databases[name]; !ok {
		return sqlerrors.NewUnknownDatabase(name)
	}
	delete(b.databases, name)
	delete(b.tables, name)
	return nil
}

func (b *MemBackend) GetDatabase(_ context.Context, name string) (*DatabaseMeta, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	db, ok := b.databases[name]
	if !ok {
		return nil, sqlerrors.NewUnknownDatabase(name)
	}
	return db, nil
}

func (b *MemBackend) ListDatabases(_ context.Context) ([]*DatabaseMeta, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]*DatabaseMeta, 0, len(b.databases))
	for _, db := range b.databases {
		out = append(out, db)
	}
	return out, nil
}

// CreateTable registers a table. It is part of MemBackend, not Backend:
// remote stores create tables through their own DDL path.
func (b *MemBackend) CreateTable(_ context.Context, t *TableMeta) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.tables[t.Database] == nil {
		b.tables[t.Database] = map[string]*TableMeta{}
	}
	b.tables[t.Database][t.Name] = t
	return nil
}

func (b *MemBackend) GetTable(_ context.Context, db, table string) (*TableMeta, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	t, ok := b.tables[db][table]
	if !ok {
		return nil, sqlerrors.NewUnknownTable(db, table)
	}
	return t, nil
}

func (b *MemBackend) ListTables(_ context.Context) ([]*TableMeta, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var out []*TableMeta
	for _, tables := range b.tables {
		for _, t := range tables {
			out = append(out, t)
		}
	}
	return out, nil
}
