// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

// Package catalog maintains the name-keyed registry of databases,
// tables and table functions. Local entries live in read-write-locked
// maps; databases on the remote engine additionally delegate their DDL
// to a metadata store backend, and reads merge both views with local
// entries shadowing remote ones.
package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/lianghanzhen/databend/pkg/sql/plan"
	"github.com/lianghanzhen/databend/pkg/sql/sqlerrors"
)

// EngineRemote marks a database whose metadata lives in the remote
// store.
const EngineRemote = "Remote"

// DatabaseMeta describes a registered database. Names are stored
// lower-cased.
type DatabaseMeta struct {
	Name   string
	Engine string
}

// TableMeta describes a registered table.
type TableMeta struct {
	Database string
	Name     string
	Engine   string
	Schema   plan.Schema
}

// TableFunctionMeta describes a registered table function.
type TableFunctionMeta struct {
	Name   string
	Schema plan.Schema
}

// Catalog is the registry. All methods are safe for concurrent use.
type Catalog struct {
	logger  log.Logger
	backend Backend

	mu             sync.RWMutex
	databases      map[string]*DatabaseMeta
	tables         map[string]map[string]*TableMeta
	tableFunctions map[string]*TableFunctionMeta
}

// New returns an empty catalog delegating remote databases to backend.
func New(backend Backend, logger log.Logger) *Catalog {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Catalog{
		logger:         logger,
		backend:        backend,
		databases:      map[string]*DatabaseMeta{},
		tables:         map[string]map[string]*TableMeta{},
		tableFunctions: map[string]*TableFunctionMeta{},
	}
}

// RegisterDatabase adds a database to the local registry. The name is
// lower-cased. Registration is not idempotent; use CreateDatabase with
// IfNotExists for that.
func (c *Catalog) RegisterDatabase(db *DatabaseMeta) error {
	name := strings.ToLower(db.Name)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.databases[name]; ok {
		return sqlerrors.NewDatabaseExists(name)
	}
	c.databases[name] = &DatabaseMeta{Name: name, Engine: db.Engine}
	return nil
}

// RegisterTable adds a table to the local registry.
func (c *Catalog) RegisterTable(t *TableMeta) {
	db := strings.ToLower(t.Database)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tables[db] == nil {
		c.tables[db] = map[string]*TableMeta{}
	}
	c.tables[db][t.Name] = t
}

// RegisterTableFunction adds a table function to the local registry.
func (c *Catalog) RegisterTableFunction(f *TableFunctionMeta) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tableFunctions[f.Name] = f
}

// GetDatabase looks up a database by name, checking the local registry
// first and the remote store second.
func (c *Catalog) GetDatabase(ctx context.Context, name string) (*DatabaseMeta, error) {
	name = strings.ToLower(name)
	c.mu.RLock()
	db, ok := c.databases[name]
	c.mu.RUnlock()
	if ok {
		return db, nil
	}
	if c.backend != nil {
		return c.backend.GetDatabase(ctx, name)
	}
	return nil, sqlerrors.NewUnknownDatabase(name)
}

// ListDatabases returns the union of local and remote databases, sorted
// by name.
func (c *Catalog) ListDatabases(ctx context.Context) ([]*DatabaseMeta, error) {
	seen := map[string]*DatabaseMeta{}
	c.mu.RLock()
	for name, db := range c.databases {
		seen[name] = db
	}
	c.mu.RUnlock()
	if c.backend != nil {
		remote, err := c.backend.ListDatabases(ctx)
		if err != nil {
			return nil, err
		}
		for _, db := range remote {
			if _, ok := seen[db.Name]; !ok {
				seen[db.Name] = db
			}
		}
	}
	out := make([]*DatabaseMeta, 0, len(seen))
	for _, db := range seen {
		out = append(out, db)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// GetTable looks up a table, local registry first.
func (c *Catalog) GetTable(ctx context.Context, db, table string) (*TableMeta, error) {
	db = strings.ToLower(db)
	c.mu.RLock()
	t, ok := c.tables[db][table]
	c.mu.RUnlock()
	if ok {
		return t, nil
	}
	if c.backend != nil {
		return c.backend.GetTable(ctx, db, table)
	}
	return nil, sqlerrors.NewUnknownTable(db, table)
}

// AllTables returns every known table; a local table shadows a remote
// table with the same qualified name.
func (c *Catalog) AllTables(ctx context.Context) ([]*TableMeta, error) {
	type key struct{ db, name string }
	seen := map[key]*TableMeta{}
	c.mu.RLock()
	for db, tables := range c.tables {
		for name, t := range tables {
			seen[key{db, name}] = t
		}
	}
	c.mu.RUnlock()
	if c.backend != nil {
		remote, err := c.backend.ListTables(ctx)
		if err != nil {
			return nil, err
		}
		for _, t := range remote {
			k := key{strings.ToLower(t.Database), t.Name}
			if _, ok := seen[k]; !ok {
				seen[k] = t
			}
		}
	}
	out := make([]*TableMeta, 0, len(seen))
	for _, t := range seen {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Database != out[j].Database {
			return out[i].Database < out[j].Database
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

// GetTableFunction looks up a table function by name.
func (c *Catalog) GetTableFunction(name string) (*TableFunctionMeta, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	f, ok := c.tableFunctions[name]
	if !ok {
		return nil, sqlerrors.NewUnknownTableFunction(name)
	}
	return f, nil
}

// CreateDatabase executes a create-database plan. Remote-engine
// databases are created in the remote store before the local map is
// updated; the exclusive section covers only the map update. With
// IfNotExists set, creating an existing database is a no-op.
func (c *Catalog) CreateDatabase(ctx context.Context, p *plan.CreateDatabase) error {
	name := strings.ToLower(p.Database)

	c.mu.RLock()
	_, exists := c.databases[name]
	c.mu.RUnlock()
	if exists {
		if p.IfNotExists {
			return nil
		}
		return sqlerrors.NewDatabaseExists(name)
	}

	if p.Engine == EngineRemote && c.backend != nil {
		if err := c.backend.CreateDatabase(ctx, &DatabaseMeta{Name: name, Engine: p.Engine}); err != nil {
			return err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.databases[name]; ok {
		if p.IfNotExists {
			return nil
		}
		return sqlerrors.NewDatabaseExists(name)
	}
	c.databases[name] = &DatabaseMeta{Name: name, Engine: p.Engine}
	level.Info(c.logger).Log("msg", "created database", "database", name, "engine", p.Engine)
	return nil
}

// DropDatabase executes a drop-database plan. With IfExists set,
// dropping an unknown database is a no-op.
func (c *Catalog) DropDatabase(ctx context.Context, p *plan.DropDatabase) error {
	name := strings.ToLower(p.Database)

	c.mu.RLock()
	db, exists := c.databases[name]
	c.mu.RUnlock()
	if !exists {
		if p.IfExists {
			return nil
		}
		return sqlerrors.NewUnknownDatabase(name)
	}

	if db.Engine == EngineRemote && c.backend != nil {
		if err := c.backend.DropDatabase(ctx, name); err != nil {
			return err
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.databases[name]; !ok {
		if p.IfExists {
			return nil
		}
		return sqlerrors.NewUnknownDatabase(name)
	}
	delete(c.databases, name)
	delete(c.tables, name)
	level.Info(c.logger).Log("msg", "dropped database", "database", name)
	return nil
}
