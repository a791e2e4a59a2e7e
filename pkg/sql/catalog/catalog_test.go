// Copyright 2021 Datafuse Labs.
//
// Use of this software is governed by the Apache License, Version 2.0.

package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/lianghanzhen/databend/pkg/sql/plan"
	"github.com/lianghanzhen/databend/pkg/sql/sqlerrors"
	"github.com/lianghanzhen/databend/pkg/sql/types"
)

func TestCreateAndDropDatabase(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemBackend(), nil)

	require.NoError(t, c.CreateDatabase(ctx, &plan.CreateDatabase{Database: "Sales", Engine: "Local"}))

	// Names are stored lower-cased and looked up case-insensitively.
	db, err := c.GetDatabase(ctx, "SALES")
	require.NoError(t, err)
	require.Equal(t, "sales", db.Name)

	err = c.CreateDatabase(ctx, &plan.CreateDatabase{Database: "sales", Engine: "Local"})
	require.True(t, errors.Is(err, sqlerrors.ErrDatabaseExists))
	require.NoError(t, c.CreateDatabase(ctx,
		&plan.CreateDatabase{Database: "sales", IfNotExists: true, Engine: "Local"}))

	require.NoError(t, c.DropDatabase(ctx, &plan.DropDatabase{Database: "sales"}))
	_, err = c.GetDatabase(ctx, "sales")
	require.True(t, errors.Is(err, sqlerrors.ErrUnknownDatabase))

	// Drop idempotence mirrors create idempotence.
	err = c.DropDatabase(ctx, &plan.DropDatabase{Database: "sales"})
	require.True(t, errors.Is(err, sqlerrors.ErrUnknownDatabase))
	require.NoError(t, c.DropDatabase(ctx, &plan.DropDatabase{Database: "sales", IfExists: true}))
}

func TestRemoteEngineDelegation(t *testing.T) {
	ctx := context.Background()
	backend := NewMemBackend()
	c := New(backend, nil)

	require.NoError(t, c.CreateDatabase(ctx,
		&plan.CreateDatabase{Database: "metrics", Engine: EngineRemote}))

	// The backend saw the create.
	db, err := backend.GetDatabase(ctx, "metrics")
	require.NoError(t, err)
	require.Equal(t, EngineRemote, db.Engine)

	require.NoError(t, c.DropDatabase(ctx, &plan.DropDatabase{Database: "metrics"}))
	_, err = backend.GetDatabase(ctx, "metrics")
	require.True(t, errors.Is(err, sqlerrors.ErrUnknownDatabase))
}

func TestListDatabasesMergesRemote(t *testing.T) {
	ctx := context.Background()
	backend := NewMemBackend()
	require.NoError(t, backend.CreateDatabase(ctx, &DatabaseMeta{Name: "remote_only", Engine: EngineRemote}))

	c := New(backend, nil)
	require.NoError(t, c.RegisterDatabase(&DatabaseMeta{Name: "local_only", Engine: "Local"}))

	dbs, err := c.ListDatabases(ctx)
	require.NoError(t, err)
	require.Len(t, dbs, 2)
	// Sorted by name.
	require.Equal(t, "local_only", dbs[0].Name)
	require.Equal(t, "remote_only", dbs[1].Name)
}

func TestTables(t *testing.T) {
	ctx := context.Background()
	backend := NewMemBackend()
	require.NoError(t, backend.CreateTable(ctx, &TableMeta{
		Database: "db1", Name: "shadowed", Engine: EngineRemote,
	}))
	require.NoError(t, backend.CreateTable(ctx, &TableMeta{
		Database: "db1", Name: "remote_t", Engine: EngineRemote,
	}))

	c := New(backend, nil)
	local := &TableMeta{
		Database: "db1",
		Name:     "shadowed",
		Engine:   "Local",
		Schema:   plan.Schema{{Name: "a", Type: types.Int64}},
	}
	c.RegisterTable(local)

	// The local registration shadows the remote table of the same name.
	got, err := c.GetTable(ctx, "DB1", "shadowed")
	require.NoError(t, err)
	require.Equal(t, "Local", got.Engine)

	got, err = c.GetTable(ctx, "db1", "remote_t")
	require.NoError(t, err)
	require.Equal(t, EngineRemote, got.Engine)

	_, err = c.GetTable(ctx, "db1", "missing")
	require.True(t, errors.Is(err, sqlerrors.ErrUnknownTable))

	all, err := c.AllTables(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "remote_t", all[0].Name)
	require.Equal(t, "shadowed", all[1].Name)
	require.Equal(t, "Local", all[1].Engine)
}

func TestTableFunctions(t *testing.T) {
	c := New(nil, nil)
	c.RegisterTableFunction(&TableFunctionMeta{
		Name:   "numbers",
		Schema: plan.Schema{{Name: "number", Type: types.Uint64}},
	})

	f, err := c.GetTableFunction("numbers")
	require.NoError(t, err)
	require.Equal(t, "numbers", f.Name)

	_, err = c.GetTableFunction("letters")
	require.True(t, errors.Is(err, sqlerrors.ErrUnknownTableFunction))
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store_address: 127.0.0.1:9191\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9191", cfg.StoreAddress)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("no_such_field: 1\n"), 0644))
	_, err = LoadConfig(path)
	require.Error(t, err)
}
