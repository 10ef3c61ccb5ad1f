// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles the database connection, schema, and transmission log.

# Connecting

Open selects the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

PostgreSQL uses github.com/lib/pq, SQLite uses modernc.org/sqlite (no cgo).

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same DDL runs on both databases.

# Tables

  - transmission: one row per translation (mode, quantum flag, counts,
    LUXBIN representation, total duration, hashed client IP)

# Indexes

  - transmission.created_at
  - transmission.mode

# Store

	store := db.NewStore(conn, cfg.DatabaseType)
	err := store.Record(ctx, t)
	t, err := store.Get(ctx, id)     // db.ErrNotFound when missing
	list, err := store.List(ctx, 50) // newest first, capped at MaxListLimit

Queries are written with ? placeholders and rebound to $N for PostgreSQL.
*/
package db
