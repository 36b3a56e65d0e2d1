package database

// kvSchema is shared by the SQLite and PostgreSQL backends. Both accept
// the same DDL and the same upsert syntax.
const kvSchema = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)
`
