package store

// schemaSQL is the DDL for the run log.
const schemaSQL = `
-- Decomposition run audit log
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY,
    statement TEXT NOT NULL,
    constraint_count INTEGER NOT NULL DEFAULT 0,
    component_count INTEGER NOT NULL DEFAULT 0,
    complexity REAL NOT NULL DEFAULT 0,
    confidence REAL NOT NULL DEFAULT 0,
    warning_count INTEGER NOT NULL DEFAULT 0,
    result JSON,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
`
