package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS saved_dates (
    id                   INTEGER PRIMARY KEY AUTOINCREMENT,
    saved_at             TEXT NOT NULL,
    day                  INTEGER NOT NULL,
    month                INTEGER NOT NULL,
    year                 INTEGER NOT NULL,
    source               TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_saved_dates_saved_at ON saved_dates(saved_at);
`
