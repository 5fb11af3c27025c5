package store

const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS solved_challenges (
	key       TEXT PRIMARY KEY,
	solved_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS fix_verdicts (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	key         TEXT NOT NULL,
	passed      INTEGER NOT NULL,
	recorded_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_fix_verdicts_key ON fix_verdicts(key);
`

const reportQuery = `
SELECT v.key,
       COUNT(*),
       COALESCE(SUM(v.passed), 0),
       EXISTS (SELECT 1 FROM solved_challenges s WHERE s.key = v.key)
FROM fix_verdicts v
GROUP BY v.key
ORDER BY v.key
`
