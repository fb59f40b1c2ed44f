package sqlite

import "database/sql"

// capacityMessage is raised by the party_members_capacity trigger.
const capacityMessage = "party is at capacity"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
//
// The store, not the application, is the last line of defence for the
// party invariants:
//   - idx_parties_active_code: a code is unique among active parties only
//   - party_members UNIQUE (party_id, user_id): one seat per user
//   - party_members_capacity: no insert once max_members is reached
//   - parties_checked_in_monotonic: checked_in never goes back to 0
//   - attendance UNIQUE (user_id, date): one record per user per day
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS parties (
    id TEXT PRIMARY KEY,
    code TEXT NOT NULL,
    creator_id TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    expires_at INTEGER NOT NULL,
    max_members INTEGER NOT NULL DEFAULT 5 CHECK (max_members > 0),
    is_active INTEGER NOT NULL DEFAULT 1,
    checked_in INTEGER NOT NULL DEFAULT 0,
    checked_in_at INTEGER NOT NULL DEFAULT 0,
    cancelled_at INTEGER NOT NULL DEFAULT 0,
    custom_message TEXT
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_parties_active_code ON parties(code) WHERE is_active = 1;
CREATE INDEX IF NOT EXISTS idx_parties_active_expires ON parties(expires_at) WHERE is_active = 1;

CREATE TABLE IF NOT EXISTS party_members (
    id TEXT PRIMARY KEY,
    party_id TEXT NOT NULL,
    user_id TEXT NOT NULL,
    joined_at INTEGER NOT NULL,
    UNIQUE (party_id, user_id),
    FOREIGN KEY (party_id) REFERENCES parties(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_party_members_user_id ON party_members(user_id);

CREATE TRIGGER IF NOT EXISTS party_members_capacity
BEFORE INSERT ON party_members
WHEN (SELECT COUNT(*) FROM party_members WHERE party_id = NEW.party_id) >=
     (SELECT max_members FROM parties WHERE id = NEW.party_id)
BEGIN
    SELECT RAISE(ABORT, 'party is at capacity');
END;

CREATE TRIGGER IF NOT EXISTS parties_checked_in_monotonic
BEFORE UPDATE OF checked_in ON parties
WHEN OLD.checked_in = 1 AND NEW.checked_in = 0
BEGIN
    SELECT RAISE(ABORT, 'checked_in cannot be reverted');
END;

CREATE TABLE IF NOT EXISTS attendance (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    date TEXT NOT NULL,
    checked_in_at INTEGER NOT NULL,
    photo_url TEXT,
    party_id TEXT,
    source TEXT NOT NULL CHECK (source IN ('solo', 'party')),
    UNIQUE (user_id, date)
);

CREATE INDEX IF NOT EXISTS idx_attendance_party_id ON attendance(party_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
