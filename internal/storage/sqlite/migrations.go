package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
//
// participants deliberately has no uniqueness constraint over
// (event_id, participant_user_id) or (event_id, guest_identity_key):
// duplicate joins from a racing client are tolerated and canonicalized by
// the identity resolver instead of rejected here.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS organizer_profiles (
    user_id TEXT PRIMARY KEY,
    venmo_username TEXT NOT NULL,
    venmo_username_normalized TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS events (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    amount REAL NOT NULL,
    organizer_venmo_username TEXT NOT NULL,
    organizer_user_id TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS participants (
    id TEXT PRIMARY KEY,
    event_id TEXT NOT NULL,
    name TEXT NOT NULL,
    status TEXT NOT NULL,
    joined_at TEXT NOT NULL,
    participant_user_id TEXT,
    guest_identity_key TEXT,
    payment_initiated_at TEXT,
    marked_paid_at TEXT,
    status_changed_by_user_id TEXT,
    reminder_count INTEGER NOT NULL DEFAULT 0,
    no_show_flag INTEGER NOT NULL DEFAULT 0,
    FOREIGN KEY (event_id) REFERENCES events(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_events_organizer ON events(organizer_user_id);
CREATE INDEX IF NOT EXISTS idx_participants_event_id ON participants(event_id);
CREATE INDEX IF NOT EXISTS idx_participants_user_id ON participants(participant_user_id);
CREATE INDEX IF NOT EXISTS idx_participants_guest_key ON participants(guest_identity_key);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
