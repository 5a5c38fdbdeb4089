package sqlite

// schemaDDL creates the two tables the API owns. Account usernames are unique
// at the schema level, so id/username lookups can never return more than one
// row.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS players (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	username        TEXT NOT NULL,
	password        TEXT NOT NULL,
	email           TEXT NOT NULL,
	level           INTEGER NOT NULL DEFAULT 1,
	platform        TEXT NOT NULL DEFAULT '',
	last_connection TIMESTAMP,
	profile_pic     TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS users (
	id       INTEGER PRIMARY KEY AUTOINCREMENT,
	username TEXT NOT NULL UNIQUE,
	password TEXT NOT NULL,
	role     TEXT NOT NULL DEFAULT 'USER',
	active   BOOLEAN NOT NULL DEFAULT 1
);
`
