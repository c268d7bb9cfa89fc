package models

import (
	"database/sql"

	"github.com/rohanthewiz/serr"
)

// migrateDB creates the listing schema on a fresh database
func migrateDB(db *sql.DB) error {
	// position keeps the provider's ordering stable for offset paging;
	// images holds a msgpack-encoded list of image references
	listingsTableSQL := `
	CREATE TABLE IF NOT EXISTS listings (
		id VARCHAR PRIMARY KEY,
		position INTEGER NOT NULL,
		title VARCHAR NOT NULL,
		location VARCHAR NOT NULL DEFAULT '',
		price DOUBLE NOT NULL DEFAULT 0,
		rating DOUBLE NOT NULL DEFAULT 0,
		review_count INTEGER NOT NULL DEFAULT 0,
		images BLOB,
		is_superhost BOOLEAN NOT NULL DEFAULT false,
		dates VARCHAR NOT NULL DEFAULT '',
		lat DOUBLE,
		lng DOUBLE
	)`

	if _, err := db.Exec(listingsTableSQL); err != nil {
		return serr.Wrap(err, "failed to create listings table")
	}

	if _, err := db.Exec("CREATE INDEX IF NOT EXISTS idx_listings_position ON listings(position)"); err != nil {
		return serr.Wrap(err, "failed to create listings position index")
	}

	return nil
}
