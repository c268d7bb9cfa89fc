package models

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/marcboeker/go-duckdb"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/serr"
)

// DuckStore is a ListingProvider backed by an in-memory DuckDB database.
// It is seeded once at startup and only read afterwards.
type DuckStore struct {
	db *sql.DB
	mu sync.RWMutex // Serializes seeding against reads
}

// OpenDuckStore opens an in-memory DuckDB database and runs the listing migrations.
// DuckDB's go driver uses an empty DSN for an in-memory database.
func OpenDuckStore() (*DuckStore, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, serr.Wrap(err, "failed to open memory database")
	}

	if err := migrateDB(db); err != nil {
		_ = db.Close()
		return nil, serr.Wrap(err, "failed to migrate listing database")
	}

	return &DuckStore{db: db}, nil
}

// Close releases the database handle
func (s *DuckStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Seed replaces the stored listings with the given ones, keeping their order.
// The delete commits on its own: DuckDB rejects re-inserting a primary key
// deleted earlier in the same transaction. A failed insert leaves the store empty.
func (s *DuckStore) Seed(ctx context.Context, listings []Listing) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, "DELETE FROM listings"); err != nil {
		return serr.Wrap(err, "failed to clear listings")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return serr.Wrap(err, "failed to begin seed transaction")
	}
	defer func() { _ = tx.Rollback() }()

	const insertSQL = `
		INSERT INTO listings (id, position, title, location, price, rating, review_count,
		                      images, is_superhost, dates, lat, lng)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	for i, l := range listings {
		images, err := EncodeImages(l.Images)
		if err != nil {
			return serr.Wrap(err, "failed to encode images for listing "+l.ID)
		}

		var lat, lng sql.NullFloat64
		if l.Coordinates != nil {
			lat = sql.NullFloat64{Float64: l.Coordinates.Lat, Valid: true}
			lng = sql.NullFloat64{Float64: l.Coordinates.Lng, Valid: true}
		}

		if _, err := tx.ExecContext(ctx, insertSQL, l.ID, i, l.Title, l.Location, l.Price, l.Rating,
			l.ReviewCount, images, l.IsSuperhost, l.Dates, lat, lng); err != nil {
			return serr.Wrap(err, "failed to insert listing "+l.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return serr.Wrap(err, "failed to commit seed transaction")
	}

	logger.Info("Seeded listing store", "count", len(listings))
	return nil
}

func (s *DuckStore) Listings(ctx context.Context, offset, limit int) ([]Listing, error) {
	if offset < 0 || limit < 0 {
		return nil, serr.New("offset and limit must not be negative")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	// offset and limit are validated ints, so formatting them in is safe
	query := listingColumns + " ORDER BY position"
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}
	query += fmt.Sprintf(" OFFSET %d", offset)

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, serr.Wrap(err, "failed to query listings")
	}
	defer rows.Close()

	listings := []Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, serr.Wrap(err, "failed to iterate listings")
	}

	return listings, nil
}

func (s *DuckStore) Listing(ctx context.Context, id string) (Listing, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, listingColumns+" WHERE id = ?", id)
	l, err := scanListing(row)
	if err == sql.ErrNoRows {
		return Listing{}, false, nil
	}
	if err != nil {
		return Listing{}, false, err
	}
	return l, true, nil
}

func (s *DuckStore) Count(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM listings").Scan(&count); err != nil {
		return 0, serr.Wrap(err, "failed to count listings")
	}
	return count, nil
}

const listingColumns = `
	SELECT id, title, location, price, rating, review_count, images, is_superhost, dates, lat, lng
	FROM listings`

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (Listing, error) {
	var (
		l        Listing
		images   []byte
		lat, lng sql.NullFloat64
	)

	err := row.Scan(&l.ID, &l.Title, &l.Location, &l.Price, &l.Rating, &l.ReviewCount,
		&images, &l.IsSuperhost, &l.Dates, &lat, &lng)
	if err == sql.ErrNoRows {
		return Listing{}, err
	}
	if err != nil {
		return Listing{}, serr.Wrap(err, "failed to scan listing")
	}

	l.Images, err = DecodeImages(images)
	if err != nil {
		return Listing{}, serr.Wrap(err, "failed to decode images for listing "+l.ID)
	}

	// Coordinates are stored as a pair; one half missing means no placement
	if lat.Valid && lng.Valid {
		l.Coordinates = &Coordinates{Lat: lat.Float64, Lng: lng.Float64}
	}

	return l, nil
}
