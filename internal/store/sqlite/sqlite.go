// Package sqlite provides SQLite database storage for entrycard.
package sqlite

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/inovacc/entrycard/internal/model"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// NULL conversion helpers for optional columns
func ptrString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func ptrInt64(i int64) *int64 {
	if i == 0 {
		return nil
	}
	return &i
}

// Store implements the store.Store interface using SQLite.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// New creates a new SQLite store with the given database path. The
// schema is created idempotently through the embedded migrations.
func New(dbPath string, log *slog.Logger) (*Store, error) {
	if log == nil {
		log = slog.Default()
	}

	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't handle multiple writers well
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	migrator := NewMigrator(db)
	if err := migrator.MigrateUp(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	log.Info("database initialized", "path", dbPath)

	return &Store{db: db, log: log}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	err := s.db.Close()
	if err != nil {
		s.log.Error("closing database", "error", err)
		return err
	}

	s.log.Info("database connection closed")

	return nil
}

// Ping checks if the database is accessible.
func (s *Store) Ping() error {
	return s.db.Ping()
}

// NextSerialNumber returns 1 for an empty table, else max+1. Gaps left
// by deletions are never reused.
func (s *Store) NextSerialNumber() (int64, error) {
	var maxSerial sql.NullInt64

	err := s.db.QueryRow(`SELECT MAX(serial_number) FROM entries`).Scan(&maxSerial)
	if err != nil {
		return 0, fmt.Errorf("getting max serial number: %w", err)
	}

	next := int64(1)
	if maxSerial.Valid {
		next = maxSerial.Int64 + 1
	}

	s.log.Debug("next serial number fetched", "serial_number", next)

	return next, nil
}

const entryColumns = `serial_number, associate_id, date, name, mobile, height, age, email, adhaar_id, date_of_birth`

// ListAll returns every entry ordered by serial number ascending.
func (s *Store) ListAll() ([]model.Entry, error) {
	rows, err := s.db.Query(`SELECT ` + entryColumns + ` FROM entries ORDER BY serial_number ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	defer func() { _ = rows.Close() }()

	var entries []model.Entry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}

		entries = append(entries, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}

	s.log.Debug("entries loaded", "count", len(entries))

	return entries, nil
}

// Get returns the entry with the given serial number, or (nil, nil)
// when no such entry exists.
func (s *Store) Get(serialNumber int64) (*model.Entry, error) {
	row := s.db.QueryRow(`SELECT `+entryColumns+` FROM entries WHERE serial_number = ?`, serialNumber)

	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, fmt.Errorf("getting entry %d: %w", serialNumber, err)
	}

	return e, nil
}

// Validate collects every validation problem with the entry: field
// checks first (in fixed display order), then uniqueness against
// existing records. All applicable problems are returned, not just the
// first. Errors from the uniqueness queries themselves are returned
// separately.
func (s *Store) Validate(e *model.Entry, updating bool) ([]string, error) {
	errs := e.FieldErrors()

	// Duplicate associate id, excluding the row being updated
	if e.AssociateID != "" {
		var existingSerial int64

		err := s.db.QueryRow(
			`SELECT serial_number FROM entries WHERE associate_id = ?`,
			e.AssociateID,
		).Scan(&existingSerial)

		switch {
		case err == sql.ErrNoRows:
		case err != nil:
			return nil, fmt.Errorf("checking duplicate associate id: %w", err)
		case !updating || existingSerial != e.SerialNumber:
			errs = append(errs, model.ErrDuplicateAssociate)
		}
	}

	// Duplicate serial number only matters when adding new entries
	if !updating {
		var count int64

		err := s.db.QueryRow(
			`SELECT COUNT(*) FROM entries WHERE serial_number = ?`,
			e.SerialNumber,
		).Scan(&count)
		if err != nil {
			return nil, fmt.Errorf("checking duplicate serial number: %w", err)
		}

		if count > 0 {
			errs = append(errs, model.ErrDuplicateSerial)
		}
	}

	if len(errs) > 0 {
		s.log.Warn("validation failed", "serial_number", e.SerialNumber, "problems", len(errs))
	}

	return errs, nil
}

// Create inserts a new entry row.
func (s *Store) Create(e *model.Entry) error {
	_, err := s.db.Exec(`
		INSERT INTO entries (`+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, e.SerialNumber, e.AssociateID, e.Date, e.Name, e.Mobile,
		ptrString(e.Height), ptrInt64(e.Age), ptrString(e.Email),
		ptrString(e.AdhaarID), ptrString(e.DateOfBirth))
	if err != nil {
		s.log.Error("saving entry", "serial_number", e.SerialNumber, "error", err)
		return fmt.Errorf("saving entry: %w", err)
	}

	s.log.Info("entry saved", "serial_number", e.SerialNumber, "associate_id", e.AssociateID)

	return nil
}

// Update rewrites all fields of the row matching the entry's serial
// number.
func (s *Store) Update(e *model.Entry) error {
	_, err := s.db.Exec(`
		UPDATE entries SET
			associate_id = ?,
			date = ?,
			name = ?,
			mobile = ?,
			height = ?,
			age = ?,
			email = ?,
			adhaar_id = ?,
			date_of_birth = ?
		WHERE serial_number = ?
	`, e.AssociateID, e.Date, e.Name, e.Mobile,
		ptrString(e.Height), ptrInt64(e.Age), ptrString(e.Email),
		ptrString(e.AdhaarID), ptrString(e.DateOfBirth), e.SerialNumber)
	if err != nil {
		s.log.Error("updating entry", "serial_number", e.SerialNumber, "error", err)
		return fmt.Errorf("updating entry: %w", err)
	}

	s.log.Info("entry updated", "serial_number", e.SerialNumber, "associate_id", e.AssociateID)

	return nil
}

// Delete removes the row with the given serial number.
func (s *Store) Delete(serialNumber int64) error {
	_, err := s.db.Exec(`DELETE FROM entries WHERE serial_number = ?`, serialNumber)
	if err != nil {
		s.log.Error("deleting entry", "serial_number", serialNumber, "error", err)
		return fmt.Errorf("deleting entry: %w", err)
	}

	s.log.Info("entry deleted", "serial_number", serialNumber)

	return nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*model.Entry, error) {
	var (
		e           model.Entry
		height      sql.NullString
		age         sql.NullInt64
		email       sql.NullString
		adhaarID    sql.NullString
		dateOfBirth sql.NullString
	)

	err := row.Scan(&e.SerialNumber, &e.AssociateID, &e.Date, &e.Name, &e.Mobile,
		&height, &age, &email, &adhaarID, &dateOfBirth)
	if err != nil {
		return nil, err
	}

	e.Height = height.String
	e.Age = age.Int64
	e.Email = email.String
	e.AdhaarID = adhaarID.String
	e.DateOfBirth = dateOfBirth.String

	return &e, nil
}
