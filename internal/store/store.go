// Package store defines the persistence interface for entry card records.
package store

import "github.com/inovacc/entrycard/internal/model"

// Store defines the database operations used by the app.
type Store interface {
	Ping() error
	Close() error

	// NextSerialNumber returns 1 for an empty table, else max+1.
	// Serial numbers are never reused; gaps from deletions persist.
	NextSerialNumber() (int64, error)

	// ListAll returns every entry ordered by serial number ascending.
	ListAll() ([]model.Entry, error)

	// Get returns the entry with the given serial number, or (nil, nil)
	// when no such entry exists.
	Get(serialNumber int64) (*model.Entry, error)

	// Validate collects every validation problem with the entry, field
	// checks first, then uniqueness against existing records. When
	// updating, the entry's own row is excluded from the duplicate
	// associate id check and the serial number is not re-checked.
	Validate(e *model.Entry, updating bool) ([]string, error)

	Create(e *model.Entry) error
	Update(e *model.Entry) error
	Delete(serialNumber int64) error
}
