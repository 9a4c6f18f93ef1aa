package store

import (
	"errors"

	"github.com/ArvinAIEngineer/mdm/internal/models"
)

// ErrNotFound is returned when an operation targets a customer id that does
// not exist.
var ErrNotFound = errors.New("customer record not found")

// RecordStore is the persistence contract the reconciliation flows depend on.
// ListAll returns a snapshot; the engine treats it as immutable once read.
// Implementations are responsible for serializing concurrent writers, and the
// engine offers no dedup guarantee beyond its match verdict: two callers in a
// true race can both decide to insert the same new entity.
type RecordStore interface {
	ListAll() ([]models.Customer, error)
	// Insert persists a new customer from extracted fields. The store assigns
	// the id and initializes the status to pending.
	Insert(rec models.ExtractedRecord) (uint, error)
	UpdateStatus(id uint, status models.VerificationStatus) error
}
