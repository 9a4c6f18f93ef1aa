package store

import (
	"sync"

	"github.com/ArvinAIEngineer/mdm/internal/models"
)

// Memory is an in-memory RecordStore used by tests and local development.
// Ids are assigned sequentially and never reused.
type Memory struct {
	mu     sync.Mutex
	nextID uint
	recs   []models.Customer
}

func NewMemory() *Memory {
	return &Memory{nextID: 1}
}

func (s *Memory) ListAll() ([]models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Customer, len(s.recs))
	copy(out, s.recs)
	return out, nil
}

func (s *Memory) Insert(rec models.ExtractedRecord) (uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := models.Customer{
		ID:                 s.nextID,
		Name:               rec.Name,
		Phone:              rec.Phone,
		DOB:                rec.DOB,
		Address:            rec.Address,
		Email:              rec.Email,
		Company:            rec.Company,
		VerificationStatus: models.StatusPending,
	}
	s.nextID++
	s.recs = append(s.recs, c)
	return c.ID, nil
}

func (s *Memory) UpdateStatus(id uint, status models.VerificationStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.recs {
		if s.recs[i].ID == id {
			s.recs[i].VerificationStatus = status
			return nil
		}
	}
	return ErrNotFound
}
