package store

import (
	"gorm.io/gorm"

	"github.com/ArvinAIEngineer/mdm/internal/models"
)

// Gorm is the postgres-backed RecordStore.
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (s *Gorm) ListAll() ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.db.Order("id").Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (s *Gorm) Insert(rec models.ExtractedRecord) (uint, error) {
	c := models.Customer{
		Name:               rec.Name,
		Phone:              rec.Phone,
		DOB:                rec.DOB,
		Address:            rec.Address,
		Email:              rec.Email,
		Company:            rec.Company,
		VerificationStatus: models.StatusPending,
	}
	if err := s.db.Create(&c).Error; err != nil {
		return 0, err
	}
	return c.ID, nil
}

func (s *Gorm) UpdateStatus(id uint, status models.VerificationStatus) error {
	res := s.db.Model(&models.Customer{}).Where("id = ?", id).
		Update("verification_status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
