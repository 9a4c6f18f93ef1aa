package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArvinAIEngineer/mdm/internal/models"
)

func strptr(s string) *string { return &s }

func TestMemoryInsertAndList(t *testing.T) {
	s := NewMemory()

	id1, err := s.Insert(models.ExtractedRecord{Name: strptr("Ravi Kumar")})
	require.NoError(t, err)
	id2, err := s.Insert(models.ExtractedRecord{Name: strptr("Anita Desai")})
	require.NoError(t, err)
	assert.Equal(t, uint(1), id1)
	assert.Equal(t, uint(2), id2)

	customers, err := s.ListAll()
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, models.StatusPending, customers[0].VerificationStatus)
	assert.Equal(t, "Ravi Kumar", *customers[0].Name)
}

func TestMemoryListReturnsSnapshot(t *testing.T) {
	s := NewMemory()
	_, err := s.Insert(models.ExtractedRecord{Name: strptr("Ravi Kumar")})
	require.NoError(t, err)

	snap, err := s.ListAll()
	require.NoError(t, err)
	snap[0].VerificationStatus = models.StatusVerified

	again, err := s.ListAll()
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, again[0].VerificationStatus)
}

func TestMemoryUpdateStatus(t *testing.T) {
	s := NewMemory()
	id, err := s.Insert(models.ExtractedRecord{Name: strptr("Ravi Kumar")})
	require.NoError(t, err)

	require.NoError(t, s.UpdateStatus(id, models.StatusVerified))

	customers, err := s.ListAll()
	require.NoError(t, err)
	assert.Equal(t, models.StatusVerified, customers[0].VerificationStatus)

	assert.ErrorIs(t, s.UpdateStatus(999, models.StatusVerified), ErrNotFound)
}
