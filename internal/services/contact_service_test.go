package services

import (
	"testing"
	"time"

	"github.com/campusfind/backend/internal/dto"
	"github.com/campusfind/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContactRequest() *dto.CreateContactRequest {
	return &dto.CreateContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@example.edu",
		Message: "I think I found your wallet near the gym entrance.",
	}
}

func TestContactCreateValidationBeforeStore(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)

	tests := []struct {
		name    string
		mutate  func(r *dto.CreateContactRequest)
		wantErr error
	}{
		{"short name", func(r *dto.CreateContactRequest) { r.Name = "J" }, ErrNameTooShort},
		{"bad email", func(r *dto.CreateContactRequest) { r.Email = "nope" }, ErrInvalidEmail},
		{"short message", func(r *dto.CreateContactRequest) { r.Message = "hello" }, ErrMessageTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validContactRequest()
			tt.mutate(req)

			// A random item id: validation must fire before the item is
			// even looked up.
			_, err := svc.Create(uuid.New(), req)
			require.ErrorIs(t, err, tt.wantErr)

			var count int64
			require.NoError(t, db.Model(&models.ContactRequest{}).Count(&count).Error)
			assert.Zero(t, count)
		})
	}
}

func TestContactCreateSnapshotsPosterEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)

	item := seedItem(t, db, models.TypeFound, "Black Wallet", "Wallet", "Leather wallet, no ID inside", time.Now().UTC())

	cr, err := svc.Create(item.ID, validContactRequest())
	require.NoError(t, err)

	assert.Equal(t, item.ID, cr.ItemID)
	assert.Equal(t, item.Email, cr.ToEmail)
	assert.False(t, cr.IsRead)

	// The snapshot survives a later change to the item's email.
	require.NoError(t, db.Model(&models.Item{}).Where("id = ?", item.ID).Update("email", "changed@example.edu").Error)

	var stored models.ContactRequest
	require.NoError(t, db.First(&stored, "id = ?", cr.ID).Error)
	assert.Equal(t, item.Email, stored.ToEmail)
}

func TestContactCreateUnknownItem(t *testing.T) {
	db := newTestDB(t)
	svc := NewContactService(db)

	_, err := svc.Create(uuid.New(), validContactRequest())
	require.ErrorIs(t, err, ErrItemNotFound)
}
