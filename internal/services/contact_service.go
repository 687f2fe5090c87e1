package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/campusfind/backend/internal/dto"
	"github.com/campusfind/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNameTooShort    = validationErr("name must be at least 2 characters")
	ErrMessageTooShort = validationErr("message must be at least 10 characters")
)

type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

// Create validates the message, snapshots the item's email as the
// recipient and inserts the contact request. Validation runs before any
// store access.
func (s *ContactService) Create(itemID uuid.UUID, req *dto.CreateContactRequest) (*models.ContactRequest, error) {
	if len(strings.TrimSpace(req.Name)) < 2 {
		return nil, ErrNameTooShort
	}
	if !validEmail(req.Email) {
		return nil, ErrInvalidEmail
	}
	if len(strings.TrimSpace(req.Message)) < 10 {
		return nil, ErrMessageTooShort
	}

	var item models.Item
	if err := s.db.First(&item, "id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to fetch item: %w", err)
	}

	cr := models.ContactRequest{
		ID:        uuid.New(),
		ItemID:    item.ID,
		FromName:  strings.TrimSpace(req.Name),
		FromEmail: strings.TrimSpace(req.Email),
		ToEmail:   item.Email,
		Message:   strings.TrimSpace(req.Message),
		IsRead:    false,
	}

	if err := s.db.Create(&cr).Error; err != nil {
		return nil, fmt.Errorf("failed to create contact request: %w", err)
	}

	return &cr, nil
}

// InsertContactRequest writes a fully formed record as-is, preserving
// supplied timestamps and the is_read flag. Used by the legacy migration.
func (s *ContactService) InsertContactRequest(cr *models.ContactRequest) error {
	if err := s.db.Create(cr).Error; err != nil {
		return fmt.Errorf("failed to insert contact request: %w", err)
	}
	return nil
}
