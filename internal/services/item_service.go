package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/campusfind/backend/internal/dto"
	"github.com/campusfind/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound        = errors.New("item not found")
	ErrInvalidType         = validationErr("type must be lost or found")
	ErrInvalidEmail        = validationErr("a valid email address is required")
	ErrItemNameTooShort    = validationErr("item name must be at least 2 characters")
	ErrCategoryRequired    = validationErr("category is required")
	ErrDescriptionTooShort = validationErr("description must be at least 10 characters")
	ErrLocationTooShort    = validationErr("location must be at least 2 characters")
	ErrInvalidDate         = validationErr("date must be formatted YYYY-MM-DD")
	ErrDateInFuture        = validationErr("date cannot be in the future")
	ErrDateTooOld          = validationErr("date cannot be before January 2000")
)

// dateFloor mirrors the earliest date the report form lets users pick.
var dateFloor = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

type ItemService struct {
	db *gorm.DB
}

func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{db: db}
}

// Create validates the report and inserts it. Validation failures are
// returned before any store call.
func (s *ItemService) Create(req *dto.CreateItemRequest) (*models.Item, error) {
	date, err := validateItemInput(req)
	if err != nil {
		return nil, err
	}

	item := models.Item{
		ID:          uuid.New(),
		Type:        req.Type,
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		ItemName:    strings.TrimSpace(req.ItemName),
		Category:    req.Category,
		Description: strings.TrimSpace(req.Description),
		Location:    strings.TrimSpace(req.Location),
		Date:        datatypes.Date(date),
		ImageURL:    req.ImageURL,
	}

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return &item, nil
}

// InsertItem writes a fully formed record as-is, preserving any supplied
// timestamps. Used by the legacy migration; the regular creation path is
// Create.
func (s *ItemService) InsertItem(item *models.Item) error {
	if err := s.db.Create(item).Error; err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}
	return nil
}

// List returns the items matching the filter, most recent first. An
// empty result is not an error.
func (s *ItemService) List(f *dto.ItemFilter) ([]models.Item, error) {
	items := []models.Item{}

	q := s.db.Model(&models.Item{}).Scopes(FilterItems(f)).Order("created_at DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}

	return items, nil
}

func (s *ItemService) Get(id uuid.UUID) (*models.Item, error) {
	var item models.Item
	if err := s.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to fetch item: %w", err)
	}
	return &item, nil
}

func validateItemInput(req *dto.CreateItemRequest) (time.Time, error) {
	if req.Type != models.TypeLost && req.Type != models.TypeFound {
		return time.Time{}, ErrInvalidType
	}
	if !validEmail(req.Email) {
		return time.Time{}, ErrInvalidEmail
	}
	if len(strings.TrimSpace(req.ItemName)) < 2 {
		return time.Time{}, ErrItemNameTooShort
	}
	if strings.TrimSpace(req.Category) == "" {
		return time.Time{}, ErrCategoryRequired
	}
	if len(strings.TrimSpace(req.Description)) < 10 {
		return time.Time{}, ErrDescriptionTooShort
	}
	if len(strings.TrimSpace(req.Location)) < 2 {
		return time.Time{}, ErrLocationTooShort
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if date.After(today) {
		return time.Time{}, ErrDateInFuture
	}
	if date.Before(dateFloor) {
		return time.Time{}, ErrDateTooOld
	}

	return date, nil
}
