package services

import (
	"strings"

	"github.com/campusfind/backend/internal/dto"
	"gorm.io/gorm"
)

// FilterItems returns a GORM scope composing the optional listing
// predicates. Each is independent; all supplied ones are ANDed.
//
// The search term is matched case-insensitively as a substring of
// item_name or description. LIKE metacharacters (% and _) in the term
// are passed through unescaped, matching the behavior of the form this
// serves.
func FilterItems(f *dto.ItemFilter) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Type != "" && f.Type != "all" {
			db = db.Where("type = ?", f.Type)
		}
		if f.Category != "" && f.Category != "all" {
			db = db.Where("category = ?", f.Category)
		}
		if f.Search != "" {
			pattern := "%" + strings.ToLower(f.Search) + "%"
			db = db.Where("(LOWER(item_name) LIKE ? OR LOWER(description) LIKE ?)", pattern, pattern)
		}
		return db
	}
}
