package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Item types.
const (
	TypeLost  = "lost"
	TypeFound = "found"
)

// Item is a lost-or-found report posted through the site.
type Item struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Type        string         `gorm:"type:varchar(10);not null;index" json:"type"`
	Name        string         `gorm:"size:255" json:"name,omitempty"`
	Email       string         `gorm:"size:255;not null" json:"email"`
	ItemName    string         `gorm:"size:255;not null" json:"item_name"`
	Category    string         `gorm:"size:50;not null;index" json:"category"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Location    string         `gorm:"size:255;not null" json:"location"`
	Date        datatypes.Date `gorm:"not null" json:"date"`
	ImageURL    string         `gorm:"size:1024" json:"image_url,omitempty"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// Categories offered by the report form. The data layer does not enforce
// membership; only the form does.
var Categories = []string{
	"ID Card",
	"Electronics",
	"Clothing",
	"Accessories",
	"Books",
	"Keys",
	"Water Bottle",
	"Bag/Backpack",
	"Wallet",
	"Other",
}
