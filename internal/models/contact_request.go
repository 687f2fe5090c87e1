package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactRequest relays a message about an Item without exposing either
// party's email in the UI. ToEmail is copied from the Item at submission
// time; a later change to the item's email does not propagate.
type ContactRequest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ItemID    uuid.UUID `gorm:"type:uuid;not null;index" json:"item_id"`
	FromName  string    `gorm:"size:255;not null" json:"from_name"`
	FromEmail string    `gorm:"size:255;not null" json:"from_email"`
	ToEmail   string    `gorm:"size:255;not null" json:"to_email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
