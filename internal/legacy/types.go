package legacy

// Well-known keys the browser app used in localStorage. The local
// snapshot directory mirrors them, one JSON file per key.
const (
	ItemsKey    = "campus_lost_found_items"
	ContactsKey = "campus_lost_found_contacts"
)

// Item is the legacy record shape. It matches the canonical item except
// that timestamps are strings and the image field may hold an embedded
// data: URI instead of a remote pointer.
type Item struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email"`
	ItemName    string `json:"item_name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	ImageURL    string `json:"image_url,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// ContactRequest is the legacy contact record shape.
type ContactRequest struct {
	ID        string `json:"id"`
	ItemID    string `json:"item_id"`
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	ToEmail   string `json:"to_email"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
	IsRead    bool   `json:"is_read"`
}
