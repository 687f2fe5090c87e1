package dto

// CreateItemRequest carries the report form fields. Date is the
// user-asserted day the item was lost/found, formatted YYYY-MM-DD.
// The image, if any, arrives as a separate multipart file part and is
// uploaded before the insert; ImageURL holds the result.
type CreateItemRequest struct {
	Type        string `json:"type" form:"type"`
	Name        string `json:"name" form:"name"`
	Email       string `json:"email" form:"email"`
	ItemName    string `json:"item_name" form:"item_name"`
	Category    string `json:"category" form:"category"`
	Description string `json:"description" form:"description"`
	Location    string `json:"location" form:"location"`
	Date        string `json:"date" form:"date"`
	ImageURL    string `json:"-" form:"-"`
}

// ItemFilter selects listings. Zero values (and the literal "all") mean
// "no restriction"; supplied predicates are ANDed together.
type ItemFilter struct {
	Type     string
	Category string
	Search   string
	Limit    int
}
