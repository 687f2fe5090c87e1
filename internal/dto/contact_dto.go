package dto

// CreateContactRequest carries the contact form fields. The recipient is
// resolved server-side from the item being discussed.
type CreateContactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}
