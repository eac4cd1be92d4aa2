package types

// ContactRequest is the contact form. Email format validation runs through
// the binding layer, before any persistence.
type ContactRequest struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Email   string `form:"email" json:"email" binding:"required,email"`
	Message string `form:"message" json:"message" binding:"required"`
}
