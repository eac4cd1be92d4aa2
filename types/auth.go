package types

type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

type SignUpRequest struct {
	Email     string `form:"email" json:"email" binding:"required,email"`
	FirstName string `form:"first_name" json:"first_name" binding:"required"`
	Password  string `form:"password" json:"password" binding:"required,min=7"`
}
