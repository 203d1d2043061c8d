package requests

type CreateUser struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=8"`
	UserImg  string `json:"user_img"`
	Role     string `json:"role" validate:"omitempty,role"`
}
