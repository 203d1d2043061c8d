package requests

type CreateProvider struct {
	Name        string  `json:"name" validate:"required"`
	Email       string  `json:"email" validate:"required,email"`
	Category    string  `json:"category" validate:"required"`
	UserImg     string  `json:"user_img"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Phone       string  `json:"phone"`
	Rating      float64 `json:"rating" validate:"gte=0"`
}
