package requests

type CreateBlog struct {
	Title       string  `json:"title" validate:"required"`
	Content     string  `json:"content" validate:"required"`
	AuthorEmail string  `json:"author_email" validate:"required,email"`
	Img         string  `json:"img"`
	TotalView   int     `json:"total_view" validate:"gte=0"`
	Rating      float64 `json:"rating" validate:"gte=0"`
	TotalRating int     `json:"total_rating" validate:"gte=0"`
}
