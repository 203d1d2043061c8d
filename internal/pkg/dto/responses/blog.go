package responses

type UploadBlogImage struct {
	URL string `json:"url"`
}
