package responses

type IssueToken struct {
	Token string `json:"token"`
}
