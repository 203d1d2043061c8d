package responses

type CreateUser struct {
	InsertedID string `json:"inserted_id,omitempty"`
}

type AdminFlag struct {
	Admin bool `json:"admin"`
}

type ProviderFlag struct {
	Provider bool `json:"provider"`
}
