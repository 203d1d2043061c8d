package responses

type CompleteAppointment struct {
	HistoryID    string `json:"history_id"`
	DeletedCount int64  `json:"deleted_count"`
}
