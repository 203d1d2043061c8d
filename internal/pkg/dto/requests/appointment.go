package requests

type CreateAppointment struct {
	Name            string  `json:"name"`
	Email           string  `json:"email" validate:"required,email"`
	ServiceName     string  `json:"service_name" validate:"required"`
	ServiceCategory string  `json:"service_category"`
	Date            string  `json:"date" validate:"required"`
	Time            string  `json:"time" validate:"required"`
	Price           float64 `json:"price" validate:"gte=0"`
}

type AssignAppointment struct {
	AppointmentID string `json:"appointment_id" validate:"required"`
	ProviderEmail string `json:"provider_email" validate:"required,email"`
	Status        string `json:"status" validate:"required"`
}

type ProgressAppointment struct {
	AppointmentID   string `json:"appointment_id" validate:"required"`
	Status          string `json:"status" validate:"required"`
	UserMeetingLink string `json:"user_meeting_link"`
}
