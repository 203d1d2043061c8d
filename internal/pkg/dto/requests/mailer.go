package requests

// EmailPayload travels through the notification queue from the payment
// usecase to the mail delivery worker.
type EmailPayload struct {
	ReceiverEmail string `json:"receiver_email"`
	Subject       string `json:"subject"`
	Body          string `json:"body"`
	HTML          bool   `json:"html"`
}
