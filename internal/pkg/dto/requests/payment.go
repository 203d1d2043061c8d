package requests

type InitiatePayment struct {
	Amount               float64  `json:"amount" validate:"required,gt=0"`
	CustomerName         string   `json:"customer_name"`
	CustomerEmail        string   `json:"customer_email" validate:"required,email"`
	CustomerAddress      string   `json:"customer_address"`
	CustomerCity         string   `json:"customer_city"`
	CustomerState        string   `json:"customer_state"`
	CustomerPostcode     string   `json:"customer_postcode"`
	CustomerCountry      string   `json:"customer_country"`
	CustomerPhone        string   `json:"customer_phone"`
	SelectedAppointments []string `json:"selected_appointments" validate:"required,min=1,dive,required"`
}

// PaymentCallback carries the form fields SSLCommerz posts back to the
// success, fail and cancel URLs.
type PaymentCallback struct {
	Status        string `json:"status"`
	TransactionID string `json:"tran_id"`
	Amount        string `json:"amount"`
	Currency      string `json:"currency"`
}
