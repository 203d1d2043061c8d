package constvars

const (
	SSLCommerzInitiatePath = "/gwprocess/v4/api.php"
)

// SSLCommerzCallbackStatus is the typed payment status posted back by SSLCommerz.
type SSLCommerzCallbackStatus string

const (
	SSLCommerzStatusValid     SSLCommerzCallbackStatus = "VALID"
	SSLCommerzStatusValidated SSLCommerzCallbackStatus = "VALIDATED"
	SSLCommerzStatusFailed    SSLCommerzCallbackStatus = "FAILED"
	SSLCommerzStatusCancelled SSLCommerzCallbackStatus = "CANCELLED"
)

const (
	SSLCommerzInitiateStatusSuccess = "SUCCESS"
	SSLCommerzInitiateStatusFailed  = "FAILED"
)

const (
	SSLCommerzShippingMethodNone  = "NO"
	SSLCommerzProductName         = "Appointment"
	SSLCommerzProductCategory     = "Appointment"
	SSLCommerzProductProfile      = "non-physical-goods"
	SSLCommerzMultiCardNames      = "mastercard,visacard,amexcard"
	SSLCommerzDefaultCurrency     = "BDT"
	SSLCommerzDefaultCustomerCity = "Dhaka"
)
