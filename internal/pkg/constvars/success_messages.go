package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// User-related messages
	UserCreatedSuccess  = "user created successfully"
	UserAlreadyExists   = "already exist in database"
	UserPromotedToAdmin = "user promoted to admin successfully"

	// Provider-related messages
	ProviderCreatedSuccess = "provider added successfully"
	ProviderAlreadyExists  = "provider already exists"
	ProviderDeletedSuccess = "provider deleted successfully"

	// Appointment-related messages
	AppointmentCreatedSuccess   = "appointment created successfully"
	AppointmentUpdatedSuccess   = "appointment updated successfully"
	AppointmentDeletedSuccess   = "appointment deleted successfully"
	AppointmentCompletedSuccess = "appointment completed and archived successfully"
	AppointmentPartialComplete  = "appointment archived but source record could not be removed"

	// Payment-related messages
	PaymentInitiatedSuccess = "payment initiated successfully"

	// Auth messages
	TokenIssuedSuccess = "token issued successfully"

	// Blog messages
	BlogCreatedSuccess     = "blog created successfully"
	BlogImageUploadSuccess = "blog image uploaded successfully"

	// Contact messages
	ContactCreatedSuccess = "contact message stored successfully"
)
