package constvars

const (
	MongoCollectionUsers              = "users"
	MongoCollectionProviders          = "providers"
	MongoCollectionCategories         = "categories"
	MongoCollectionAppointments       = "appointments"
	MongoCollectionAppointmentHistory = "appointmentHistory"
	MongoCollectionBlogs              = "blogs"
	MongoCollectionReviews            = "reviews"
	MongoCollectionContacts           = "contacts"
)
