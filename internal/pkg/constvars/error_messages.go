package constvars

// Client-facing messages
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process your request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please login first"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again later"
	ErrClientInvalidUsernameOrPassword     = "Invalid username or password"
	ErrClientEmailAlreadyExists            = "Email already exists"
	ErrClientAppointmentNotFound           = "Appointment not found"
	ErrClientTransactionNotFound           = "Transaction not found"
	ErrClientInvalidPayment                = "Invalid payment"
	ErrClientAppointmentNotPayable         = "One or more appointments cannot be paid"
	ErrClientPaymentGatewayUnavailable     = "Payment service is currently unavailable, please try again later"
	ErrClientUserNotFound                  = "User not found"
	ErrClientProviderNotFound              = "Provider not found"
	ErrClientBlogNotFound                  = "Blog not found"
	ErrClientAuthorNotFound                = "Author not found"
)

// Developer-facing messages
const (
	ErrDevValidationFailed           = "request validation failed"
	ErrDevCannotParseJSON            = "failed to parse JSON body"
	ErrDevCannotMarshalJSON          = "failed to marshal JSON"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevServerProcess              = "failed to process request"
	ErrDevURLParamIDValidationFailed = "invalid or missing URL parameter: %s"

	ErrDevAuthTokenMissing          = "authorization token is missing"
	ErrDevAuthTokenInvalid          = "authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or expired"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevAuthSigningMethod         = "unexpected token signing method"
	ErrDevRoleTypeDoesntMatch       = "user role does not match required role"
	ErrDevInvalidCredentials        = "invalid credentials supplied"
	ErrDevFailedToHashPassword      = "failed to hash password"

	ErrDevDBFailedToFindDocument    = "mongodb: failed to find document"
	ErrDevDBFailedToInsertDocument  = "mongodb: failed to insert document"
	ErrDevDBFailedToUpdateDocument  = "mongodb: failed to update document"
	ErrDevDBFailedToDeleteDocument  = "mongodb: failed to delete document"
	ErrDevDBFailedToIterateDocuments = "mongodb: failed to iterate documents"
	ErrDevDBStringNotObjectID       = "mongodb: provided string is not a valid ObjectID"

	ErrDevRedisGetNoData = "redis: no data for key %s"
	ErrDevRedisSetData   = "redis: failed to set data"
	ErrDevRedisGetData   = "redis: failed to get data"
	ErrDevRedisDeleteData = "redis: failed to delete data"
	ErrDevRedisUnlock     = "redis: failed to release lock"

	ErrDevRabbitMQPublish = "rabbitmq: failed to publish message to queue %s"

	ErrDevSMTPSendEmail = "smtp: failed to send email via host %s"

	ErrDevMinioFailedToCreateObject = "minio: failed to create object in bucket %s"

	ErrDevGatewayBuildRequest     = "payment gateway: failed to build initiation request"
	ErrDevGatewaySendRequest      = "payment gateway: failed to reach gateway"
	ErrDevGatewayDecodeResponse   = "payment gateway: failed to decode initiation response"
	ErrDevGatewayInitiateRejected = "payment gateway: initiation rejected: %s"

	ErrDevPaymentInvalidStatus      = "payment callback status is not valid"
	ErrDevPaymentTransactionUnknown = "no appointment carries the callback transaction id"
	ErrDevAppointmentNotFound       = "appointment does not exist"
	ErrDevAppointmentNotPayable     = "appointment is missing or already entered the payment lifecycle"
	ErrDevHistoryInsertFailed       = "history: failed to archive completed appointment"
)
