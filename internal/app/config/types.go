package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		SMTP     SMTP
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}
)

type (
	InternalConfig struct {
		App            App
		JWT            JWT
		PaymentGateway PaymentGateway
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Address                   string
		Timezone                  string
		EndpointPrefix            string
		FrontendURL               string
		BackendURL                string
		RabbitMQMailerQueue       string
		MaxRequests               int
		ShutdownTimeout           int
		MaxTimeRequestsPerSeconds int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	PaymentGateway struct {
		StoreID       string
		StorePassword string
		BaseUrl       string
		// RequestTimeoutInSeconds bounds each outbound initiation call.
		RequestTimeoutInSeconds int
		// MaxRequestsPerSecond throttles outbound initiation calls.
		MaxRequestsPerSecond float64
		// PendingTTLInMinutes is how long an appointment may stay pending
		// before the reconciler reverts it to unpaid.
		PendingTTLInMinutes int
		// ReconcileIntervalInMinutes is the sweep cadence.
		ReconcileIntervalInMinutes int
	}
)
