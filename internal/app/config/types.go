package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}
	MongoDB struct {
		URI      string
		Port     string
		Host     string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)

type InternalConfig struct {
	App      App
	JWT      AppJWT
	MongoDB  AppMongoDB
	RabbitMQ AppRabbitMQ
	Minio    AppMinio
}

type App struct {
	Env                          string
	Port                         string
	Version                      string
	MaxRequests                  int
	ShutdownTimeoutInSeconds     int
	RequestBodyLimitInMegabyte   int
	ProtectUserList              bool
	TokenIssueLimitPerMinute     int
	BookingLockTTLInSeconds      int
	BookingLockMaxAttempts       int
	DoctorImageMaxUploadSizeInMB int
}

type AppJWT struct {
	Secret        string
	ExpTimeInHour int
}

type AppMongoDB struct {
	DbName string
}

type AppRabbitMQ struct {
	BookingQueue string
}

type AppMinio struct {
	BucketName string
}
