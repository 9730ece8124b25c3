package cmd

// Config carries every runtime setting of the service.
// Values come from the environment, optionally seeded from a .env file.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr         string
	SessionTTLMinutes int

	// DispatchEnabled turns on the background job that assigns pending
	// parcels automatically. Off by default: assignment stays manual.
	DispatchEnabled bool
	DispatchCron    string
}
