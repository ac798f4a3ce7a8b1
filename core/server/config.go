package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the admin API.
	ApiKey string `mapstructure:"api_key" default:""`
	// WebhookSecret is the shared secret expected in the x-webhook-secret
	// header of object-store webhook notifications.
	WebhookSecret string `mapstructure:"webhook_secret" default:""`
}
