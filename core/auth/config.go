package auth

// Config holds configuration for access token signing.
type Config struct {
	// Secret is the HMAC key used to sign access tokens.
	Secret string `mapstructure:"secret" default:"change-me"`
	// TokenTTLMinutes is the access token lifetime in minutes.
	TokenTTLMinutes int `mapstructure:"token_ttl_minutes" default:"60"`
}
