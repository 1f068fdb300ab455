package config

// AppConfig holds the application configuration
type AppConfig struct {
	DBURL          string
	RedisAddress   string
	SymmetricKey   string
	Port           string
	AdminPassword  string
	AllowedOrigins []string

	// SMTP settings are optional; when SMTPHost is empty the appointment
	// notifier stays disabled.
	SMTPHost    string
	SMTPPort    int
	SMTPUser    string
	SMTPPass    string
	NotifyEmail string
}

// GetSymmetricKey returns the key used to seal session cookies.
func (c *AppConfig) GetSymmetricKey() []byte {
	return []byte(c.SymmetricKey)
}

// MailerEnabled reports whether the appointment notifier is configured.
func (c *AppConfig) MailerEnabled() bool {
	return c.SMTPHost != "" && c.NotifyEmail != ""
}
