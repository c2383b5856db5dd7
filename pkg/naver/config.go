package naver

// Config represents the configuration for the Naver book search client
type Config struct {
	// ClientID is the Naver open API client id
	ClientID string

	// ClientSecret is the Naver open API client secret
	ClientSecret string

	// BaseURL is the Naver search API base URL
	BaseURL string
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.ClientID == "" {
		return ErrInvalidRequest
	}
	if c.ClientSecret == "" {
		return ErrInvalidRequest
	}
	if c.BaseURL == "" {
		return ErrInvalidRequest
	}
	return nil
}
