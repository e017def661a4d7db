package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// fipePlaceholderKey is the sample value shipped in .env templates; treating
// it as unconfigured keeps fresh checkouts in mock mode instead of burning
// failed lookups against the real API.
const fipePlaceholderKey = "your_api_key_here"

// Credentials holds the secret material read from the environment.
// Every credential is optional: missing calendar credentials switch the
// availability and scheduling paths into mock mode, a missing FIPE key
// switches quoting to the fixed mocked vehicle.
type Credentials struct {
	GoogleServiceAccountEmail string `envconfig:"GOOGLE_SERVICE_ACCOUNT_EMAIL"`
	GooglePrivateKey          string `envconfig:"GOOGLE_PRIVATE_KEY"`
	GoogleCalendarID          string `envconfig:"GOOGLE_CALENDAR_ID"`
	FipeAPIKey                string `envconfig:"FIPE_API_KEY"`
}

// LoadCredentials reads credentials from the environment, loading a local
// .env file first when one exists.
func LoadCredentials() (*Credentials, error) {
	// A missing .env is fine: on the hosting platform the variables come
	// from the process environment.
	_ = godotenv.Load()

	var creds Credentials
	if err := envconfig.Process("", &creds); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}
	return &creds, nil
}

// CalendarConfigured reports whether all calendar credentials are present
func (c *Credentials) CalendarConfigured() bool {
	return c.GoogleServiceAccountEmail != "" && c.GooglePrivateKey != "" && c.GoogleCalendarID != ""
}

// FipeConfigured reports whether a usable valuation API key is present
func (c *Credentials) FipeConfigured() bool {
	return c.FipeAPIKey != "" && c.FipeAPIKey != fipePlaceholderKey
}
