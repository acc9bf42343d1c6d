package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables recognized for credentials. A .env file in the
// working directory is honored as well.
const (
	EnvSNCFAPIKey   = "SNCF_API_KEY"
	EnvPRIMAPIKey   = "PRIM_API_KEY"
	EnvSlackToken   = "SLACK_BOT_TOKEN"
	EnvSlackChannel = "SLACK_CHANNEL"
)

// MissingKeyError reports a required environment value that is absent.
// It is raised before any network call is attempted.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("%s not found in environment (set it or add it to a .env file)", e.Key)
}

// Credentials are the secrets read from the environment. Which ones are
// required depends on the feed and on whether notification is exercised;
// the Require* helpers validate per feature path.
type Credentials struct {
	SNCFAPIKey   string
	PRIMAPIKey   string
	SlackToken   string
	SlackChannel string
}

// LoadCredentials reads the environment, merging in a .env file when one
// exists. A missing .env file is not an error.
func LoadCredentials() Credentials {
	_ = godotenv.Load()

	return Credentials{
		SNCFAPIKey:   os.Getenv(EnvSNCFAPIKey),
		PRIMAPIKey:   os.Getenv(EnvPRIMAPIKey),
		SlackToken:   os.Getenv(EnvSlackToken),
		SlackChannel: os.Getenv(EnvSlackChannel),
	}
}

// APIKeyFor returns the API key for the named source ("sncf" or "prim"),
// failing when it is absent or the source is unknown.
func (c Credentials) APIKeyFor(source string) (string, error) {
	switch source {
	case "sncf":
		if c.SNCFAPIKey == "" {
			return "", &MissingKeyError{Key: EnvSNCFAPIKey}
		}
		return c.SNCFAPIKey, nil
	case "prim":
		if c.PRIMAPIKey == "" {
			return "", &MissingKeyError{Key: EnvPRIMAPIKey}
		}
		return c.PRIMAPIKey, nil
	default:
		return "", fmt.Errorf("unknown departure source %q (expected sncf or prim)", source)
	}
}

// RequireSlack validates the notifier credentials.
func (c Credentials) RequireSlack() error {
	if c.SlackToken == "" {
		return &MissingKeyError{Key: EnvSlackToken}
	}
	if c.SlackChannel == "" {
		return &MissingKeyError{Key: EnvSlackChannel}
	}
	return nil
}
