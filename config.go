package ukhotides

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig is the client configuration read from the environment. All
// variables carry the UKHOTIDES prefix, e.g. UKHOTIDES_API_KEY.
type EnvConfig struct {
	APIKey  string `envconfig:"API_KEY" required:"true"`
	Level   string `envconfig:"API_LEVEL" default:"discovery"`
	BaseURL string `envconfig:"BASE_URL"`
}

// envPrefix namespaces the environment variables read by NewClientFromEnv.
const envPrefix = "ukhotides"

// NewClientFromEnv builds a client from UKHOTIDES_* environment
// variables: UKHOTIDES_API_KEY (required), UKHOTIDES_API_LEVEL
// (discovery, foundation or premium; defaults to discovery) and
// UKHOTIDES_BASE_URL (defaults to the Admiralty gateway).
func NewClientFromEnv() (*Client, error) {
	var env EnvConfig
	if err := envconfig.Process(envPrefix, &env); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	level, err := ParseAPILevel(env.Level)
	if err != nil {
		return nil, err
	}

	return NewClient(ClientConfig{
		APIKey:  env.APIKey,
		Level:   level,
		BaseURL: env.BaseURL,
	})
}
