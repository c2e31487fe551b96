package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/kelseyhightower/envconfig"
)

// Placeholder fragment left in the sample deployment URL shipped with the
// project. An endpoint that still contains it was never pointed at a real
// deployment.
const placeholderFragment = "W1W2W3"

type Config struct {
	Addr string `envconfig:"STOREFRONT_ADDR" default:":8080"`

	// OrderEndpoint is the spreadsheet-script URL that receives orders and
	// serves the remote catalog (?action=getProducts).
	OrderEndpoint string `envconfig:"ORDER_ENDPOINT_URL"`

	// GeminiAPIKey enables the support chat. Empty means the chat degrades
	// to its offline fallback reply.
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	ChatModel    string `envconfig:"CHAT_MODEL" default:"gemini-2.0-flash"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, errors.Wrap(err, "process env config")
	}
	return cfg, nil
}

// ValidateEndpoint reports whether the order endpoint is usable. A missing or
// placeholder URL is a warning condition, not a fatal one: the storefront
// keeps running on the bundled catalog and surfaces the message as a banner.
func (c Config) ValidateEndpoint() error {
	if strings.TrimSpace(c.OrderEndpoint) == "" {
		return errors.New("CONFIGURATION ERROR: ORDER_ENDPOINT_URL is not set")
	}
	if strings.Contains(c.OrderEndpoint, placeholderFragment) {
		return errors.New("CONFIGURATION ERROR: ORDER_ENDPOINT_URL still contains the placeholder deployment URL")
	}
	return nil
}
