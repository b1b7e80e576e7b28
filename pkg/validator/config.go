package validator

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

// Config drives Middleware.
type Config struct {
	// Encoding is the charset label each per-request Validator uses.
	Encoding string `env:"VALIDATOR_ENCODING" envDefault:"UTF-8"`

	// RejectInvalid answers 400 when the preflight scans record anything,
	// instead of passing the request on with the failures recorded.
	RejectInvalid bool `env:"VALIDATOR_REJECT_INVALID" envDefault:"false"`

	// MaxFormMemory bounds the in-memory part of multipart form parsing.
	MaxFormMemory int64 `env:"VALIDATOR_MAX_FORM_MEMORY" envDefault:"10485760"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
