package config

import (
	"fmt"
	"strings"

	"github.com/axent-pl/securitycontext/common"
	"github.com/axent-pl/securitycontext/mapx"
	"github.com/caarlos0/env/v11"
)

type Config struct {
	// SecurityEnabled=false makes the reader hand out a random user id per
	// call instead of the subject claim. Only for deployments whose clients
	// cannot authenticate yet.
	SecurityEnabled bool `env:"REST_SECURITY_ENABLED" envDefault:"true"`

	// Key of the raw token inside Authentication.Details
	TokenDetailsKey string `env:"SECURITY_TOKEN_DETAILS_KEY" envDefault:"tokenValue"`

	// Claim locations, see package mapx for the path syntax
	SubjectClaim    string `env:"SECURITY_SUBJECT_CLAIM" envDefault:".sub"`
	PermissionClaim string `env:"SECURITY_PERMISSION_CLAIM" envDefault:".permission"`
}

func Default() Config {
	return Config{
		SecurityEnabled: true,
		TokenDetailsKey: "tokenValue",
		SubjectClaim:    ".sub",
		PermissionClaim: ".permission",
	}
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom reads the configuration from environment, or from the process
// environment when environment is nil.
func LoadFrom(environment map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("%w: could not parse environment: %w", common.ErrInvalidInput, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TokenDetailsKey == "" {
		return fmt.Errorf("%w: empty token details key", common.ErrInvalidInput)
	}
	// mapx reads an empty path as the root, which never holds a claim value
	if strings.TrimSpace(c.SubjectClaim) == "" {
		return fmt.Errorf("%w: empty subject claim path", common.ErrInvalidInput)
	}
	if strings.TrimSpace(c.PermissionClaim) == "" {
		return fmt.Errorf("%w: empty permission claim path", common.ErrInvalidInput)
	}
	if _, err := mapx.Parse(c.SubjectClaim); err != nil {
		return fmt.Errorf("%w: subject claim path %q: %w", common.ErrInvalidInput, c.SubjectClaim, err)
	}
	if _, err := mapx.Parse(c.PermissionClaim); err != nil {
		return fmt.Errorf("%w: permission claim path %q: %w", common.ErrInvalidInput, c.PermissionClaim, err)
	}
	return nil
}
