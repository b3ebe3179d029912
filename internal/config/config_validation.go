package config

import "time"

// Fallback values applied by applyDefaults when no configuration source
// provided an explicit setting.
const (
	defaultHTTPAddress   = ":8080"
	defaultDSN           = "chatvault.db"
	defaultTokenIssuer   = "chatvault"
	defaultTokenDuration = 24 * time.Hour
)

// applyDefaults fills zero-valued fields of the merged config with their
// built-in fallbacks. The token signing key deliberately has no default:
// running with a guessable key would make every session forgeable.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}

	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDSN
	}

	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}

	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenSignKey == "" {
		return ErrInvalidAuthConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
