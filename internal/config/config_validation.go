// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marat Zhalilov

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token signing key must come from configuration: the application
// refuses to start with an empty key rather than falling back to a
// hardcoded secret.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrNoTokenSignKey
	}

	if cfg.App.TokenDuration <= 0 {
		return ErrInvalidTokenDuration
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrNoServerAddress
	}

	return nil
}
