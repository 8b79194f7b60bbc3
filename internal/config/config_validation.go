// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DreamClick Authors

package config

import "time"

// Defaults applied after all sources are merged.
const (
	defaultTokenIssuer   = "dreamclick"
	defaultTokenDuration = 24 * time.Hour
	defaultHTTPAddress   = "localhost:8080"
	defaultSessionPath   = "dreamclick-session.db"
	defaultCheckInterval = 30 * time.Second
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Auth.TokenIssuer == "" {
		cfg.Auth.TokenIssuer = defaultTokenIssuer
	}
	if cfg.Auth.TokenDuration == 0 {
		cfg.Auth.TokenDuration = defaultTokenDuration
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Storage.Session.Path == "" {
		cfg.Storage.Session.Path = defaultSessionPath
	}
	if cfg.Workers.SessionCheckInterval == 0 {
		cfg.Workers.SessionCheckInterval = defaultCheckInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants needed at startup. Token signing parameters are only required by
// the server; validation of client-side fields happens in
// [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.TokenDuration < 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SessionCheckInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
