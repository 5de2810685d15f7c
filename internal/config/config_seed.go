// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// SeedAdapter holds the API client settings used by the seeder.
type SeedAdapter struct {
	// HTTPAddress is the API base address.
	HTTPAddress string
	// RequestTimeout is the timeout of every outbound request.
	RequestTimeout time.Duration
	// HashKey signs request bodies when non-empty.
	HashKey string
}

// SeedConfig is the seeder view of [StructuredConfig].
type SeedConfig struct {
	Adapter SeedAdapter

	// Email and Password identify the demo account.
	Email    string
	Password string

	// Days is the number of past days filled with meals.
	Days int
}

// GetSeedConfig builds and validates the seeder configuration from the
// merged structured configuration. Server-only settings are not required.
func GetSeedConfig() (*SeedConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	seedCfg := &SeedConfig{
		Adapter: SeedAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			HashKey:        cfg.App.HashKey,
		},
		Email:    cfg.Seed.Email,
		Password: cfg.Seed.Password,
		Days:     cfg.Seed.Days,
	}

	return seedCfg, seedCfg.validate()
}
