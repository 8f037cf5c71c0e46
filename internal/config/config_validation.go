// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Filali Empire

package config

import (
	"net/url"
	"time"
)

const (
	defaultHTTPAddress    = "0.0.0.0:8080"
	defaultRequestTimeout = 15 * time.Second
	defaultRecentWindow   = 7 * 24 * time.Hour
)

// applyDefaults fills zero-valued fields that have sensible defaults so the
// rest of the application never has to guard against them.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.RecentWindow == 0 {
		cfg.App.RecentWindow = defaultRecentWindow
	}
	if cfg.Collaborators.Payments.RequestTimeout == 0 {
		cfg.Collaborators.Payments.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Collaborators.Calendar.RequestTimeout == 0 {
		cfg.Collaborators.Calendar.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Collaborators.Dispatcher.RequestTimeout == 0 {
		cfg.Collaborators.Dispatcher.RequestTimeout = defaultRequestTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	for _, raw := range []string{
		cfg.Collaborators.Payments.BaseURL,
		cfg.Collaborators.Calendar.BaseURL,
		cfg.Collaborators.Dispatcher.MassEmailURL,
		cfg.Collaborators.Dispatcher.EventURL,
	} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return ErrInvalidCollaboratorConfigs
		}
	}

	return nil
}
