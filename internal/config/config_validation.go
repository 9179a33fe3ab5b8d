// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidServerConfigs)
	}
	if cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative shutdown timeout", ErrInvalidServerConfigs)
	}

	endpoint, err := url.Parse(cfg.Upstream.Endpoint)
	if err != nil || endpoint.Host == "" || (endpoint.Scheme != "http" && endpoint.Scheme != "https") {
		return fmt.Errorf("%w: endpoint %q is not an absolute http(s) URL", ErrInvalidUpstreamConfigs, cfg.Upstream.Endpoint)
	}
	if (cfg.Upstream.Username == "") != (cfg.Upstream.Password == "") {
		return fmt.Errorf("%w: username and password must be set together", ErrInvalidUpstreamConfigs)
	}

	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	return nil
}
