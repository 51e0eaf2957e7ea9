// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package config loads process-wide configuration once at startup from
// embedded YAML defaults with environment variable overrides. Components
// receive the parts they need by value and never read ambient state.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/thisisashwinraj/agent-after-dark/internal/recipedoc"
)

// envPrefix is the prefix of environment variables overriding configuration,
// e.g. AGENT_ARTIFACTS_BUCKET overrides artifacts.bucket.
const envPrefix = "AGENT_"

// Google is configuration for Google Cloud access.
type Google struct {
	// Project is the GCP project ID.
	Project string `koanf:"project"`
}

// Artifacts is configuration for the artifact store.
type Artifacts struct {
	// Bucket is the Cloud Storage bucket holding artifacts.
	Bucket string `koanf:"bucket"`

	// Prefix is the object path prefix for artifact keys.
	Prefix string `koanf:"prefix"`
}

// Server is configuration for the HTTP server.
type Server struct {
	// Address is the listen address, e.g. ":8080".
	Address string `koanf:"address"`
}

// Config is the full configuration of the process.
type Config struct {
	// Google is configuration for Google Cloud access.
	Google Google `koanf:"google"`

	// Artifacts is configuration for the artifact store.
	Artifacts Artifacts `koanf:"artifacts"`

	// Server is configuration for the HTTP server.
	Server Server `koanf:"server"`

	// Document is the metadata embedded in generated documents.
	Document recipedoc.Metadata `koanf:"document"`
}

// Load parses the embedded YAML defaults and applies environment variable
// overrides.
func Load(defaults []byte) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(defaults), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("config: loading defaults: %w", err)
	}
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key string, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			return strings.ReplaceAll(key, "_", "."), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("config: loading environment: %w", err)
	}

	cfg := &Config{
		Document: recipedoc.DefaultMetadata(),
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshalling: %w", err)
	}
	return cfg, nil
}
