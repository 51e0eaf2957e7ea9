// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

package config

import "testing"

const testDefaults = `
google:
  project: "test-project"

artifacts:
  bucket: "test-bucket"
  prefix: "artifacts/"

server:
  address: ":8080"
`

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load([]byte(testDefaults))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Google.Project != "test-project" {
		t.Errorf("expected project test-project, got %s", cfg.Google.Project)
	}
	if cfg.Artifacts.Prefix != "artifacts/" {
		t.Errorf("expected prefix artifacts/, got %s", cfg.Artifacts.Prefix)
	}
	if cfg.Server.Address != ":8080" {
		t.Errorf("expected address :8080, got %s", cfg.Server.Address)
	}
	if cfg.Document.Title == "" {
		t.Error("expected default document metadata")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("AGENT_ARTIFACTS_BUCKET", "override-bucket")
	t.Setenv("AGENT_SERVER_ADDRESS", ":9090")

	cfg, err := Load([]byte(testDefaults))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Artifacts.Bucket != "override-bucket" {
		t.Errorf("expected env override for bucket, got %s", cfg.Artifacts.Bucket)
	}
	if cfg.Server.Address != ":9090" {
		t.Errorf("expected env override for address, got %s", cfg.Server.Address)
	}
	if cfg.Google.Project != "test-project" {
		t.Errorf("expected non-overridden value kept, got %s", cfg.Google.Project)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	if _, err := Load([]byte("not: [valid")); err == nil {
		t.Error("expected error for invalid yaml")
	}
}
