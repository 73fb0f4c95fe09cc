package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWithEnvSecret(t *testing.T) {
	t.Setenv("FRIENDSYNC_JWT_SECRET", "s3cret")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":8080" || cfg.DataDir != "data" {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.JWTSecret != "s3cret" {
		t.Errorf("jwt secret = %q", cfg.JWTSecret)
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("FRIENDSYNC_JWT_SECRET", "")

	if _, err := Load(""); err == nil {
		t.Fatal("missing jwt secret should fail")
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	t.Setenv("FRIENDSYNC_JWT_SECRET", "env-secret")
	t.Setenv("FRIENDSYNC_ADDR", ":9999")

	path := filepath.Join(t.TempDir(), "config.json")
	body := `{"addr": ":7070", "data_dir": "/var/lib/friendsync", "database_url": "postgres://db/friendsync"}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":9999" {
		t.Errorf("env override lost: addr = %q", cfg.Addr)
	}
	if cfg.DataDir != "/var/lib/friendsync" || cfg.DatabaseURL != "postgres://db/friendsync" {
		t.Errorf("file values lost: %+v", cfg)
	}
}

func TestLoadMissingFileIsOK(t *testing.T) {
	t.Setenv("FRIENDSYNC_JWT_SECRET", "s3cret")

	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err != nil {
		t.Fatal(err)
	}
}

func TestLoadBadJSON(t *testing.T) {
	t.Setenv("FRIENDSYNC_JWT_SECRET", "s3cret")

	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("invalid json should fail")
	}
}
