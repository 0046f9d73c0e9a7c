package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadServerConfig(t *testing.T) {
	t.Run("defaults to 8080", func(t *testing.T) {
		t.Setenv("PORT", "")
		cfg := LoadServerConfig(nil)
		if cfg.Port != "8080" {
			t.Errorf("Expected port 8080, got %s", cfg.Port)
		}
	})

	t.Run("environment wins over file", func(t *testing.T) {
		t.Setenv("PORT", "9999")
		cfg := LoadServerConfig(&FileConfig{Port: "7777"})
		if cfg.Port != "9999" {
			t.Errorf("Expected port 9999, got %s", cfg.Port)
		}
	})

	t.Run("file defaults apply without environment", func(t *testing.T) {
		t.Setenv("PORT", "")
		cfg := LoadServerConfig(&FileConfig{Port: "7777"})
		if cfg.Port != "7777" {
			t.Errorf("Expected port 7777, got %s", cfg.Port)
		}
	})
}

func TestLoadBrowserConfig(t *testing.T) {
	t.Run("defaults to headless chromium", func(t *testing.T) {
		t.Setenv("BROWSER", "")
		t.Setenv("HEADLESS", "")
		cfg, err := LoadBrowserConfig(nil)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.Name != "chromium" {
			t.Errorf("Expected chromium, got %s", cfg.Name)
		}
		if !cfg.Headless {
			t.Error("Expected headless by default")
		}
	})

	t.Run("rejects unknown browser", func(t *testing.T) {
		t.Setenv("BROWSER", "netscape")
		if _, err := LoadBrowserConfig(nil); err == nil {
			t.Error("Expected an error for unknown browser")
		}
	})

	t.Run("headless can be disabled", func(t *testing.T) {
		t.Setenv("BROWSER", "firefox")
		t.Setenv("HEADLESS", "false")
		cfg, err := LoadBrowserConfig(nil)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.Name != "firefox" {
			t.Errorf("Expected firefox, got %s", cfg.Name)
		}
		if cfg.Headless {
			t.Error("Expected headless to be disabled")
		}
	})

	t.Run("file default applies without environment", func(t *testing.T) {
		t.Setenv("BROWSER", "")
		t.Setenv("HEADLESS", "")
		headless := false
		cfg, err := LoadBrowserConfig(&FileConfig{Browser: "webkit", Headless: &headless})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.Name != "webkit" {
			t.Errorf("Expected webkit, got %s", cfg.Name)
		}
		if cfg.Headless {
			t.Error("Expected headless from file default")
		}
	})
}

func TestLoadFileConfig(t *testing.T) {
	t.Run("missing default file is not an error", func(t *testing.T) {
		t.Setenv("FIXTURE_CONFIG", "")
		cfg, err := LoadFileConfig()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg != nil {
			t.Errorf("Expected nil config, got %+v", cfg)
		}
	})

	t.Run("missing named file is an error", func(t *testing.T) {
		t.Setenv("FIXTURE_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))
		if _, err := LoadFileConfig(); err == nil {
			t.Error("Expected an error for a missing named file")
		}
	})

	t.Run("parses yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fixture.yaml")
		content := "port: \"8123\"\nbrowser: firefox\nheadless: false\n"
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("FIXTURE_CONFIG", path)
		cfg, err := LoadFileConfig()
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if cfg.Port != "8123" {
			t.Errorf("Expected port 8123, got %s", cfg.Port)
		}
		if cfg.Browser != "firefox" {
			t.Errorf("Expected browser firefox, got %s", cfg.Browser)
		}
		if cfg.Headless == nil || *cfg.Headless {
			t.Error("Expected headless false")
		}
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "fixture.yaml")
		if err := os.WriteFile(path, []byte("port: [\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		t.Setenv("FIXTURE_CONFIG", path)
		if _, err := LoadFileConfig(); err == nil {
			t.Error("Expected an error for malformed yaml")
		}
	})
}
