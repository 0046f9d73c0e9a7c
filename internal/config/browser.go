package config

import (
	"fmt"
	"os"
)

// BrowserConfig holds configuration for the browser the widget tests run in
type BrowserConfig struct {
	Name     string
	Headless bool
}

var supportedBrowsers = map[string]bool{
	"chromium": true,
	"firefox":  true,
	"webkit":   true,
}

// LoadBrowserConfig loads browser configuration from environment variables,
// falling back to the defaults from the fixture config file
func LoadBrowserConfig(defaults *FileConfig) (*BrowserConfig, error) {
	config := BrowserConfig{
		Name:     os.Getenv("BROWSER"),
		Headless: true,
	}

	if config.Name == "" && defaults != nil {
		config.Name = defaults.Browser
	}
	if config.Name == "" {
		config.Name = "chromium" // Default to chromium
	}
	if !supportedBrowsers[config.Name] {
		return nil, fmt.Errorf("BROWSER must be one of chromium, firefox, webkit, got %q", config.Name)
	}

	if defaults != nil && defaults.Headless != nil {
		config.Headless = *defaults.Headless
	}
	switch os.Getenv("HEADLESS") {
	case "":
	case "false", "0", "no":
		config.Headless = false
	default:
		config.Headless = true
	}

	return &config, nil
}
