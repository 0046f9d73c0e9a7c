package config

import "os"

// ServerConfig holds configuration for the fixture web server
type ServerConfig struct {
	Port string
}

// LoadServerConfig loads fixture server configuration from environment
// variables, falling back to the defaults from the fixture config file
func LoadServerConfig(defaults *FileConfig) ServerConfig {
	port := os.Getenv("PORT")
	if port == "" && defaults != nil {
		port = defaults.Port
	}
	if port == "" {
		port = "8080" // Default to port 8080
	}

	return ServerConfig{
		Port: port,
	}
}
