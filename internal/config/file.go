package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig holds the optional file-based defaults for the fixture
// harness. Environment variables always win over the file.
type FileConfig struct {
	Port     string `yaml:"port"`
	Browser  string `yaml:"browser"`
	Headless *bool  `yaml:"headless"`
}

// defaultConfigFile is looked up relative to the working directory when
// FIXTURE_CONFIG is not set.
const defaultConfigFile = "fixture.yaml"

// LoadFileConfig reads the fixture config file named by FIXTURE_CONFIG, or
// fixture.yaml in the working directory. A missing default file is not an
// error; a missing explicitly-named file is.
func LoadFileConfig() (*FileConfig, error) {
	path := os.Getenv("FIXTURE_CONFIG")
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var config FileConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &config, nil
}
