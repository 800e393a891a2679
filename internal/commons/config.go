package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"breadlab/internal/config"
)

// LoadConfig reads a yaml config file. When the file does not exist the
// environment-based loader is used instead, so deployments can run with
// env vars only.
func LoadConfig(path string) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config.Load()
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}
