package endpoint

import (
	"os"

	"gopkg.in/yaml.v3"
)

// PortConfig describes one port a server opens.
type PortConfig struct {
	Name      string   `yaml:"name"`
	IP        string   `yaml:"ip,omitempty"`
	Port      uint16   `yaml:"port"`
	Protocols []string `yaml:"protocols"`
}

// Config is the subset of a server configuration the resolver consumes.
type Config struct {
	Server []PortConfig `yaml:"server"`
}

// Load reads a YAML configuration from path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
