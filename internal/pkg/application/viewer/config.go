package viewer

import (
	"io"

	yaml "gopkg.in/yaml.v2"
)

type ProjectConfig struct {
	ID       string `yaml:"id"`
	Endpoint string `yaml:"endpoint"`
}

type Config struct {
	Projects []ProjectConfig `yaml:"projects"`
}

// NewSingleProjectConfig covers the common deployment with one project
// resolved from the environment at process start
func NewSingleProjectConfig(projectID, endpoint string) Config {
	return Config{
		Projects: []ProjectConfig{{ID: projectID, Endpoint: endpoint}},
	}
}

func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
