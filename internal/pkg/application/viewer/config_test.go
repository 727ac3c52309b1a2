package viewer

import (
	"bytes"
	"testing"

	"github.com/matryer/is"
)

func TestLoadConfiguration(t *testing.T) {
	is := is.New(t)

	cfg, err := LoadConfiguration(bytes.NewBufferString(configFile))

	is.NoErr(err)
	is.Equal(len(cfg.Projects), 2)
	is.Equal(cfg.Projects[0].ID, "test-project")
	is.Equal(cfg.Projects[0].Endpoint, "http://localhost:8081")
	is.Equal(cfg.Projects[1].ID, "other-project")
}

func TestLoadConfigurationFailsOnBrokenYaml(t *testing.T) {
	is := is.New(t)

	_, err := LoadConfiguration(bytes.NewBufferString("projects: [broken"))

	is.True(err != nil)
}

var configFile string = `
projects:
  - id: test-project
    endpoint: http://localhost:8081
  - id: other-project
    endpoint: https://datastore.googleapis.com
`
