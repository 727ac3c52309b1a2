package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/hirokinko/datastore-viewer/internal/pkg/application/viewer"
	"github.com/hirokinko/datastore-viewer/internal/pkg/infrastructure/router"
	"github.com/hirokinko/datastore-viewer/internal/pkg/presentation/api/admin"
)

const appName string = "datastore-viewer"

func main() {
	appVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), appName, appVersion, "json")
	defer cleanup()

	cfg, err := loadConfiguration(ctx)
	if err != nil {
		log.Error("failed to load configuration", "err", err.Error())
		os.Exit(1)
	}

	debug := env.GetVariableOrDefault(ctx, "DATASTORE_VIEWER_DEBUG", "false")

	app, err := viewer.New(ctx, cfg, viewer.Debug(debug))
	if err != nil {
		log.Error("failed to create application", "err", err.Error())
		os.Exit(1)
	}

	r := router.New(appName, router.WithDebugLogging(debug == "true"))

	err = admin.RegisterHandlers(ctx, r, app)
	if err != nil {
		log.Error("failed to register handlers", "err", err.Error())
		os.Exit(1)
	}

	port := env.GetVariableOrDefault(ctx, "SERVICE_PORT", "8080")
	log.Info("starting to listen for connections", "port", port)

	err = http.ListenAndServe(":"+port, r)
	if err != nil {
		log.Error("failed to listen for connections", "err", err.Error())
		os.Exit(1)
	}
}

// loadConfiguration resolves the project list once at startup, either
// from a YAML file naming several projects or from the environment for
// the single project case
func loadConfiguration(ctx context.Context) (viewer.Config, error) {
	configPath := env.GetVariableOrDefault(ctx, "DATASTORE_VIEWER_CONFIG", "")
	if configPath != "" {
		f, err := os.Open(configPath)
		if err != nil {
			return viewer.Config{}, err
		}
		defer f.Close()

		cfg, err := viewer.LoadConfiguration(f)
		if err != nil {
			return viewer.Config{}, err
		}

		return *cfg, nil
	}

	projectID := env.GetVariableOrDefault(ctx, "GOOGLE_CLOUD_PROJECT", "")
	if projectID == "" {
		return viewer.Config{}, fmt.Errorf("environment variable GOOGLE_CLOUD_PROJECT is not set")
	}

	endpoint := env.GetVariableOrDefault(ctx, "DATASTORE_ENDPOINT", "https://datastore.googleapis.com")

	// the emulator advertises itself without a scheme
	if emulator := env.GetVariableOrDefault(ctx, "DATASTORE_EMULATOR_HOST", ""); emulator != "" {
		if !strings.Contains(emulator, "://") {
			emulator = "http://" + emulator
		}
		endpoint = emulator
	}

	return viewer.NewSingleProjectConfig(projectID, endpoint), nil
}
