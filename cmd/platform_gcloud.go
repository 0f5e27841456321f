//go:build gcloud

package main

import (
	"context"
	"os"

	"github.com/KasumiMercury/primind-timebomb/internal/config"
	"github.com/KasumiMercury/primind-timebomb/internal/observability"
	"github.com/KasumiMercury/primind-timebomb/internal/observability/logging"
)

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = "timebomb"
	}

	env := logging.EnvProd
	if os.Getenv("ENV") != "" {
		env = logging.Environment(cfg.Env)
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = os.Getenv("GCLOUD_PROJECT_ID")
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("K_REVISION"),
		},
		Environment:   env,
		LogLevel:      cfg.LogLevel,
		GCPProjectID:  projectID,
		SamplingRate:  1.0,
		DefaultModule: logging.Module("timebomb"),
	})
	if err != nil {
		return nil, err
	}

	return obs, nil
}
