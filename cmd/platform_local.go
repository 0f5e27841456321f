//go:build !gcloud

package main

import (
	"context"
	"os"

	"github.com/KasumiMercury/primind-timebomb/internal/config"
	"github.com/KasumiMercury/primind-timebomb/internal/observability"
	"github.com/KasumiMercury/primind-timebomb/internal/observability/logging"
)

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "timebomb"
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: "",
		},
		Environment:   logging.Environment(cfg.Env),
		LogLevel:      cfg.LogLevel,
		GCPProjectID:  "",
		SamplingRate:  1.0,
		DefaultModule: logging.Module("timebomb"),
	})
	if err != nil {
		return nil, err
	}

	return obs, nil
}
