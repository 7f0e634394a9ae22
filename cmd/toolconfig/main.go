package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-toolconfig/internal/app"
	"github.com/MKhiriev/go-toolconfig/internal/config"
	"github.com/MKhiriev/go-toolconfig/internal/logger"
	"github.com/MKhiriev/go-toolconfig/internal/validators"
	"github.com/MKhiriev/go-toolconfig/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	// stdout carries the exported settings
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("toolconfig")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	toolconfig, err := app.NewApp(cfg, os.Environ(), os.Stdout, validators.NewToolConfigValidator(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if _, err = toolconfig.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("toolconfig run error")
	}
}
