// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marat Zhalilov

package main

import (
	"fmt"

	"github.com/mzhalilov/go-user-registry/internal/config"
	httphandler "github.com/mzhalilov/go-user-registry/internal/handler/http"
	"github.com/mzhalilov/go-user-registry/internal/logger"
	"github.com/mzhalilov/go-user-registry/internal/server"
	"github.com/mzhalilov/go-user-registry/internal/service"
	"github.com/mzhalilov/go-user-registry/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("user-registry-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	users := store.NewUserRepository(log)
	services := service.NewServices(users, cfg.App, log)
	handler := httphandler.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
