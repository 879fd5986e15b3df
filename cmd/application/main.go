package main

import (
	"flag"
	"os"

	"gosupplier_api/config"
	"gosupplier_api/internal/catalog/app"
	"gosupplier_api/pkg/dbconnect/postgres"
	"gosupplier_api/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the service config")
	flag.Parse()

	logg := logger.NewLogger(os.Stdout, "[App]")

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logg.FatalLog("failed to load config %s: %v", *configPath, err)
	}

	var pgCfg config.DbConfig = config.GetPostgresConfig()
	if cfg.Postgres.Host != "" {
		pgCfg = &cfg.Postgres
	}

	connector := postgres.NewPgConnector(pgCfg)
	server := app.NewCatalogServer(connector, cfg, os.Stdout)
	if err := server.Run(); err != nil {
		logg.FatalLog("catalog server stopped: %v", err)
	}
}
