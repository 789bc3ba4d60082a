// @title Academic Planning API
// @version 1.0
// @description Backend for institutional teaching plans, progress reports, evidence and geolocated check-ins.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"acadplan_backend/internal/app"
	"acadplan_backend/internal/config"
	"acadplan_backend/pkg/configwatcher"
	"acadplan_backend/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", application.OnConfigReload)

	application.Run()
}
