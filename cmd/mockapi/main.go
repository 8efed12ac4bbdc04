package main

import (
	"github.com/gin-gonic/gin"

	"github.com/pilotapp/crm-console/internal/config"
	"github.com/pilotapp/crm-console/internal/mockapi"
	"github.com/pilotapp/crm-console/pkg/logger"
)

// mockapi is a stand-in for the production CRUD backend: the same flat REST
// collections, backed by sqlite (default) or postgres.
func main() {
	cfg := config.Load()
	log := logger.NewLogger(cfg.App.Debug)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := mockapi.OpenDatabase(&cfg.MockAPI)
	if err != nil {
		log.Fatal("failed to open database", "error", err)
	}

	server := mockapi.NewServer(db, log)

	log.Info("starting mock backend",
		"port", cfg.MockAPI.Port,
		"driver", cfg.MockAPI.Driver,
	)

	if err := server.Router().Run(":" + cfg.MockAPI.Port); err != nil {
		log.Fatal("server exited", "error", err)
	}
}
