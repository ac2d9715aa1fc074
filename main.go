// @title Sprint Edu API
// @version 1.0
// @description Backend server for the sprint learning platform.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey UserIdAuth
// @in header
// @name X-User-Id

package main

import (
	"flag"
	"log"
	"path/filepath"

	"sprint_edu_backend/internal/app"
	"sprint_edu_backend/internal/config"
	"sprint_edu_backend/pkg/configwatcher"
	"sprint_edu_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migrations and exit")
	migrate := flag.Bool("migrate", false, "force database migrations on startup")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	// Hot-reload config edits into the running process. Middleware that reads
	// through the shared pointer (the admin fallback id) picks up changes
	// without a restart.
	go configwatcher.WatchConfig(filepath.Join("configs", "config.yaml"), func(newCfg *config.Config) {
		*cfg = *newCfg
		logger.Log.Info("configuration reloaded")
	})

	application.Run()
}
