package main

import (
	"net/http"
	"os"
	"time"

	"seances/internal/api"
	"seances/internal/config"
	"seances/pkg/logger"
)

var buildVersion = envDefault("BUILD_VERSION", "dev")

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log := logger.New("info")
		log.Fatal().Err(err).Msg("invalid config")
	}
	log := logger.New(cfg.LogLevel)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewServer(cfg, log).Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().
		Str("addr", srv.Addr).
		Str("version", buildVersion).
		Str("week_start", cfg.WeekStart.String()).
		Str("timezone", cfg.Timezone).
		Bool("auth_required", cfg.AuthRequired).
		Msg("api listening")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func envDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
