package main

import (
	"net/http"
	"os"
	"time"

	"petclinic-api/internal/platform/logger"
	"petclinic-api/internal/router"

	"github.com/joho/godotenv"
)

func main() {
	// .env opcional para dev; en despliegue las vars vienen del entorno
	_ = godotenv.Load()

	lg := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	r := router.NewRouter(router.Options{Log: lg})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	lg.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		lg.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
