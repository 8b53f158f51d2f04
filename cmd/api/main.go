package main

import (
	"net/http"
	"os"
	"time"

	"reptile-husbandry/internal/adapters/auth/supauth"
	"reptile-husbandry/internal/adapters/uploads/bucketapi"
	"reptile-husbandry/internal/platform/logger"
	"reptile-husbandry/internal/ports/auth"
	"reptile-husbandry/internal/ports/objstore"
	"reptile-husbandry/internal/router"
)

// @title Reptile Husbandry API
// @version 0.1
// @description API de registros de cuidado y linaje para animales de terrario.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Sin SUPABASE_AUTH_URL el verifier queda nil y el middleware
	// entra en modo dev (X-Debug-User-ID).
	var verifier auth.TokenVerifier
	if url := os.Getenv("SUPABASE_AUTH_URL"); url != "" {
		v, err := supauth.New(supauth.Config{
			BaseURL: url,
			APIKey:  os.Getenv("SUPABASE_ANON_KEY"),
		})
		if err != nil {
			log.Error("auth verifier init failed", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
		verifier = v
		log.Info("auth verifier enabled", nil)
	} else {
		log.Warn("auth verifier disabled, using debug header mode", nil)
	}

	var store objstore.ObjectStore
	if url := os.Getenv("STORAGE_API_URL"); url != "" {
		store = bucketapi.NewClient(bucketapi.Config{
			BaseURL: url,
			APIKey:  os.Getenv("STORAGE_API_KEY"),
			Bucket:  os.Getenv("STORAGE_BUCKET"),
		})
		log.Info("object storage enabled", nil)
	} else {
		log.Warn("object storage not configured, using in-memory store", nil)
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		ObjectStore:  store,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
