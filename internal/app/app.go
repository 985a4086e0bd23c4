package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"orcamento-pro/backend/internal/app/config"
	apphttp "orcamento-pro/backend/internal/app/http"
	"orcamento-pro/backend/internal/app/http/handlers"
	"orcamento-pro/backend/internal/infra/db/postgres"
	"orcamento-pro/backend/internal/infra/store/jsonfile"
)

func Run() {
	cfg := config.MustLoad()

	var store handlers.Store
	if cfg.DatabaseURL != "" {
		db, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		defer db.Close()
		if err := db.Init(context.Background()); err != nil {
			log.Fatalf("db init: %v", err)
		}
		store = db
		log.Printf("using postgres store")
	} else {
		fs, err := jsonfile.Open(cfg.DataFile)
		if err != nil {
			log.Fatalf("store: %v", err)
		}
		store = fs
		log.Printf("using jsonfile store at %s", cfg.DataFile)
	}

	router := apphttp.NewRouter(cfg, store)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}
