package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"orcamento-pro/backend/internal/app/config"
	"orcamento-pro/backend/internal/app/http/handlers"
	"orcamento-pro/backend/internal/app/http/middleware"
)

func NewRouter(cfg config.Config, store handlers.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSAllowOrigin))

	h := handlers.New(store, cfg)

	r.Get("/health", h.Health)

	r.Route("/v1", func(r chi.Router) {
		if cfg.InternalToken != "" {
			r.Use(middleware.InternalAuth(cfg.InternalToken))
		}

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts)
			r.Post("/", h.CreateProduct)
			r.Put("/{id}", h.UpdateProduct)
			r.Delete("/{id}", h.DeleteProduct)
		})

		r.Route("/quotes", func(r chi.Router) {
			r.Get("/", h.ListQuotes)
			r.Post("/", h.SaveQuote)
			r.Delete("/{id}", h.DeleteQuote)
			r.Post("/new", h.NewQuote)
			r.Post("/summary", h.QuoteSummary)
			r.Post("/export/{format}", h.ExportQuote)
		})

		r.Get("/theme", h.GetTheme)
		r.Put("/theme", h.SetTheme)
	})

	return r
}
