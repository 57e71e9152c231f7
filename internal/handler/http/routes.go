package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withSecurityHeaders)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(middleware.Compress(compressionLevel))
	router.Use(withGZipRequest)
	router.Use(withBodyLimit(h.cfg.MaxBodyBytes))

	// must be set before sub-routers are mounted so they inherit them
	router.NotFound(notFound)
	router.MethodNotAllowed(checkHTTPMethod)

	router.Get("/health", h.health)

	router.Route("/api", func(r chi.Router) {
		r.Get("/", h.apiInfo)

		r.Route("/auth", func(r chi.Router) {
			// routes without authorization
			r.Post("/register", h.register)
			r.Post("/login", h.login)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Get("/verify", h.verify)
				r.Post("/logout", h.logout)
			})
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/public/{userId}", h.getPublicProfile)

			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Get("/", h.getProfile)
				r.Put("/", h.updateProfile)
				r.Get("/qr", h.getProfileQR)
			})
		})
	})

	return router
}
