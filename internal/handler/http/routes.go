package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version/", h.getAppVersion)
	})

	// authenticated API
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.verifyIntegrity)

		r.Route("/api/auth/encryption", func(r chi.Router) {
			r.Post("/setup", h.setupKeys)
			r.Get("/keys", h.getKeys)
			r.Put("/update", h.updateKeys)
		})

		r.Route("/api/notes", func(r chi.Router) {
			r.Post("/", h.createNote)
			r.Get("/", h.listNotes)
			r.Get("/{id}", h.getNote)
			r.Put("/{id}", h.updateNote)
			r.Delete("/{id}", h.deleteNote)
		})

		r.Route("/api/categories", func(r chi.Router) {
			r.Post("/", h.createCategory)
			r.Get("/", h.listCategories)
			r.Get("/{id}", h.getCategory)
			r.Put("/{id}", h.updateCategory)
			r.Delete("/{id}", h.deleteCategory)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
