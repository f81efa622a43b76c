package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-notes/models"
)

// Init builds the router with every API route.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// set before any sub-router is mounted so they inherit both
	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	router.Get("/version", h.getServerVersion)

	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)
		r.Get("/search", h.searchUsers)
		r.Get("/{user_id:[0-9]+}", h.getUser)

		r.Group(func(r chi.Router) {
			r.Use(h.auth, requireRole(models.RoleAdmin))
			r.Put("/{user_id:[0-9]+}", h.updateUser)
			r.Delete("/{user_id:[0-9]+}", h.deleteUser)
		})
	})

	router.With(h.auth).Get("/auth/token", h.getToken)

	router.Route("/notes", func(r chi.Router) {
		r.Put("/{note_id:[0-9]+}/tags", h.setNoteTags)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/", h.listNotes)
			r.Post("/", h.createNote)
			r.Get("/{note_id:[0-9]+}", h.getNote)
			r.Put("/{note_id:[0-9]+}", h.updateNote)
			r.Delete("/{note_id:[0-9]+}", h.deleteNote)
		})
	})

	router.Route("/tags", func(r chi.Router) {
		r.Get("/", h.listTags)
		r.Post("/", h.createTag)
		r.Get("/{tag_id:[0-9]+}", h.getTag)
	})

	router.Put("/upload", h.upload)
	router.Get(uploadsURLPrefix+"{filename}", h.serveUpload)

	return router
}
