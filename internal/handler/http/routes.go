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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/conversations", h.listConversations)
		r.Post("/api/conversations", h.createConversation)
		r.Put("/api/conversations/{conversationID}", h.renameConversation)
		r.Delete("/api/conversations/{conversationID}", h.deleteConversation)

		r.Get("/api/conversations/{conversationID}/messages", h.listMessages)
		r.Post("/api/conversations/{conversationID}/messages", h.appendMessage)

		r.Get("/api/settings", h.getSettings)
		r.Put("/api/settings", h.saveSettings)
	})

	return router
}
