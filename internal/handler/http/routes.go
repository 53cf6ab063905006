package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init builds the router:
//
//	GET  /api/version
//	GET  /images/{name}
//	GET  /metrics
//	POST /api/chats/{chatID}/messages      (auth)
//	GET  /api/chats/{chatID}/messages      (auth)
//	POST /api/chats/{chatID}/transform     (auth)
//	GET  /api/chats/{chatID}/ws            (auth, websocket)
//	GET  /api/user/chats                   (auth)
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, h.withMetrics, withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/images/{name}", h.getImage)
		if h.registry != nil {
			r.Method("GET", "/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))
		}
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/chats/{chatID}/ws", h.subscribe)

		r.Group(func(r chi.Router) {
			if h.requestTimeout > 0 {
				r.Use(middleware.Timeout(h.requestTimeout))
			}

			r.Post("/api/chats/{chatID}/messages", h.sendMessage)
			r.Get("/api/chats/{chatID}/messages", h.listMessages)
			r.Post("/api/chats/{chatID}/transform", h.transform)
			r.Get("/api/user/chats", h.listUserChats)
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}
