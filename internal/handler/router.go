package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mohduwaish/portfolio-assistant/backend/internal/handler/chat"
	middlewarePkg "github.com/mohduwaish/portfolio-assistant/backend/internal/middleware"
	"github.com/mohduwaish/portfolio-assistant/backend/internal/service/message"
	"github.com/mohduwaish/portfolio-assistant/backend/pkg/utils"
)

// NewRouter wires HTTP routes to the message pipeline.
func NewRouter(messages *message.Handler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS(allowedOrigins))

	chatHandler := chat.New(messages)

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}
