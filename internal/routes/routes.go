package routes

import (
	"net/http"

	"conduit/internal/config"
	"conduit/internal/handlers"
	"conduit/internal/middleware"
	"conduit/internal/utils/helpers"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func InitRoutes(
	router *mux.Router,
	cfg *config.Config,
	gate *middleware.Gate,
	userH *handlers.UserHandler,
	profileH *handlers.ProfileHandler,
	articleH *handlers.ArticleHandler,
	commentH *handlers.CommentHandler,
	tagH *handlers.TagHandler,
	healthH *handlers.HealthHandler,
) {
	router.Use(middleware.RequestID, middleware.Recoverer, middleware.Logging, middleware.Metrics)

	// неизвестные маршруты не проходят через router.Use
	router.NotFoundHandler = middleware.RequestID(middleware.Logging(http.HandlerFunc(handlers.NotFound)))
	router.MethodNotAllowedHandler = middleware.RequestID(middleware.Logging(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			helpers.Error(w, http.StatusMethodNotAllowed, "method not allowed")
		})))

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	req := func(f http.HandlerFunc) http.Handler { return gate.Required(f) }
	opt := func(f http.HandlerFunc) http.Handler { return gate.Optional(f) }

	api.HandleFunc("/health", healthH.Health).Methods(http.MethodGet)

	// --- Пользователи ---
	api.HandleFunc("/users", userH.Register).Methods(http.MethodPost)
	api.HandleFunc("/users/login", userH.Login).Methods(http.MethodPost)
	api.Handle("/user", req(userH.Current)).Methods(http.MethodGet)
	api.Handle("/user", req(userH.Update)).Methods(http.MethodPut)

	// --- Профили ---
	api.Handle("/profiles/{username}", opt(profileH.Get)).Methods(http.MethodGet)
	api.Handle("/profiles/{username}/follow", req(profileH.Follow)).Methods(http.MethodPost)
	api.Handle("/profiles/{username}/follow", req(profileH.Unfollow)).Methods(http.MethodDelete)

	// --- Статьи; feed регистрируется раньше {slug} ---
	api.Handle("/articles", opt(articleH.List)).Methods(http.MethodGet)
	api.Handle("/articles", req(articleH.Create)).Methods(http.MethodPost)
	api.Handle("/articles/feed", req(articleH.Feed)).Methods(http.MethodGet)
	api.Handle("/articles/{slug}", opt(articleH.Get)).Methods(http.MethodGet)
	api.Handle("/articles/{slug}", req(articleH.Update)).Methods(http.MethodPut)
	api.Handle("/articles/{slug}", req(articleH.Delete)).Methods(http.MethodDelete)
	api.Handle("/articles/{slug}/favorite", req(articleH.Favorite)).Methods(http.MethodPost)
	api.Handle("/articles/{slug}/favorite", req(articleH.Unfavorite)).Methods(http.MethodDelete)

	// --- Комментарии ---
	api.Handle("/articles/{slug}/comments", opt(commentH.List)).Methods(http.MethodGet)
	api.Handle("/articles/{slug}/comments", req(commentH.Add)).Methods(http.MethodPost)
	api.Handle("/articles/{slug}/comments/{id}", req(commentH.Delete)).Methods(http.MethodDelete)

	api.HandleFunc("/tags", tagH.List).Methods(http.MethodGet)
}
