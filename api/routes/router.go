package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/salescampus/salescampus-backend/api/controllers"
	"github.com/salescampus/salescampus-backend/api/middleware"
	"github.com/salescampus/salescampus-backend/internal/auth"
	"github.com/salescampus/salescampus-backend/internal/chat"
	"github.com/salescampus/salescampus-backend/internal/records"
	"github.com/salescampus/salescampus-backend/pkg/auth/session"
	"github.com/salescampus/salescampus-backend/pkg/config"
	"github.com/salescampus/salescampus-backend/pkg/enums"
	"github.com/salescampus/salescampus-backend/pkg/logger"
	"github.com/salescampus/salescampus-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Rotate(context.Context, string, string) (string, string, error)
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	store *records.Store,
	chatLog *chat.Log,
	authService auth.Service,
	sessions sessionManager,
	redisClient *redis.Client,
	readiness ...controllers.Pinger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness...))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, redisClient, logg)).Post("/login", controllers.AuthLogin(authService, logg))
		r.With(middleware.AuthRateLimit(registerPolicy, redisClient, logg)).Post("/register", controllers.AuthRegister(authService, logg))
		r.Post("/logout", controllers.AuthLogout(authService, cfg.JWT, logg))
		r.Post("/refresh", controllers.AuthRefresh(sessions, cfg.JWT, logg))
		r.With(middleware.Auth(cfg.JWT, sessions, logg)).Get("/me", controllers.AuthMe(authService, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessions, logg))

		r.Route("/feed", func(r chi.Router) {
			r.Get("/", controllers.FeedList(store, logg))
			r.Post("/", controllers.FeedCreate(store, logg))
			r.Post("/{postId}/like", controllers.FeedLike(store, logg))
			r.Post("/{postId}/comments", controllers.FeedComment(store, logg))
		})

		r.Route("/groups", func(r chi.Router) {
			r.Get("/", controllers.GroupsList(store, logg))
			r.With(middleware.RequireAnyRole(logg, string(enums.RoleAdmin), string(enums.RoleTrainer))).
				Patch("/{groupId}", controllers.GroupUpdate(store, logg))
			r.Get("/{groupId}/chat", controllers.GroupChatHistory(chatLog, logg))
			r.Post("/{groupId}/chat", controllers.GroupChatPost(chatLog, store, logg))
		})

		r.Get("/materials", controllers.MaterialsList(store, logg))
		r.Get("/quizzes", controllers.QuizzesList(store, logg))
		r.Get("/events", controllers.EventsList(store, logg))
		r.Get("/challenges", controllers.ChallengesList(store, logg))
		r.Get("/forum", controllers.ForumList(store, logg))
		r.Get("/terms", controllers.TermsList(store, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessions, logg))
		r.Use(middleware.RequireRole(string(enums.RoleAdmin), logg))

		r.Get("/stats", controllers.AdminStatsSummary(store, logg))
		r.Get("/activities", controllers.AdminActivities(store, logg))
		r.Get("/posts/pending", controllers.AdminPendingPosts(store, logg))
		r.Post("/posts/{postId}/approve", controllers.AdminApprovePost(store, logg))
		r.Post("/posts/{postId}/reject", controllers.AdminRejectPost(store, logg))
		r.Get("/users", controllers.AdminUsers(store, logg))
		r.Patch("/users/{userId}", controllers.AdminUpdateUser(store, logg))
	})

	return r
}
