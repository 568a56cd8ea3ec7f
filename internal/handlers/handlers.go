package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/globalfund/docs"
	campaignhandlers "github.com/GlebRadaev/globalfund/internal/handlers/campaigns"
	donationhandlers "github.com/GlebRadaev/globalfund/internal/handlers/donations"
	userhandlers "github.com/GlebRadaev/globalfund/internal/handlers/users"
	"github.com/GlebRadaev/globalfund/internal/service"
	"github.com/GlebRadaev/globalfund/pkg/auth"
	"github.com/GlebRadaev/globalfund/pkg/metrics"
	"github.com/GlebRadaev/globalfund/pkg/ratelimit"
	"github.com/GlebRadaev/globalfund/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type UserHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	AdminLogin(w http.ResponseWriter, r *http.Request)
	ForgotPassword(w http.ResponseWriter, r *http.Request)
	ResetPassword(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
	UpdateUser(w http.ResponseWriter, r *http.Request)
}

type CampaignHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type DonationHandler interface {
	Donate(w http.ResponseWriter, r *http.Request)
	ListRecent(w http.ResponseWriter, r *http.Request)
	GetByTransactionID(w http.ResponseWriter, r *http.Request)
	ListForCampaign(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	UserHandler     UserHandler
	CampaignHandler CampaignHandler
	DonationHandler DonationHandler

	Authenticate   func(http.Handler) http.Handler
	Metrics        *metrics.Metrics
	Limiter        *ratelimit.Limiter
	AllowedOrigins []string
	// TrustProxyHeaders lets X-Forwarded-For / X-Real-IP decide the client
	// address. Only enable it behind a proxy that overwrites them.
	TrustProxyHeaders bool
}

func New(s *service.Services, m *metrics.Metrics, limiter *ratelimit.Limiter, allowedOrigins []string, trustProxyHeaders bool) *Handlers {
	return &Handlers{
		UserHandler:     userhandlers.New(s.AuthService),
		CampaignHandler: campaignhandlers.New(s.CampaignService),
		DonationHandler: donationhandlers.New(s.DonationService),
		Authenticate:    auth.NewAuthenticator(s.JWTService, s.AuthService).Middleware,
		Metrics:         m,
		Limiter:         limiter,
		AllowedOrigins:  allowedOrigins,

		TrustProxyHeaders: trustProxyHeaders,
	}
}

// throttle wraps credential endpoints with the per-client limiter.
func (h *Handlers) throttle(next http.Handler) http.Handler {
	if h.Limiter == nil {
		return next
	}
	return h.Limiter.Middleware(next)
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	if h.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(
		middleware.Recoverer,
		middleware.Logger,
		cors.Handler(cors.Options{
			AllowedOrigins: h.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}),
	)
	if h.Metrics != nil {
		r.Use(h.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", h.Metrics.Handler())
	}

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/api/test", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "API is running"})
	})

	r.With(h.throttle).Post("/api/admin/login", h.UserHandler.AdminLogin)

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/", h.UserHandler.Register)
		r.Group(func(r chi.Router) {
			r.Use(h.throttle)
			r.Post("/login", h.UserHandler.Login)
			r.Post("/forgot-password", h.UserHandler.ForgotPassword)
			r.Post("/reset-password", h.UserHandler.ResetPassword)
		})
		r.Group(func(r chi.Router) {
			r.Use(h.Authenticate)
			r.Get("/profile", h.UserHandler.GetProfile)
			r.Patch("/profile/password", h.UserHandler.ChangePassword)
			r.With(auth.RequireAdmin).Patch("/{id}", h.UserHandler.UpdateUser)
		})
	})

	r.Route("/api/campaigns", func(r chi.Router) {
		r.Get("/", h.CampaignHandler.List)
		r.Get("/{id}", h.CampaignHandler.Get)
		r.Get("/{id}/donations", h.DonationHandler.ListForCampaign)

		r.Group(func(r chi.Router) {
			r.Use(h.Authenticate)
			r.Post("/", h.CampaignHandler.Create)
			r.Post("/{id}/donate", h.DonationHandler.Donate)

			r.Group(func(r chi.Router) {
				r.Use(auth.RequireAdmin)
				r.Patch("/{id}/approve", h.CampaignHandler.Approve)
				r.Patch("/{id}/reject", h.CampaignHandler.Reject)
				r.Delete("/{id}", h.CampaignHandler.Delete)
			})
		})
	})

	r.Route("/api/donations", func(r chi.Router) {
		r.Use(h.Authenticate)
		r.Get("/", h.DonationHandler.ListRecent)
		r.Get("/{transactionId}", h.DonationHandler.GetByTransactionID)
	})

	return r
}
