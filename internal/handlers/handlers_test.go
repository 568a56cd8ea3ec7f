package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "github.com/GlebRadaev/globalfund/docs"
	"github.com/GlebRadaev/globalfund/internal/pg"
	"github.com/GlebRadaev/globalfund/internal/service"
	"github.com/GlebRadaev/globalfund/internal/service/authservice"
	"github.com/GlebRadaev/globalfund/internal/service/campaignservice"
	"github.com/GlebRadaev/globalfund/internal/service/donationservice"
	"github.com/GlebRadaev/globalfund/pkg/auth"
	"github.com/GlebRadaev/globalfund/pkg/metrics"
	"github.com/GlebRadaev/globalfund/pkg/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

const campaignPath = "/api/campaigns/0f8fad5b-d9cb-469f-a165-70867728950e"

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	jwtService := auth.NewJWTService("secret", "globalfund")
	services := &service.Services{
		AuthService: authservice.New(authservice.NewMockRepo(ctrl), &auth.HashService{}, jwtService,
			authservice.NewMockMailer(ctrl), time.Hour, 10*time.Minute),
		CampaignService: campaignservice.New(campaignservice.NewMockRepo(ctrl)),
		DonationService: donationservice.New(donationservice.NewMockCampaignRepo(ctrl),
			donationservice.NewMockDonationRepo(ctrl), pg.NewMockTXManager(ctrl), nil),
		JWTService: jwtService,
	}

	h := New(services, metrics.New(), ratelimit.New(1, 5), []string{"*"}, true)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.Authenticate)
	assert.True(t, h.TrustProxyHeaders)
}

type routerMocks struct {
	users     *MockUserHandler
	campaigns *MockCampaignHandler
	donations *MockDonationHandler
	jwt       *auth.MockJWTServiceInterface
	loader    *auth.MockPrincipalLoader
}

func newRouter(t *testing.T, limiter *ratelimit.Limiter) (chi.Router, *routerMocks) {
	return newRouterWithProxy(t, limiter, false)
}

func newRouterWithProxy(t *testing.T, limiter *ratelimit.Limiter, trustProxy bool) (chi.Router, *routerMocks) {
	ctrl := gomock.NewController(t)
	m := &routerMocks{
		users:     NewMockUserHandler(ctrl),
		campaigns: NewMockCampaignHandler(ctrl),
		donations: NewMockDonationHandler(ctrl),
		jwt:       auth.NewMockJWTServiceInterface(ctrl),
		loader:    auth.NewMockPrincipalLoader(ctrl),
	}
	h := &Handlers{
		UserHandler:     m.users,
		CampaignHandler: m.campaigns,
		DonationHandler: m.donations,
		Authenticate:    auth.NewAuthenticator(m.jwt, m.loader).Middleware,
		Metrics:         metrics.New(),
		Limiter:         limiter,
		AllowedOrigins:  []string{"*"},

		TrustProxyHeaders: trustProxy,
	}
	router := chi.NewRouter()
	h.InitRoutes(router)
	return router, m
}

func TestInitRoutes(t *testing.T) {
	router, m := newRouter(t, nil)

	m.users.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	m.users.EXPECT().Login(gomock.Any(), gomock.Any()).AnyTimes()
	m.users.EXPECT().AdminLogin(gomock.Any(), gomock.Any()).AnyTimes()
	m.users.EXPECT().ForgotPassword(gomock.Any(), gomock.Any()).AnyTimes()
	m.users.EXPECT().ResetPassword(gomock.Any(), gomock.Any()).AnyTimes()
	m.campaigns.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	m.campaigns.EXPECT().Get(gomock.Any(), gomock.Any()).AnyTimes()
	m.donations.EXPECT().ListForCampaign(gomock.Any(), gomock.Any()).AnyTimes()

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"GET", "/api/test", http.StatusOK},
		{"POST", "/api/users", http.StatusOK},
		{"POST", "/api/users/login", http.StatusOK},
		{"POST", "/api/users/forgot-password", http.StatusOK},
		{"POST", "/api/users/reset-password", http.StatusOK},
		{"POST", "/api/admin/login", http.StatusOK},
		{"GET", "/api/campaigns", http.StatusOK},
		{"GET", campaignPath, http.StatusOK},
		{"GET", campaignPath + "/donations", http.StatusOK},
		{"GET", "/api/users/profile", http.StatusUnauthorized},
		{"PATCH", "/api/users/profile/password", http.StatusUnauthorized},
		{"PATCH", "/api/users/4b6f1c9e-3a34-4c7e-9d0e-2f5c1b0a9e11", http.StatusUnauthorized},
		{"POST", "/api/campaigns", http.StatusUnauthorized},
		{"POST", campaignPath + "/donate", http.StatusUnauthorized},
		{"PATCH", campaignPath + "/approve", http.StatusUnauthorized},
		{"PATCH", campaignPath + "/reject", http.StatusUnauthorized},
		{"DELETE", campaignPath, http.StatusUnauthorized},
		{"GET", "/api/donations", http.StatusUnauthorized},
		{"GET", "/api/donations/TX1", http.StatusUnauthorized},
		{"GET", "/metrics", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutes_AdminOnly(t *testing.T) {
	router, m := newRouter(t, nil)
	member := &auth.Principal{UserID: "u-1"}

	m.jwt.EXPECT().ValidateToken("member-token").Return(&auth.Claims{UserID: "u-1"}, nil).AnyTimes()
	m.loader.EXPECT().LoadPrincipal(gomock.Any(), "u-1").Return(member, nil).AnyTimes()
	m.campaigns.EXPECT().Create(gomock.Any(), gomock.Any())
	m.donations.EXPECT().ListRecent(gomock.Any(), gomock.Any())

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/campaigns", http.StatusOK},
		{"GET", "/api/donations", http.StatusOK},
		{"PATCH", campaignPath + "/approve", http.StatusForbidden},
		{"DELETE", campaignPath, http.StatusForbidden},
		{"PATCH", "/api/users/u-2", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			req.Header.Set("Authorization", "Bearer member-token")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestInitRoutes_ThrottlesCredentialEndpoints(t *testing.T) {
	router, m := newRouter(t, ratelimit.New(0.001, 1))

	m.users.EXPECT().Login(gomock.Any(), gomock.Any()).Times(1)
	m.campaigns.EXPECT().List(gomock.Any(), gomock.Any()).Times(2)

	send := func(method, url string) int {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, url, nil))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("POST", "/api/users/login"))
	assert.Equal(t, http.StatusTooManyRequests, send("POST", "/api/users/login"))
	assert.Equal(t, http.StatusOK, send("GET", "/api/campaigns"))
	assert.Equal(t, http.StatusOK, send("GET", "/api/campaigns"))
}

func TestInitRoutes_ForwardedForCannotDodgeThrottle(t *testing.T) {
	router, m := newRouter(t, ratelimit.New(0.001, 1))

	m.users.EXPECT().Login(gomock.Any(), gomock.Any()).Times(1)

	login := func(forwardedFor string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/users/login", nil)
		req.Header.Set("X-Forwarded-For", forwardedFor)
		req.Header.Set("X-Real-IP", forwardedFor)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, login("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, login("10.0.0.2"))
	assert.Equal(t, http.StatusTooManyRequests, login("10.0.0.3"))
}

func TestInitRoutes_TrustedProxyKeysOnForwardedFor(t *testing.T) {
	router, m := newRouterWithProxy(t, ratelimit.New(0.001, 1), true)

	m.users.EXPECT().Login(gomock.Any(), gomock.Any()).Times(2)

	login := func(forwardedFor string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/users/login", nil)
		req.Header.Set("X-Forwarded-For", forwardedFor)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, login("10.0.0.1"))
	assert.Equal(t, http.StatusOK, login("10.0.0.2"))
	assert.Equal(t, http.StatusTooManyRequests, login("10.0.0.1"))
}

func TestInitRoutes_CORSPreflight(t *testing.T) {
	router, _ := newRouter(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/campaigns", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestInitRoutes_Metrics(t *testing.T) {
	router, _ := newRouter(t, nil)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/test", nil))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `route="/api/test"`)
}
